package db

import (
	"gorm.io/gorm"
)

// InsertionOrder sorts rows by their auto-increment column, oldest first.
//
//	db.Model(&Model{}).Scopes(db.InsertionOrder("seq")).Find(&rows)
func InsertionOrder(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC")
	}
}

// Matching filters on column = value. column must be a trusted identifier.
func Matching(column string, value any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
