package models

// TicketModel stores one ticket row. Seq preserves insertion order; TicketID
// is the public TICK-NNN id and is indexed but not unique, because the
// length id strategy can hand out an id that is still in use.
type TicketModel struct {
	Seq                   uint   `gorm:"primaryKey;autoIncrement"`
	TicketID              string `gorm:"column:ticket_id;size:32;not null;index"`
	Subject               string `gorm:"size:255;not null"`
	Description           string `gorm:"type:text;not null"`
	OrganizationID        string `gorm:"size:64"`
	TimeZone              string `gorm:"size:16;index"`
	NumberOfAffectedUsers string `gorm:"size:16"`
	Product               string `gorm:"size:128;index"`
	TypeOfTesting         string `gorm:"size:64"`
	Environment           string `gorm:"size:64"`
	KatalonVersion        string `gorm:"size:64"`
	OtherVersion          string `gorm:"size:128"`
	ExecutionLog          string `gorm:"type:text"`
	ErrorLog              string `gorm:"type:text"`
	AffectedWork          string `gorm:"type:text"`
	AddOtherUser          string `gorm:"size:255"`
	CreatedAt             int64  `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
