package query

import "fmt"

type PageRequest struct {
	Page int
	Size int
}

// PageMeta describes one page of a filtered, sorted collection.
type PageMeta struct {
	Total        int    `json:"total"`
	TotalPages   int    `json:"totalPages"`
	Page         int    `json:"page"`
	PageSize     int    `json:"pageSize"`
	From         int    `json:"from"`
	To           int    `json:"to"`
	HasPrevious  bool   `json:"hasPrevious"`
	HasNext      bool   `json:"hasNext"`
	ShowControls bool   `json:"showControls"`
	Summary      string `json:"summary"`
}

// Page is a slice of a collection plus its navigation metadata.
type Page[T any] struct {
	Items []T `json:"items"`
	PageMeta
}

// Paginate slices items for req. The page is clamped to [1, max(totalPages,1)]
// and a non-positive size is treated as 1.
func Paginate[T any](items []T, req PageRequest) Page[T] {
	size := max(req.Size, 1)
	total := len(items)
	totalPages := (total + size - 1) / size
	page := Navigate(req.Page, totalPages)

	start := min((page-1)*size, total)
	end := min(start+size, total)

	from := 0
	if total > 0 {
		from = start + 1
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Page[T]{
		Items: pageItems,
		PageMeta: PageMeta{
			Total:        total,
			TotalPages:   totalPages,
			Page:         page,
			PageSize:     size,
			From:         from,
			To:           end,
			HasPrevious:  page > 1,
			HasNext:      page < totalPages,
			ShowControls: totalPages > 1,
			Summary:      fmt.Sprintf("Showing %d to %d of %d entries", from, end, total),
		},
	}
}

// Navigate clamps a requested page to [1, totalPages]. With no pages the
// only valid page is 1.
func Navigate(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}

// Run filters, sorts and paginates items in that order.
func Run[T any](items []T, filter *FilterSpec[T], sort SortSpec[T], req PageRequest) Page[T] {
	return Paginate(sort.Apply(filter.Apply(items)), req)
}
