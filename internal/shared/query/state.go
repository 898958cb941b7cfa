package query

// ViewState is the client-side state of one list view. Changing a filter or
// the sort order returns to the first page.
type ViewState struct {
	Filters map[string]string `json:"filters"`
	Sort    Direction         `json:"sort"`
	Page    int               `json:"page"`
}

func NewViewState(sort Direction) ViewState {
	return ViewState{Filters: map[string]string{}, Sort: sort, Page: 1}
}

// WithFilter sets key to value and resets the page.
func (s ViewState) WithFilter(key, value string) ViewState {
	filters := make(map[string]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		filters[k] = v
	}
	filters[key] = value
	return ViewState{Filters: filters, Sort: s.Sort, Page: 1}
}

// WithSort changes the direction and resets the page.
func (s ViewState) WithSort(dir Direction) ViewState {
	s.Sort = dir
	s.Page = 1
	return s
}

// GoTo moves to page, clamped to the available pages.
func (s ViewState) GoTo(page, totalPages int) ViewState {
	s.Page = Navigate(page, totalPages)
	return s
}

// Applied rebuilds the state a list view was rendered with. Filters left at
// their default ("" or "all") are omitted and the page is the clamped one.
func Applied(sort Direction, filters map[string]string, meta PageMeta) ViewState {
	s := NewViewState(sort)
	for k, v := range filters {
		if v != "" && v != All {
			s = s.WithFilter(k, v)
		}
	}
	return s.GoTo(meta.Page, meta.TotalPages)
}
