package dto

// Filter selects a page of products. A nil Category matches every document;
// a zero Limit disables pagination.
type Filter struct {
	Page     int
	Limit    int
	Category *string
}

// Skip is the number of matching documents before the requested page.
func (f Filter) Skip() int64 {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}

	return int64(f.Page-1) * int64(f.Limit)
}
