package domain

// PageInfo is the pagination metadata attached to contact list responses.
// swagger:model PageInfo
type PageInfo struct {
	CurrentPage     int    `json:"currentPage"`
	TotalPages      int    `json:"totalPages"`
	TotalContacts   int    `json:"totalContacts"`
	Limit           int    `json:"limit"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPrevPage     bool   `json:"hasPrevPage"`
	SortBy          string `json:"sortBy"`
	SortDirection   string `json:"sortDirection"`
	PrioritizeRSVPs bool   `json:"prioritizeRSVPs"`
}

// NewPageInfo builds PageInfo for the given page, limit, and total count.
// TotalPages is ceiling(total / limit); the caller guarantees limit > 0.
func NewPageInfo(page, limit, total int) PageInfo {
	totalPages := (total + limit - 1) / limit
	return PageInfo{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalContacts: total,
		Limit:         limit,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
}
