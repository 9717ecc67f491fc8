package dto

// ListQueryRequest carries the derived-view parameters common to every list
// endpoint. Per-field filters arrive as filter[field]=substring and are
// parsed from the raw query by the handler. Display switches the response
// from raw records to per-field display values.
type ListQueryRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
	Dir      string `form:"dir" binding:"omitempty,oneof=asc desc"`
	Display  bool   `form:"display"`
}
