package models

// PaginateResult is the page-shaped result returned by paginated finds.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult summarizes a count query in page units.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}
