package model

import "fmt"

type SortOrder string

const (
	SortCreatedAtAsc  SortOrder = "created_at_asc"
	SortCreatedAtDesc SortOrder = "created_at_desc"
	SortNameAsc       SortOrder = "name_asc"

	DefaultSortOrder = SortCreatedAtAsc
)

// ParseSortOrder maps a query value to a SortOrder. An empty value selects the default.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "":
		return DefaultSortOrder, nil
	case SortCreatedAtAsc, SortCreatedAtDesc, SortNameAsc:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("unsupported sort order %q", s)
	}
}

type ListQuery struct {
	Search string
	Sort   SortOrder
	Limit  int
	Offset int64
}
