package repository

import "gorm.io/gorm"

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// Offset returns the row offset of the current page
func (q *ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

// paginate applies LIMIT/OFFSET; PerPage <= 0 means no limit
func paginate(db *gorm.DB, page, perPage int) *gorm.DB {
	if perPage <= 0 {
		return db
	}
	if page < 1 {
		page = 1
	}
	return db.Offset((page - 1) * perPage).Limit(perPage)
}

// orderBy applies a whitelisted sort column, falling back to def
func orderBy(db *gorm.DB, query *ListQuery, allowed map[string]string, def string) *gorm.DB {
	if query != nil {
		if col, ok := allowed[query.SortBy]; ok {
			if query.SortDir == "desc" {
				col += " DESC"
			}
			return db.Order(col)
		}
	}
	return db.Order(def)
}
