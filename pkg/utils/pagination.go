package utils

import (
	"net/http"
	"strconv"
)

const MaxPageSize = 100

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// ParsePagination reads ?page and ?limit. A missing or invalid limit yields
// limit 0, meaning the whole collection.
func ParsePagination(r *http.Request) (limit, offset int) {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		return 0, 0
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}
	return limit, CalculateOffset(page, limit)
}
