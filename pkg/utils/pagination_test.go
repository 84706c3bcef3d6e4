package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"no params", "", 0, 0},
		{"limit only", "?limit=5", 5, 0},
		{"second page", "?limit=5&page=2", 5, 5},
		{"invalid limit", "?limit=abc&page=3", 0, 0},
		{"negative limit", "?limit=-1", 0, 0},
		{"capped limit", "?limit=500", MaxPageSize, 0},
		{"invalid page", "?limit=10&page=x", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/messages"+tt.query, nil)
			limit, offset := ParsePagination(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
