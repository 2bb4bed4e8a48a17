package rest

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type pageParams struct {
	Skip  int
	Limit int
}

// paginatedResponse is the wrapper every list endpoint returns.
type paginatedResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func parsePageParams(r *http.Request) (pageParams, error) {
	p := pageParams{Skip: 0, Limit: defaultLimit}

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, fmt.Errorf("skip must be a non-negative integer, got %q", v)
		}
		p.Skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLimit {
			return p, fmt.Errorf("limit must be between 1 and %d, got %q", maxLimit, v)
		}
		p.Limit = n
	}
	return p, nil
}

// paginate applies skip/limit to an already-filtered slice.
func paginate[T any](items []T, p pageParams) paginatedResponse[T] {
	total := len(items)

	start := p.Skip
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	return paginatedResponse[T]{
		Data:  items[start:end],
		Total: total,
		Skip:  p.Skip,
		Limit: p.Limit,
	}
}
