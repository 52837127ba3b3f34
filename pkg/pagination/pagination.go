// Package pagination parses list query strings and shapes paginated results.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"orthocare-api/pkg/apperror"
)

const (
	DefaultPage = 1
	MaxLimit    = 100

	DefaultSimpleTake = 50
	MaxSimpleTake     = 100
)

type Params struct {
	Page   int
	Limit  int
	Search string
}

// Offset saturates at math.MaxInt64 so a huge page reads as out of range
// instead of wrapping negative.
func (p Params) Offset() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	skipped, limit := int64(p.Page-1), int64(p.Limit)
	if skipped > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return skipped * limit
}

// Page is the list envelope returned by every paginated endpoint.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](data []T, total int64, p Params) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// Map converts the rows of a page while keeping its counters.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Data))
	for _, item := range p.Data {
		out = append(out, fn(item))
	}
	return Page[R]{
		Data:       out,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

// ParseQuery reads page, limit and search. Absent values take defaults;
// non-numeric or non-positive values are rejected.
func ParseQuery(q url.Values, defaultLimit int) (Params, error) {
	params := Params{
		Page:   DefaultPage,
		Limit:  defaultLimit,
		Search: strings.TrimSpace(q.Get("search")),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, apperror.BadRequest("page must be a positive integer")
		}
		params.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Params{}, apperror.BadRequest("limit must be a positive integer")
		}
		params.Limit = limit
	}

	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params, nil
}

// ParseTake reads the row cap of a lightweight listing.
func ParseTake(q url.Values) (int, error) {
	raw := q.Get("take")
	if raw == "" {
		return DefaultSimpleTake, nil
	}
	take, err := strconv.Atoi(raw)
	if err != nil || take < 1 {
		return 0, apperror.BadRequest("take must be a positive integer")
	}
	if take > MaxSimpleTake {
		take = MaxSimpleTake
	}
	return take, nil
}

// ParseBool accepts the usual true/false spellings; empty means unset.
func ParseBool(q url.Values, key string) (*bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.BadRequest(key + " must be a boolean")
	}
	return &v, nil
}

// ParseInt reads an optional non-negative integer filter.
func ParseInt(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, apperror.BadRequest(key + " must be a non-negative integer")
	}
	return &v, nil
}
