package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultSize is the standard page size when one is not provided.
	DefaultSize = 10
	// MaxSize caps how many rows any paged request can ask for.
	MaxSize = 100
)

// Params holds zero-based page/size inputs, mirroring the backend's paging
// convention.
type Params struct {
	Page int
	Size int
}

// Normalize clamps the params to sane bounds.
func (p Params) Normalize() Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// FromQuery reads page/size query parameters, falling back to defaults on
// absent or malformed values.
func FromQuery(values url.Values) Params {
	params := Params{Size: DefaultSize}
	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			params.Page = page
		}
	}
	if raw := values.Get("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			params.Size = size
		}
	}
	return params.Normalize()
}
