package dto

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortOrder names an entity property, not a column; the service resolves
// properties through its whitelist.
type SortOrder struct {
	Property string
	Desc     bool
}

// Pageable carries zero-based page, bounded size and the requested ordering.
type Pageable struct {
	Page int
	Size int
	Sort []SortOrder
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// ParsePageable decodes the paging surface: page and size as plain integers,
// each sort parameter as "property" or "property,desc". Size is clamped to
// MaxPageSize rather than rejected.
func ParsePageable(page, size string, sorts []string) (Pageable, error) {
	p := Pageable{Page: 0, Size: DefaultPageSize}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 0 {
			return p, fmt.Errorf("invalid page %q", page)
		}
		p.Page = n
	}
	if size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid size %q", size)
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.Size = n
	}
	for _, s := range sorts {
		if s == "" {
			continue
		}
		property, dir, _ := strings.Cut(s, ",")
		if property == "" {
			return p, fmt.Errorf("invalid sort %q", s)
		}
		desc := false
		switch strings.ToLower(dir) {
		case "", "asc":
		case "desc":
			desc = true
		default:
			return p, fmt.Errorf("invalid sort direction %q", dir)
		}
		p.Sort = append(p.Sort, SortOrder{Property: property, Desc: desc})
	}
	return p, nil
}
