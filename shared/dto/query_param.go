package dto

import (
	"hoteladmin/shared/constant"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// StatusFilter is the list filter shared by customers and staff: "all" omits
// the predicate, "active" and "inactive" match the status column exactly.
type StatusFilter string

// Normalize lowercases and trims the filter. Empty means all.
func (s StatusFilter) Normalize() StatusFilter {
	normalized := StatusFilter(strings.ToLower(strings.TrimSpace(string(s))))
	if normalized == constant.Empty {
		return constant.StatusFilterAll
	}

	return normalized
}

// Valid reports whether the normalized filter is one of all/active/inactive.
func (s StatusFilter) Valid() bool {
	switch s.Normalize() {
	case constant.StatusFilterAll, constant.StatusFilterActive, constant.StatusFilterInactive:
		return true
	default:
		return false
	}
}

// Status returns the stored status value ("Active", "Inactive") the filter
// selects, or empty for all.
func (s StatusFilter) Status() string {
	switch s.Normalize() {
	case constant.StatusFilterActive:
		return "Active"
	case constant.StatusFilterInactive:
		return "Inactive"
	default:
		return constant.Empty
	}
}
