// Package selector derives read-only views from slice state. Every function is
// pure and recomputed on each read.
package selector

import (
	"strings"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 5

// FilterByText keeps users whose name or email contains term, ignoring case.
// An empty term keeps everyone.
func FilterByText(users []domain.User, term string) []domain.User {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Page is one window of a paginated collection.
type Page[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// PageCount returns ceil(total/size). A non-positive size counts as
// DefaultPageSize.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate returns the 1-based page of items. Pages outside [1, PageCount]
// clamp to the nearest valid page; an empty collection yields an empty page 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	count := PageCount(len(items), size)

	switch {
	case page < 1:
		page = 1
	case count > 0 && page > count:
		page = count
	case count == 0:
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return Page[T]{
		Items:     window,
		Page:      page,
		PageSize:  size,
		PageCount: count,
		Total:     len(items),
	}
}

// ToggleRegion implements the single-select region control: selecting the
// active region clears it, anything else replaces it.
//
// The selection is not applied by FilterByText or UserTable.
func ToggleRegion(current, selected string) string {
	if selected == "" || strings.EqualFold(current, selected) {
		return ""
	}
	return selected
}

// CountByStatus returns the active and inactive counts of users.
func CountByStatus(users []domain.User) domain.ActivitySplit {
	var split domain.ActivitySplit
	for _, u := range users {
		switch u.Status {
		case domain.UserStatusActive:
			split.Active++
		case domain.UserStatusInactive:
			split.Inactive++
		}
	}
	return split
}
