package directory

import (
	"strconv"
	"strings"

	"nearbysos/internal/core/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams are the coerced pagination/search inputs of a list call.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// PagedListings is one page of a filtered collection plus its counts.
type PagedListings struct {
	Data       []domain.Listing `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// ParseListParams coerces raw query values into valid params. Malformed page
// and limit values fall back to the defaults rather than failing; limit is
// clamped to [1, MaxLimit]. An over-long search term is the one input that is
// rejected outright.
func ParseListParams(page, limit, search string) (ListParams, error) {
	params := ListParams{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if p, err := strconv.Atoi(page); err == nil && p >= 1 {
		params.Page = p
	}

	if l, err := strconv.Atoi(limit); err == nil {
		switch {
		case l < 1:
			params.Limit = DefaultLimit
		case l > MaxLimit:
			params.Limit = MaxLimit
		default:
			params.Limit = l
		}
	}

	search = strings.TrimSpace(search)
	if len(search) > domain.SearchMaxLen {
		verr := &ValidationError{}
		verr.add("search", "Search term must not exceed 100 characters")
		return ListParams{}, verr
	}
	params.Search = search

	return params, nil
}

// Paginate filters items by the search term and slices out the requested
// page. A page past the end of the filtered list yields an empty slice, not
// an error, so stale UI page numbers degrade gracefully.
func Paginate(items []domain.Listing, params ListParams) PagedListings {
	filtered := items
	if params.Search != "" {
		term := strings.ToLower(params.Search)

		filtered = make([]domain.Listing, 0, len(items))
		for _, item := range items {
			if matchesSearch(item, term) {
				filtered = append(filtered, item)
			}
		}
	}

	total := len(filtered)

	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	offset := (params.Page - 1) * params.Limit
	end := offset + params.Limit

	pageData := []domain.Listing{}
	if offset < total {
		if end > total {
			end = total
		}
		pageData = filtered[offset:end]
	}

	return PagedListings{
		Data:       pageData,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

// matchesSearch reports whether the lowercased term appears in any of the
// searchable fields. term must already be lowercase.
func matchesSearch(item domain.Listing, term string) bool {
	return strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Location), term)
}
