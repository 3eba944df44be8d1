package directory

import (
	"fmt"
	"net/url"
	"strings"

	"nearbysos/internal/core/domain"
)

// ValidateNew checks a create payload: the three text fields are required,
// non-empty after trimming and within their bounds; image, when present, must
// be an absolute URL. All violations are reported together.
func ValidateNew(input domain.NewListing) error {
	verr := &ValidationError{}

	checkRequiredText(verr, "title", input.Title, domain.TitleMaxLen)
	checkRequiredText(verr, "description", input.Description, domain.DescriptionMaxLen)
	checkRequiredText(verr, "location", input.Location, domain.LocationMaxLen)

	if input.Image != "" && !isValidURL(input.Image) {
		verr.add("image", "Image must be a valid URL")
	}

	return verr.orNil()
}

// ValidatePatch checks an update payload: every field is optional, but any
// field that is present must satisfy the same constraints as on create.
func ValidatePatch(patch domain.ListingPatch) error {
	verr := &ValidationError{}

	if patch.Title != nil {
		checkRequiredText(verr, "title", *patch.Title, domain.TitleMaxLen)
	}
	if patch.Description != nil {
		checkRequiredText(verr, "description", *patch.Description, domain.DescriptionMaxLen)
	}
	if patch.Location != nil {
		checkRequiredText(verr, "location", *patch.Location, domain.LocationMaxLen)
	}
	if patch.Image != nil && *patch.Image != "" && !isValidURL(*patch.Image) {
		verr.add("image", "Image must be a valid URL")
	}

	return verr.orNil()
}

func checkRequiredText(verr *ValidationError, field, value string, maxLen int) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		verr.add(field, fmt.Sprintf("%s is required", titleCase(field)))
		return
	}

	if len(trimmed) > maxLen {
		verr.add(field, fmt.Sprintf("%s must be between 1 and %d characters", titleCase(field), maxLen))
	}
}

// isValidURL accepts absolute http(s) URLs only - a bare path or a
// scheme-less host is not a usable image source for the UI.
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func titleCase(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
