package directory_test

import (
	"strings"
	"testing"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/stretchr/testify/assert"
)

func fieldNames(verr *directory.ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateNew(t *testing.T) {
	valid := domain.NewListing{
		Title:       "Advanced Life Support Unit",
		Description: "Fully equipped ALS ambulance.",
		Location:    "Station 1",
		Image:       "https://example.com/unit.jpg",
	}

	testCases := map[string]struct {
		mutate     func(*domain.NewListing)
		wantFields []string
	}{
		"valid payload passes": {
			mutate:     func(in *domain.NewListing) {},
			wantFields: nil,
		},
		"image is optional": {
			mutate:     func(in *domain.NewListing) { in.Image = "" },
			wantFields: nil,
		},
		"empty title": {
			mutate:     func(in *domain.NewListing) { in.Title = "" },
			wantFields: []string{"title"},
		},
		"whitespace-only title": {
			mutate:     func(in *domain.NewListing) { in.Title = "   " },
			wantFields: []string{"title"},
		},
		"title too long": {
			mutate:     func(in *domain.NewListing) { in.Title = strings.Repeat("x", 101) },
			wantFields: []string{"title"},
		},
		"description too long": {
			mutate:     func(in *domain.NewListing) { in.Description = strings.Repeat("x", 501) },
			wantFields: []string{"description"},
		},
		"location too long": {
			mutate:     func(in *domain.NewListing) { in.Location = strings.Repeat("x", 201) },
			wantFields: []string{"location"},
		},
		"relative image url": {
			mutate:     func(in *domain.NewListing) { in.Image = "/images/unit.jpg" },
			wantFields: []string{"image"},
		},
		"image url without scheme": {
			mutate:     func(in *domain.NewListing) { in.Image = "example.com/unit.jpg" },
			wantFields: []string{"image"},
		},
		"every violation reported together": {
			mutate: func(in *domain.NewListing) {
				in.Title = ""
				in.Description = ""
				in.Location = ""
			},
			wantFields: []string{"title", "description", "location"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {

			input := valid
			tc.mutate(&input)

			err := directory.ValidateNew(input)

			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *directory.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.ElementsMatch(t, tc.wantFields, fieldNames(verr))
		})
	}
}

func strPtr(s string) *string { return &s }

func TestValidatePatch(t *testing.T) {
	testCases := map[string]struct {
		patch      domain.ListingPatch
		wantFields []string
	}{
		"empty patch is valid": {
			patch:      domain.ListingPatch{},
			wantFields: nil,
		},
		"single valid field": {
			patch:      domain.ListingPatch{Location: strPtr("Station 9")},
			wantFields: nil,
		},
		"clearing the image is allowed": {
			patch:      domain.ListingPatch{Image: strPtr("")},
			wantFields: nil,
		},
		"present title must not be empty": {
			patch:      domain.ListingPatch{Title: strPtr("  ")},
			wantFields: []string{"title"},
		},
		"present description over bound": {
			patch:      domain.ListingPatch{Description: strPtr(strings.Repeat("x", 501))},
			wantFields: []string{"description"},
		},
		"present image must be a url": {
			patch:      domain.ListingPatch{Image: strPtr("not a url")},
			wantFields: []string{"image"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {

			err := directory.ValidatePatch(tc.patch)

			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *directory.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.ElementsMatch(t, tc.wantFields, fieldNames(verr))
		})
	}
}

func TestValidationErrorMessageNamesFields(t *testing.T) {
	err := directory.ValidateNew(domain.NewListing{Description: "d", Location: "l"})

	var verr *directory.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "title")
	assert.Equal(t, "Title is required", verr.Fields[0].Message)
}
