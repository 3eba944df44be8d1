package webui

import (
	"errors"
	"net/url"
	"strings"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"
)

// formValues holds the raw form inputs of the shared create/edit form.
type formValues struct {
	Title       string
	Description string
	Location    string
	Image       string
}

// formView drives the form template for both modes; IsEdit switches the
// heading, the action and the submit label.
type formView struct {
	Config   TableConfig
	BasePath string
	Action   string
	IsEdit   bool
	Values   formValues
	Errors   map[string]string
	Alert    string
}

func formValuesFromRequest(form url.Values) formValues {
	return formValues{
		Title:       strings.TrimSpace(form.Get("title")),
		Description: strings.TrimSpace(form.Get("description")),
		Location:    strings.TrimSpace(form.Get("location")),
		Image:       strings.TrimSpace(form.Get("image")),
	}
}

func formValuesFromListing(listing domain.Listing) formValues {
	return formValues{
		Title:       listing.Title,
		Description: listing.Description,
		Location:    listing.Location,
		Image:       listing.Image,
	}
}

func (v formValues) toInput() domain.NewListing {
	return domain.NewListing{
		Title:       v.Title,
		Description: v.Description,
		Location:    v.Location,
		Image:       v.Image,
	}
}

// toPatch sends every field: the form always shows the full record, so an
// edit submit replaces all four values.
func (v formValues) toPatch() domain.ListingPatch {
	return domain.ListingPatch{
		Title:       &v.Title,
		Description: &v.Description,
		Location:    &v.Location,
		Image:       &v.Image,
	}
}

// validate runs the exact backend rules client-side so invalid submissions
// never reach the network. One message per field, first violation wins.
func (v formValues) validate() map[string]string {
	err := directory.ValidateNew(v.toInput())
	if err == nil {
		return nil
	}

	var verr *directory.ValidationError
	if !errors.As(err, &verr) {
		return map[string]string{"title": err.Error()}
	}

	fieldErrors := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		if _, seen := fieldErrors[f.Field]; !seen {
			fieldErrors[f.Field] = f.Message
		}
	}

	return fieldErrors
}
