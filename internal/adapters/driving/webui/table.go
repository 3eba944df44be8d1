package webui

import (
	"fmt"
	"html/template"

	"nearbysos/internal/core/domain"
)

// Column describes one table column: which field it shows, how it is
// labelled and, optionally, how the cell is rendered.
type Column struct {
	Key   string
	Label string
	Class string
	// Render overrides the default escaped-text cell for this column.
	Render func(domain.Listing) template.HTML
}

// TableConfig parameterises the generic list page. One definition serves any
// listing collection; ambulances and doctors only differ in the values here.
type TableConfig struct {
	Title        string
	Singular     string
	Icon         string
	Columns      []Column
	PageSize     int
	EmptyMessage string
}

func (c TableConfig) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return 10
}

type cellView struct {
	Class string
	HTML  template.HTML
}

type rowView struct {
	ID    string
	Cells []cellView
}

type pageLink struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// listView is everything the list template needs for one render: the error,
// empty and populated states are all driven from it.
type listView struct {
	Config       TableConfig
	BasePath     string
	Search       string
	Rows         []rowView
	Total        int
	Page         int
	TotalPages   int
	From         int
	To           int
	Pages        []pageLink
	HasPrev      bool
	HasNext      bool
	PrevPage     int
	NextPage     int
	ErrorMessage string
}

func (c Column) cell(listing domain.Listing) cellView {
	if c.Render != nil {
		return cellView{Class: c.Class, HTML: c.Render(listing)}
	}

	return cellView{Class: c.Class, HTML: escaped(fieldValue(listing, c.Key))}
}

func fieldValue(listing domain.Listing, key string) string {
	switch key {
	case "title":
		return listing.Title
	case "description":
		return listing.Description
	case "location":
		return listing.Location
	case "image":
		return listing.Image
	case "createdAt":
		return listing.CreatedAt.Format("Jan 2, 2006")
	case "updatedAt":
		return listing.UpdatedAt.Format("Jan 2, 2006")
	default:
		return ""
	}
}

func escaped(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

// visiblePages computes the pagination controls: always page 1 and the last
// page, every page within 1 of the current one, and an ellipsis marker where
// pages were skipped.
func visiblePages(current, total int) []pageLink {
	links := []pageLink{}

	lastShown := 0
	for p := 1; p <= total; p++ {
		if p != 1 && p != total && abs(p-current) > 1 {
			continue
		}

		if lastShown != 0 && lastShown != p-1 {
			links = append(links, pageLink{Ellipsis: true})
		}

		links = append(links, pageLink{Number: p, Current: p == current})
		lastShown = p
	}

	return links
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Standard cell renderers shared by both resource configurations.

// ImageCell renders a thumbnail that hides itself if the image fails to
// load, same as the form preview.
func ImageCell(listing domain.Listing) template.HTML {
	if listing.Image == "" {
		return `<span class="muted">&mdash;</span>`
	}

	return template.HTML(fmt.Sprintf(
		`<img src="%s" alt="%s" class="thumb" onerror="this.style.display='none'">`,
		template.HTMLEscapeString(listing.Image),
		template.HTMLEscapeString(listing.Title),
	))
}

// TruncatedCell shortens a long text field for table display.
func TruncatedCell(key string, maxLen int) func(domain.Listing) template.HTML {
	return func(listing domain.Listing) template.HTML {
		value := fieldValue(listing, key)
		if len(value) > maxLen {
			value = value[:maxLen] + "…"
		}
		return escaped(value)
	}
}

// AmbulanceTable is the list configuration for the ambulances collection.
func AmbulanceTable() TableConfig {
	return TableConfig{
		Title:        "Ambulances",
		Singular:     "ambulance",
		Icon:         "🚑",
		PageSize:     10,
		EmptyMessage: "Get started by adding your first ambulance.",
		Columns: []Column{
			{Key: "image", Label: "Image", Class: "col-image", Render: ImageCell},
			{Key: "title", Label: "Title"},
			{Key: "description", Label: "Description", Render: TruncatedCell("description", 80)},
			{Key: "location", Label: "Location"},
			{Key: "createdAt", Label: "Added", Class: "col-date"},
		},
	}
}

// DoctorTable is the list configuration for the doctors collection.
func DoctorTable() TableConfig {
	return TableConfig{
		Title:        "Doctors",
		Singular:     "doctor",
		Icon:         "👨‍⚕️",
		PageSize:     10,
		EmptyMessage: "Get started by adding your first doctor.",
		Columns: []Column{
			{Key: "image", Label: "Photo", Class: "col-image", Render: ImageCell},
			{Key: "title", Label: "Name"},
			{Key: "description", Label: "Specialty", Render: TruncatedCell("description", 80)},
			{Key: "location", Label: "Location"},
			{Key: "createdAt", Label: "Added", Class: "col-date"},
		},
	}
}
