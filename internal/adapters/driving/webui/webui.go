// Package webui is the server-rendered front end of the directory: a generic
// table page and a shared create/edit form, instantiated once per resource
// type and backed by the listing API over HTTP.
package webui

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ResourceAPI is the data-access contract the UI renders against. The resty
// client implements it; tests substitute fakes.
type ResourceAPI interface {
	List(ctx context.Context, page, limit int, search string) (directory.PagedListings, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id string) (domain.Listing, error)
	Create(ctx context.Context, input domain.NewListing) (domain.Listing, error)
	Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

// Section pairs one resource's table configuration with its API access.
type Section struct {
	Name   string
	Config TableConfig
	API    ResourceAPI
}

type Handler struct {
	sections []Section
	logger   *zap.Logger
	tmpl     *template.Template
}

func NewHandler(logger *zap.Logger, sections ...Section) (*Handler, error) {
	tmpl, err := template.New("webui").
		Funcs(template.FuncMap{"lower": strings.ToLower}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	return &Handler{
		sections: sections,
		logger:   logger,
		tmpl:     tmpl,
	}, nil
}

func (h *Handler) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)

	router.Get("/", h.HandleIndex)

	for _, section := range h.sections {
		section := section

		router.Route("/"+section.Name, func(r chi.Router) {
			r.Get("/", h.HandleList(section))
			r.Get("/new", h.HandleNewForm(section))
			r.Post("/new", h.HandleCreate(section))
			r.Get("/{id}/edit", h.HandleEditForm(section))
			r.Post("/{id}/edit", h.HandleUpdate(section))
			r.Post("/{id}/delete", h.HandleDelete(section))
		})
	}

	return router
}

// render buffers the template output so a render failure can still produce a
// clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer

	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

type indexView struct {
	Sections []Section
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.tmpl", indexView{Sections: h.sections})
}

// HandleList fetches one page plus the collection count and renders the
// error, empty or populated state. A fetch failure keeps the page number so
// the retry link re-requests the same page.
func (h *Handler) HandleList(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page := 1
		if p, err := strconv.Atoi(query.Get("page")); err == nil && p >= 1 {
			page = p
		}
		search := query.Get("search")

		view := listView{
			Config:   section.Config,
			BasePath: "/" + section.Name,
			Search:   search,
			Page:     page,
		}

		limit := section.Config.pageSize()

		result, err := section.API.List(r.Context(), page, limit, search)
		if err != nil {
			view.ErrorMessage = err.Error()
			h.render(w, "list.tmpl", view)
			return
		}

		count, err := section.API.Count(r.Context())
		if err != nil {
			view.ErrorMessage = err.Error()
			h.render(w, "list.tmpl", view)
			return
		}

		view.Total = count
		view.TotalPages = result.TotalPages
		view.Pages = visiblePages(page, result.TotalPages)
		view.HasPrev = page > 1
		view.HasNext = page < result.TotalPages
		view.PrevPage = page - 1
		view.NextPage = page + 1

		if len(result.Data) > 0 {
			view.From = (page-1)*limit + 1
			view.To = (page-1)*limit + len(result.Data)
		}

		view.Rows = make([]rowView, 0, len(result.Data))
		for _, listing := range result.Data {
			row := rowView{ID: listing.ID}
			for _, col := range section.Config.Columns {
				row.Cells = append(row.Cells, col.cell(listing))
			}
			view.Rows = append(view.Rows, row)
		}

		h.render(w, "list.tmpl", view)
	}
}

func (h *Handler) HandleNewForm(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, "form.tmpl", formView{
			Config:   section.Config,
			BasePath: "/" + section.Name,
			Action:   "/" + section.Name + "/new",
		})
	}
}

func (h *Handler) HandleCreate(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		values := formValuesFromRequest(r.PostForm)

		view := formView{
			Config:   section.Config,
			BasePath: "/" + section.Name,
			Action:   "/" + section.Name + "/new",
			Values:   values,
		}

		// validation mirror - invalid input never reaches the API
		if fieldErrors := values.validate(); fieldErrors != nil {
			view.Errors = fieldErrors
			h.render(w, "form.tmpl", view)
			return
		}

		if _, err := section.API.Create(r.Context(), values.toInput()); err != nil {
			view.Alert = err.Error()
			h.render(w, "form.tmpl", view)
			return
		}

		http.Redirect(w, r, "/"+section.Name, http.StatusSeeOther)
	}
}

func (h *Handler) HandleEditForm(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		listing, err := section.API.Get(r.Context(), id)
		if err != nil {
			view := listView{
				Config:       section.Config,
				BasePath:     "/" + section.Name,
				ErrorMessage: err.Error(),
			}
			h.render(w, "list.tmpl", view)
			return
		}

		h.render(w, "form.tmpl", formView{
			Config:   section.Config,
			BasePath: "/" + section.Name,
			Action:   "/" + section.Name + "/" + id + "/edit",
			IsEdit:   true,
			Values:   formValuesFromListing(listing),
		})
	}
}

func (h *Handler) HandleUpdate(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "id")
		values := formValuesFromRequest(r.PostForm)

		view := formView{
			Config:   section.Config,
			BasePath: "/" + section.Name,
			Action:   "/" + section.Name + "/" + id + "/edit",
			IsEdit:   true,
			Values:   values,
		}

		if fieldErrors := values.validate(); fieldErrors != nil {
			view.Errors = fieldErrors
			h.render(w, "form.tmpl", view)
			return
		}

		if _, err := section.API.Update(r.Context(), id, values.toPatch()); err != nil {
			view.Alert = err.Error()
			h.render(w, "form.tmpl", view)
			return
		}

		http.Redirect(w, r, "/"+section.Name, http.StatusSeeOther)
	}
}

// HandleDelete removes a listing and returns to the page the user was on.
// The confirmation step lives in the list template's submit handler.
func (h *Handler) HandleDelete(section Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		target := "/" + section.Name
		if page := r.URL.Query().Get("page"); page != "" {
			target += "?page=" + page
		}

		if err := section.API.Delete(r.Context(), id); err != nil {
			view := listView{
				Config:       section.Config,
				BasePath:     "/" + section.Name,
				ErrorMessage: err.Error(),
			}
			h.render(w, "list.tmpl", view)
			return
		}

		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}
