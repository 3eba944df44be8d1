package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"nearbysos/internal/core/service/directory"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

const (
	MaxRequestSize = 10 * 1024 * 1024 // 10MB max request size
)

// Resource binds one URL segment (e.g. "ambulances") to the service that
// owns its collection. The route table is identical for every resource.
type Resource struct {
	Name    string
	Service directory.Service
}

// Options configure the cross-cutting middleware of the router.
type Options struct {
	APIPrefix       string
	AllowedOrigin   string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

type Handler struct {
	resources []Resource
	opts      Options
	logger    *zap.Logger
	startedAt time.Time
}

func NewHandler(logger *zap.Logger, opts Options, resources ...Resource) *Handler {
	return &Handler{
		resources: resources,
		opts:      opts,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// handleError is the single place errors turn into HTTP responses. It
// switches on the error kind decided at the point of failure - no route
// formats its own error body and nothing inspects message text.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var verr *directory.ValidationError

	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error(), verr.Fields)

	case errors.Is(err, directory.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)

	case errors.Is(err, directory.ErrEmptyID),
		errors.Is(err, directory.ErrMissingField),
		errors.Is(err, directory.ErrNoDataProvided):
		respondError(w, http.StatusBadRequest, err.Error(), nil)

	default:
		h.logger.Error("unhandled error from service", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}

func (h *Handler) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestLogger(h.logger))
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.opts.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(httprate.Limit(
		h.opts.RateLimitMax,
		h.opts.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusTooManyRequests,
				"Too many requests from this IP, please try again later.", nil)
		}),
	))

	router.Get("/health", h.HandleHealth)
	router.Get("/", h.HandleIndex)

	router.Route(h.opts.APIPrefix, func(api chi.Router) {
		for _, res := range h.resources {
			api.Route("/"+res.Name, func(r chi.Router) {
				h.mountResource(r, res.Service)
			})
		}
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Route %s not found", r.URL.Path), nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method), nil)
	})

	return router
}

// mountResource wires the uniform CRUD route table for one collection.
func (h *Handler) mountResource(r chi.Router, svc directory.Service) {
	r.Get("/", h.HandleList(svc))
	r.Get("/count", h.HandleCount(svc))
	r.Get("/{id}", h.HandleGet(svc))

	// write operations get body validation and size limits
	r.Group(func(r chi.Router) {
		r.Use(RequestSizeLimit(MaxRequestSize))
		r.With(ValidateCreateBody).Post("/", h.HandleCreate(svc))
		r.With(ValidateUpdateBody).Put("/{id}", h.HandleUpdate(svc))
	})

	r.Delete("/{id}", h.HandleDelete(svc))
}

func (h *Handler) HandleList(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params, err := directory.ParseListParams(
			query.Get("page"), query.Get("limit"), query.Get("search"))
		if err != nil {
			h.handleError(w, err)
			return
		}

		page, err := svc.List(r.Context(), params)
		if err != nil {
			h.handleError(w, err)
			return
		}

		respondSuccess(w, http.StatusOK, page, "")
	}
}

func (h *Handler) HandleCount(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Count(r.Context())
		if err != nil {
			h.handleError(w, err)
			return
		}

		respondSuccess(w, http.StatusOK, map[string]int{"count": count}, "")
	}
}

func (h *Handler) HandleGet(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.handleError(w, err)
			return
		}

		respondSuccess(w, http.StatusOK, listing, "")
	}
}

func (h *Handler) HandleCreate(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := newListingFromContext(r.Context())
		if !ok {
			// the validation middleware was not mounted - a wiring bug
			h.handleError(w, fmt.Errorf("%w: create payload missing from context", directory.ErrInternal))
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			h.handleError(w, err)
			return
		}

		respondSuccess(w, http.StatusCreated, created, "Created successfully")
	}
}

func (h *Handler) HandleUpdate(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, ok := patchFromContext(r.Context())
		if !ok {
			h.handleError(w, fmt.Errorf("%w: update payload missing from context", directory.ErrInternal))
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			h.handleError(w, err)
			return
		}

		respondSuccess(w, http.StatusOK, updated, "Updated successfully")
	}
}

func (h *Handler) HandleDelete(svc directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			h.handleError(w, err)
			return
		}

		// 204 carries no body
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
	}, "Server is running")
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"health": "/health",
	}
	for _, res := range h.resources {
		endpoints[res.Name] = h.opts.APIPrefix + "/" + res.Name
	}

	respondSuccess(w, http.StatusOK, map[string]any{
		"version":   "1.0.0",
		"endpoints": endpoints,
	}, "Nearby SOS API Server")
}
