package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxKeyNewListing ctxKey = iota
	ctxKeyListingPatch
)

// RequestSizeLimit caps the request body so oversized payloads fail fast
// instead of being buffered in full.
func RequestSizeLimit(maxSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one structured line per request once the response has
// been written.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}

// ValidateCreateBody decodes and validates a create payload before the
// handler runs. On any rule violation the request is answered here with the
// full list of field errors and never reaches the service layer.
func ValidateCreateBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var input domain.NewListing
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, "Request body must be valid JSON", nil)
			return
		}

		if err := directory.ValidateNew(input); err != nil {
			respondValidationError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyNewListing, input)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateUpdateBody is the update-side counterpart: same per-field rules,
// but every field is optional.
func ValidateUpdateBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var patch domain.ListingPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondError(w, http.StatusBadRequest, "Request body must be valid JSON", nil)
			return
		}

		if err := directory.ValidatePatch(patch); err != nil {
			respondValidationError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyListingPatch, patch)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func respondValidationError(w http.ResponseWriter, err error) {
	var verr *directory.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Error(), verr.Fields)
		return
	}

	respondError(w, http.StatusBadRequest, err.Error(), nil)
}

// newListingFromContext retrieves the payload stored by ValidateCreateBody.
func newListingFromContext(ctx context.Context) (domain.NewListing, bool) {
	input, ok := ctx.Value(ctxKeyNewListing).(domain.NewListing)
	return input, ok
}

// patchFromContext retrieves the payload stored by ValidateUpdateBody.
func patchFromContext(ctx context.Context) (domain.ListingPatch, bool) {
	patch, ok := ctx.Value(ctxKeyListingPatch).(domain.ListingPatch)
	return patch, ok
}
