package webui_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nearbysos/internal/adapters/driving/webui"
	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeAPI implements the data-access contract without a network.
type fakeAPI struct {
	listings  []domain.Listing
	failWith  error
	created   []domain.NewListing
	deletedID string
}

var _ webui.ResourceAPI = (*fakeAPI)(nil)

func (f *fakeAPI) List(ctx context.Context, page, limit int, search string) (directory.PagedListings, error) {
	if f.failWith != nil {
		return directory.PagedListings{}, f.failWith
	}
	return directory.Paginate(f.listings, directory.ListParams{Page: page, Limit: limit, Search: search}), nil
}

func (f *fakeAPI) Count(ctx context.Context) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return len(f.listings), nil
}

func (f *fakeAPI) Get(ctx context.Context, id string) (domain.Listing, error) {
	if f.failWith != nil {
		return domain.Listing{}, f.failWith
	}
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, directory.ErrNotFound
}

func (f *fakeAPI) Create(ctx context.Context, input domain.NewListing) (domain.Listing, error) {
	if f.failWith != nil {
		return domain.Listing{}, f.failWith
	}
	f.created = append(f.created, input)
	return domain.Listing{ID: "new-id", Title: input.Title}, nil
}

func (f *fakeAPI) Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error) {
	if f.failWith != nil {
		return domain.Listing{}, f.failWith
	}
	return domain.Listing{ID: id}, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deletedID = id
	return nil
}

func sampleListings(n int) []domain.Listing {
	listings := make([]domain.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, domain.Listing{
			ID:          string(rune('a' + i)),
			Title:       "Unit " + string(rune('A'+i)),
			Description: "desc",
			Location:    "Station",
		})
	}
	return listings
}

func newTestUI(t *testing.T, api webui.ResourceAPI) http.Handler {
	t.Helper()

	h, err := webui.NewHandler(zap.NewNop(),
		webui.Section{Name: "ambulances", Config: webui.AmbulanceTable(), API: api},
	)
	assert.NoError(t, err)

	return h.SetupRoutes()
}

func TestIndexPage(t *testing.T) {
	handler := newTestUI(t, &fakeAPI{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ambulances")
}

func TestListPageStates(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		handler := newTestUI(t, &fakeAPI{listings: sampleListings(3)})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Unit A")
		assert.Contains(t, body, "Unit C")
		assert.Contains(t, body, "Total: 3")
	})

	t.Run("empty", func(t *testing.T) {
		handler := newTestUI(t, &fakeAPI{})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No ambulances found")
	})

	t.Run("error offers retry", func(t *testing.T) {
		handler := newTestUI(t, &fakeAPI{failWith: errors.New("connection refused")})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances?page=2", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "connection refused")
		assert.Contains(t, body, "Try Again")
		// the retry link re-requests the same page
		assert.Contains(t, body, "page=2")
	})
}

func TestListPagination(t *testing.T) {
	handler := newTestUI(t, &fakeAPI{listings: sampleListings(25)})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances?page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Showing 11 to 20 of 25 results")
	assert.Contains(t, body, "Previous")
	assert.Contains(t, body, "Next")
}

func TestNewFormPage(t *testing.T) {
	handler := newTestUI(t, &fakeAPI{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances/new", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Add ambulance")
	assert.Contains(t, body, `name="title"`)
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestCreateFlow(t *testing.T) {
	t.Run("valid submit redirects to the list", func(t *testing.T) {
		api := &fakeAPI{}
		handler := newTestUI(t, api)

		rec := postForm(handler, "/ambulances/new", url.Values{
			"title":       {"Night Shift Unit"},
			"description": {"On call overnight."},
			"location":    {"Station 13"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/ambulances", rec.Header().Get("Location"))
		assert.Len(t, api.created, 1)
	})

	t.Run("invalid submit re-renders with field errors and no API call", func(t *testing.T) {
		api := &fakeAPI{}
		handler := newTestUI(t, api)

		rec := postForm(handler, "/ambulances/new", url.Values{
			"title":       {""},
			"description": {"d"},
			"location":    {"l"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Title is required")
		assert.Empty(t, api.created)
	})

	t.Run("API failure surfaces as an inline alert", func(t *testing.T) {
		api := &fakeAPI{failWith: errors.New("server exploded")}
		handler := newTestUI(t, api)

		rec := postForm(handler, "/ambulances/new", url.Values{
			"title":       {"t"},
			"description": {"d"},
			"location":    {"l"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "server exploded")
	})
}

func TestEditFormPage(t *testing.T) {
	listings := sampleListings(2)
	handler := newTestUI(t, &fakeAPI{listings: listings})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ambulances/a/edit", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Edit ambulance")
	assert.Contains(t, body, "Unit A")
}

func TestDeleteFlow(t *testing.T) {
	api := &fakeAPI{listings: sampleListings(2)}
	handler := newTestUI(t, api)

	rec := postForm(handler, "/ambulances/a/delete?page=2", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ambulances?page=2", rec.Header().Get("Location"))
	assert.Equal(t, "a", api.deletedID)
}
