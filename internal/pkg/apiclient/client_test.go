package apiclient_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"nearbysos/internal/adapters/driven/memrepo"
	"nearbysos/internal/adapters/driving/httpadapter"
	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"
	"nearbysos/internal/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

// the client is exercised against the real router so the envelope contract
// is tested end to end
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ambulances := directory.NewService(memrepo.NewSeeded(memrepo.SeedAmbulances()))
	doctors := directory.NewService(memrepo.NewSeeded(memrepo.SeedDoctors()))

	h := httpadapter.NewHandler(zap.NewNop(),
		httpadapter.Options{
			APIPrefix:       "/api/v1",
			AllowedOrigin:   "http://localhost:5173",
			RateLimitMax:    1000,
			RateLimitWindow: time.Minute,
		},
		httpadapter.Resource{Name: "ambulances", Service: ambulances},
		httpadapter.Resource{Name: "doctors", Service: doctors},
	)

	server := httptest.NewServer(h.SetupRoutes())
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T) *apiclient.Client {
	t.Helper()
	return apiclient.New(newTestServer(t).URL, "/api/v1", 5*time.Second)
}

func TestClientList(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	page, err := client.Resource("ambulances").List(ctx, 2, 5, "")

	assert.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, "6", page.Data[0].ID)
}

func TestClientListWithSearch(t *testing.T) {
	client := newTestClient(t)

	page, err := client.Resource("doctors").List(context.Background(), 1, 10, "trauma")

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Dr. Michael Chen", page.Data[0].Title)
}

func TestClientCount(t *testing.T) {
	client := newTestClient(t)

	count, err := client.Resource("doctors").Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestClientGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("known id", func(t *testing.T) {
		listing, err := client.Resource("ambulances").Get(ctx, "7")

		assert.NoError(t, err)
		assert.Equal(t, "Air Medical Unit 07", listing.Title)
	})

	t.Run("unknown id surfaces the server message", func(t *testing.T) {
		_, err := client.Resource("ambulances").Get(ctx, "unknown-id")

		var apiErr *apiclient.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "not found")
	})
}

func TestClientCreate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("valid input echoes fields back", func(t *testing.T) {
		created, err := client.Resource("ambulances").Create(ctx, domain.NewListing{
			Title:       "Night Shift Unit",
			Description: "On call overnight.",
			Location:    "Station 13",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Night Shift Unit", created.Title)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("validation failure carries the field list", func(t *testing.T) {
		_, err := client.Resource("ambulances").Create(ctx, domain.NewListing{
			Description: "d",
			Location:    "l",
		})

		var apiErr *apiclient.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Len(t, apiErr.Fields, 1)
		assert.Equal(t, "title", apiErr.Fields[0].Field)
	})
}

func TestClientUpdate(t *testing.T) {
	client := newTestClient(t)

	updated, err := client.Resource("doctors").Update(context.Background(), "2",
		domain.ListingPatch{Location: strPtr("New Wing")})

	assert.NoError(t, err)
	assert.Equal(t, "New Wing", updated.Location)
	assert.Equal(t, "Dr. Michael Chen", updated.Title)
}

func TestClientDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	doctors := client.Resource("doctors")

	assert.NoError(t, doctors.Delete(ctx, "3"))

	_, err := doctors.Get(ctx, "3")
	var apiErr *apiclient.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)

	err = doctors.Delete(ctx, "unknown-id")
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "not found")
}

func TestClientConnectionError(t *testing.T) {
	client := apiclient.New("http://127.0.0.1:1", "/api/v1", time.Second)

	_, err := client.Resource("ambulances").List(context.Background(), 1, 10, "")

	assert.Error(t, err)

	var apiErr *apiclient.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}
