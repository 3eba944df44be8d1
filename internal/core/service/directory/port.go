package directory

import (
	"context"

	"nearbysos/internal/core/domain"
)

// Repository is the driven port one listing collection is stored behind.
// Implementations must keep read-modify-write atomic under concurrent
// requests.
type Repository interface {
	// Queries
	List(ctx context.Context) ([]domain.Listing, error)
	Get(ctx context.Context, id string) (domain.Listing, error)
	Count(ctx context.Context) (int, error)

	// Commands
	Create(ctx context.Context, input domain.NewListing) (domain.Listing, error)
	Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service is the driving port the HTTP layer talks to. One instance per
// resource type, both built from the same implementation.
type Service interface {
	// Queries
	List(ctx context.Context, params ListParams) (PagedListings, error)
	Get(ctx context.Context, id string) (domain.Listing, error)
	Count(ctx context.Context) (int, error)

	// Commands
	Create(ctx context.Context, input domain.NewListing) (domain.Listing, error)
	Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error)
	Delete(ctx context.Context, id string) error
}
