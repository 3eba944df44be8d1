package directory

import (
	"context"
	"fmt"
	"strings"

	"nearbysos/internal/core/domain"
)

type listingService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &listingService{
		repo: repo,
	}
}

var _ Service = (*listingService)(nil)

func (s *listingService) List(ctx context.Context, params ListParams) (PagedListings, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return PagedListings{}, fmt.Errorf("List: %w", err)
	}

	return Paginate(items, params), nil
}

func (s *listingService) Get(ctx context.Context, id string) (domain.Listing, error) {
	if id == "" {
		return domain.Listing{}, ErrEmptyID
	}

	return s.repo.Get(ctx, id)
}

func (s *listingService) Create(ctx context.Context, input domain.NewListing) (domain.Listing, error) {
	// The HTTP layer validates the body before it gets here, but the service
	// re-checks the required fields so a future caller cannot slip an empty
	// listing past it.
	for field, value := range map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"location":    input.Location,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.Listing{}, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("Create: %w", err)
	}

	return created, nil
}

func (s *listingService) Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error) {
	if id == "" {
		return domain.Listing{}, ErrEmptyID
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	if !removed {
		return ErrNotFound
	}

	return nil
}

func (s *listingService) Count(ctx context.Context) (int, error) {
	// Always the store's O(1) count - never fetch the collection just to
	// measure its length.
	return s.repo.Count(ctx)
}
