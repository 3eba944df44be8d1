package memrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nearbysos/internal/core/domain"
	"nearbysos/internal/core/service/directory"

	"github.com/gofrs/uuid/v5"
)

// MemRepository holds one resource type's listings for the process lifetime.
// The RWMutex keeps read-modify-write atomic when chi serves requests
// concurrently; there is no persistence, a restart resets to the seed data.
type MemRepository struct {
	mu       sync.RWMutex
	listings []domain.Listing
	now      func() time.Time
}

var _ directory.Repository = (*MemRepository)(nil)

// New creates an empty repository.
func New() *MemRepository {
	return &MemRepository{
		now: time.Now,
	}
}

// NewSeeded creates a repository pre-populated with the given listings, in
// order. The seed slice is copied so the caller keeps ownership of its own.
func NewSeeded(seed []domain.Listing) *MemRepository {
	repo := New()
	repo.listings = make([]domain.Listing, len(seed))
	copy(repo.listings, seed)

	return repo
}

func (r *MemRepository) List(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// snapshot copy - callers must not be able to mutate stored state
	result := make([]domain.Listing, len(r.listings))
	copy(result, r.listings)

	return result, nil
}

func (r *MemRepository) Get(ctx context.Context, id string) (domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, listing := range r.listings {
		if listing.ID == id {
			return listing, nil
		}
	}

	return domain.Listing{}, directory.ErrNotFound
}

func (r *MemRepository) Create(ctx context.Context, input domain.NewListing) (domain.Listing, error) {
	newID, err := uuid.NewV7()
	if err != nil {
		return domain.Listing{}, fmt.Errorf("Create: could not generate uuid: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	listing := domain.Listing{
		ID:          newID.String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.listings = append(r.listings, listing)

	return listing, nil
}

func (r *MemRepository) Update(ctx context.Context, id string, patch domain.ListingPatch) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.listings {
		if r.listings[i].ID != id {
			continue
		}

		// merge only the provided fields; ID and CreatedAt are never
		// overwritten by an update
		patch.Apply(&r.listings[i])
		r.listings[i].UpdatedAt = r.now()

		return r.listings[i], nil
	}

	return domain.Listing{}, directory.ErrNotFound
}

func (r *MemRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.listings {
		if r.listings[i].ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (r *MemRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.listings), nil
}
