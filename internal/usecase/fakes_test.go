package usecase

import (
	"context"
	"fmt"
	"time"

	"customer-service/internal/domain"
	"customer-service/internal/graph"
	"customer-service/internal/repository"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory CustomerRepository with the same identity
// semantics as the Postgres implementation, including the unique
// constraint on (app_id, platform, platform_id).
type fakeRepo struct {
	customers map[uuid.UUID]*domain.Customer
	createErr error
	patchErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{customers: make(map[uuid.UUID]*domain.Customer)}
}

func (r *fakeRepo) identityKey(appID uuid.UUID, platform domain.Platform, platformID string) string {
	return fmt.Sprintf("%s/%s/%s", appID, platform, platformID)
}

func (r *fakeRepo) Create(ctx context.Context, customer *domain.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := r.identityKey(customer.AppID, customer.Platform, customer.PlatformID)
	for _, existing := range r.customers {
		if r.identityKey(existing.AppID, existing.Platform, existing.PlatformID) == key {
			return domain.ErrConflict
		}
	}
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *customer
	return &copied, nil
}

func (r *fakeRepo) GetByIdentity(ctx context.Context, appID uuid.UUID, platform domain.Platform, platformID string) (*domain.Customer, error) {
	key := r.identityKey(appID, platform, platformID)
	for _, customer := range r.customers {
		if r.identityKey(customer.AppID, customer.Platform, customer.PlatformID) == key {
			copied := *customer
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context, filter repository.ListFilter) ([]*domain.Customer, int, error) {
	matched := []*domain.Customer{}
	for _, customer := range r.customers {
		if customer.AppID != filter.AppID {
			continue
		}
		if filter.Platform != "" && customer.Platform != filter.Platform {
			continue
		}
		copied := *customer
		matched = append(matched, &copied)
	}
	total := len(matched)
	if filter.Offset >= total {
		return []*domain.Customer{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (r *fakeRepo) Patch(ctx context.Context, id uuid.UUID, patch *domain.CustomerPatch) (*domain.Customer, error) {
	if r.patchErr != nil {
		return nil, r.patchErr
	}
	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.FirstName != nil {
		customer.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		customer.LastName = *patch.LastName
	}
	if patch.ProfilePicURL != nil {
		customer.ProfilePicURL = *patch.ProfilePicURL
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.CustomMetadata != nil {
		customer.CustomMetadata = patch.CustomMetadata
	}
	if patch.AccessToken != nil {
		customer.AccessToken = *patch.AccessToken
	}
	if patch.IsActive != nil {
		customer.IsActive = *patch.IsActive
	}
	if patch.IsBlocked != nil {
		customer.IsBlocked = *patch.IsBlocked
	}
	if patch.LastInteractionAt != nil {
		customer.LastInteractionAt = patch.LastInteractionAt
	}
	customer.UpdatedAt = time.Now()
	copied := *customer
	return &copied, nil
}

func (r *fakeRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*domain.Customer, error) {
	return r.Patch(ctx, id, &domain.CustomerPatch{IsBlocked: &blocked})
}

func (r *fakeRepo) TouchInteraction(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	now := time.Now()
	return r.Patch(ctx, id, &domain.CustomerPatch{LastInteractionAt: &now})
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

// seed installs a customer directly, bypassing Create side effects, so
// tests can control UpdatedAt.
func (r *fakeRepo) seed(customer *domain.Customer) *domain.Customer {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	stored := *customer
	r.customers[customer.ID] = &stored
	return customer
}

// fakeFetcher returns a canned profile or error and counts calls.
type fakeFetcher struct {
	profile     *graph.Profile
	err         error
	calls       int
	invalidated []string
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, accessToken, platformID string) (*graph.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeFetcher) Invalidate(ctx context.Context, platformID string) {
	f.invalidated = append(f.invalidated, platformID)
}
