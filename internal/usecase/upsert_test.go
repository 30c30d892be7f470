package usecase

import (
	"context"
	"testing"
	"time"

	"customer-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpsertCreatesCustomer(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCustomerUsecase(repo, &fakeFetcher{}, zap.NewNop())

	appID := uuid.New()
	customer, created, err := uc.Upsert(context.Background(), UpsertInput{
		AppID:      appID,
		PlatformID: "17843011",
		FirstName:  "Ana",
		LastName:   "Lee",
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, domain.PlatformInstagram, customer.Platform)
	assert.True(t, customer.IsActive)
	require.NotNil(t, customer.LastInteractionAt)
}

func TestUpsertPartialOverwrite(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCustomerUsecase(repo, &fakeFetcher{}, zap.NewNop())

	appID := uuid.New()
	repo.seed(&domain.Customer{
		AppID:         appID,
		Platform:      domain.PlatformInstagram,
		PlatformID:    "17843011",
		FirstName:     "Ana",
		LastName:      "Lee",
		ProfilePicURL: "https://cdn.example.com/old.jpg",
		CustomMetadata: map[string]interface{}{
			"username": "ana.lee",
		},
	})

	customer, created, err := uc.Upsert(context.Background(), UpsertInput{
		AppID:         appID,
		PlatformID:    "17843011",
		ProfilePicURL: "https://cdn.example.com/new.jpg",
	})
	require.NoError(t, err)

	assert.False(t, created)
	// Empty input fields leave stored values alone.
	assert.Equal(t, "Ana", customer.FirstName)
	assert.Equal(t, "Lee", customer.LastName)
	assert.Equal(t, "https://cdn.example.com/new.jpg", customer.ProfilePicURL)
	// Metadata is never touched by this path.
	assert.Equal(t, "ana.lee", customer.CustomMetadata["username"])
	// An upsert means the contact just messaged.
	require.NotNil(t, customer.LastInteractionAt)
	assert.WithinDuration(t, time.Now(), *customer.LastInteractionAt, 5*time.Second)
}

func TestUpsertNeverCallsGraphAPI(t *testing.T) {
	repo := newFakeRepo()
	fetcher := &fakeFetcher{}
	uc := NewCustomerUsecase(repo, fetcher, zap.NewNop())

	_, _, err := uc.Upsert(context.Background(), UpsertInput{
		AppID:      uuid.New(),
		PlatformID: "17843011",
		FirstName:  "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fetcher.calls)
}

func TestUpsertValidation(t *testing.T) {
	uc := NewCustomerUsecase(newFakeRepo(), &fakeFetcher{}, zap.NewNop())

	_, _, err := uc.Upsert(context.Background(), UpsertInput{PlatformID: "17843011"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Upsert(context.Background(), UpsertInput{AppID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Upsert(context.Background(), UpsertInput{
		AppID: uuid.New(), PlatformID: "17843011", Platform: "telegram",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
}
