package usecase

import (
	"context"
	"testing"

	"customer-service/internal/domain"
	"customer-service/internal/graph"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCustomerUsecase(repo *fakeRepo, fetcher *fakeFetcher) *CustomerUsecase {
	return NewCustomerUsecase(repo, fetcher, zap.NewNop())
}

func TestCreateRejectsDuplicateIdentity(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	appID := uuid.New()
	in := CreateInput{AppID: appID, PlatformID: "17843011"}

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListPagination(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	appID := uuid.New()
	for i := 0; i < 7; i++ {
		_, err := uc.Create(context.Background(), CreateInput{
			AppID:      appID,
			PlatformID: uuid.NewString(),
		})
		require.NoError(t, err)
	}

	res, err := uc.List(context.Background(), ListInput{AppID: appID, Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Customers, 3)

	res, err = uc.List(context.Background(), ListInput{AppID: appID, Page: 3, Size: 3})
	require.NoError(t, err)
	assert.Len(t, res.Customers, 1)
}

func TestListDefaultsAndClamps(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	res, err := uc.List(context.Background(), ListInput{AppID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 50, res.Size)

	res, err = uc.List(context.Background(), ListInput{AppID: uuid.New(), Size: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Size)

	_, err = uc.List(context.Background(), ListInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	uc := newCustomerUsecase(newFakeRepo(), &fakeFetcher{})

	_, err := uc.Update(context.Background(), uuid.New(), &domain.CustomerPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBlockUnblock(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	customer, err := uc.Create(context.Background(), CreateInput{
		AppID:      uuid.New(),
		PlatformID: "17843011",
	})
	require.NoError(t, err)

	blocked, err := uc.Block(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	unblocked, err := uc.Unblock(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
}

func TestTouchInteraction(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	customer, err := uc.Create(context.Background(), CreateInput{
		AppID:      uuid.New(),
		PlatformID: "17843011",
	})
	require.NoError(t, err)
	require.Nil(t, customer.LastInteractionAt)

	touched, err := uc.TouchInteraction(context.Background(), customer.ID)
	require.NoError(t, err)
	require.NotNil(t, touched.LastInteractionAt)
}

func TestRefreshProfileRequiresAccessToken(t *testing.T) {
	repo := newFakeRepo()
	uc := newCustomerUsecase(repo, &fakeFetcher{})

	customer, err := uc.Create(context.Background(), CreateInput{
		AppID:      uuid.New(),
		PlatformID: "17843011",
	})
	require.NoError(t, err)

	_, err = uc.RefreshProfile(context.Background(), customer.ID)
	assert.ErrorIs(t, err, domain.ErrNoAccessToken)
}

func TestRefreshProfileBypassesCacheAndApplies(t *testing.T) {
	repo := newFakeRepo()
	fetcher := &fakeFetcher{profile: &graph.Profile{
		Shape: graph.ShapeInstagram,
		Fields: map[string]interface{}{
			"name":     "Ana Lee",
			"username": "ana.lee",
		},
	}}
	uc := newCustomerUsecase(repo, fetcher)

	customer, err := uc.Create(context.Background(), CreateInput{
		AppID:       uuid.New(),
		PlatformID:  "17843011",
		AccessToken: "page-token",
	})
	require.NoError(t, err)

	refreshed, err := uc.RefreshProfile(context.Background(), customer.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"17843011"}, fetcher.invalidated)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "Ana", refreshed.FirstName)
	assert.Equal(t, "Lee", refreshed.LastName)
	assert.Equal(t, "ana.lee", refreshed.CustomMetadata["username"])
}

func TestRefreshProfileSurfacesFetchFailure(t *testing.T) {
	repo := newFakeRepo()
	fetcher := &fakeFetcher{err: domain.ErrProfileUnavailable}
	uc := newCustomerUsecase(repo, fetcher)

	customer, err := uc.Create(context.Background(), CreateInput{
		AppID:       uuid.New(),
		PlatformID:  "17843011",
		AccessToken: "page-token",
	})
	require.NoError(t, err)

	_, err = uc.RefreshProfile(context.Background(), customer.ID)
	assert.ErrorIs(t, err, domain.ErrProfileUnavailable)
}
