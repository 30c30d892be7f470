// internal/usecase/customer_uc.go
package usecase

import (
	"context"
	"fmt"
	"strings"

	"customer-service/internal/domain"
	"customer-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput is the manual creation path: app, identity and optionally a
// page access token for later profile refreshes.
type CreateInput struct {
	AppID          uuid.UUID
	Platform       domain.Platform
	PlatformID     string
	FirstName      string
	LastName       string
	ProfilePicURL  string
	Email          string
	Phone          string
	CustomMetadata map[string]interface{}
	AccessToken    string
}

func (uc *CustomerUsecase) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	if in.AppID == uuid.Nil {
		return nil, fmt.Errorf("%w: app_id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.PlatformID) == "" {
		return nil, fmt.Errorf("%w: platform_id is required", domain.ErrInvalidInput)
	}
	if in.Platform == "" {
		in.Platform = domain.PlatformInstagram
	}
	if in.Platform != domain.PlatformInstagram && in.Platform != domain.PlatformFacebook {
		return nil, domain.ErrInvalidPlatform
	}

	customer := &domain.Customer{
		AppID:          in.AppID,
		Platform:       in.Platform,
		PlatformID:     in.PlatformID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		ProfilePicURL:  in.ProfilePicURL,
		Email:          in.Email,
		Phone:          in.Phone,
		CustomMetadata: in.CustomMetadata,
		AccessToken:    in.AccessToken,
		IsActive:       true,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	uc.logger.Info("customer created manually",
		zap.String("customer_id", customer.ID.String()),
		zap.String("platform_id", customer.PlatformID))
	return customer, nil
}

func (uc *CustomerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *CustomerUsecase) GetByPlatformID(ctx context.Context, appID uuid.UUID, platform domain.Platform, platformID string) (*domain.Customer, error) {
	if platform == "" {
		platform = domain.PlatformInstagram
	}
	return uc.repo.GetByIdentity(ctx, appID, platform, platformID)
}

// ListInput uses 1-based pages; size is clamped to [1,100] with a default
// of 50.
type ListInput struct {
	AppID    uuid.UUID
	Page     int
	Size     int
	Platform domain.Platform
	Search   string
}

type ListResult struct {
	Customers  []*domain.Customer
	Total      int
	Page       int
	Size       int
	TotalPages int
}

func (uc *CustomerUsecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	if in.AppID == uuid.Nil {
		return nil, fmt.Errorf("%w: app_id is required", domain.ErrInvalidInput)
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Size < 1 {
		in.Size = 50
	}
	if in.Size > 100 {
		in.Size = 100
	}
	if in.Platform != "" &&
		in.Platform != domain.PlatformInstagram && in.Platform != domain.PlatformFacebook {
		return nil, domain.ErrInvalidPlatform
	}

	customers, total, err := uc.repo.List(ctx, repository.ListFilter{
		AppID:    in.AppID,
		Platform: in.Platform,
		Search:   strings.TrimSpace(in.Search),
		Offset:   (in.Page - 1) * in.Size,
		Limit:    in.Size,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Customers:  customers,
		Total:      total,
		Page:       in.Page,
		Size:       in.Size,
		TotalPages: (total + in.Size - 1) / in.Size,
	}, nil
}

func (uc *CustomerUsecase) Update(ctx context.Context, id uuid.UUID, patch *domain.CustomerPatch) (*domain.Customer, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: empty update", domain.ErrInvalidInput)
	}
	return uc.repo.Patch(ctx, id, patch)
}

func (uc *CustomerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}

func (uc *CustomerUsecase) Block(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.repo.SetBlocked(ctx, id, true)
}

func (uc *CustomerUsecase) Unblock(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.repo.SetBlocked(ctx, id, false)
}

// TouchInteraction records that the contact just messaged, independent of
// any profile refresh.
func (uc *CustomerUsecase) TouchInteraction(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.repo.TouchInteraction(ctx, id)
}

// RefreshProfile is the explicit, single-shot profile fetch. Unlike
// Identify it has no fallback record to hide behind: a failed fetch is
// surfaced to the caller, and a record without a stored access token is a
// caller error.
func (uc *CustomerUsecase) RefreshProfile(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.AccessToken == "" {
		return nil, domain.ErrNoAccessToken
	}

	// Bypass the cache: the caller asked for a fresh fetch.
	uc.fetcher.Invalidate(ctx, customer.PlatformID)

	profile, err := uc.fetcher.FetchProfile(ctx, customer.AccessToken, customer.PlatformID)
	if err != nil {
		return nil, err
	}

	firstName, lastName := normalizeName(profile)
	profilePic := profile.ProfilePic()

	patch := &domain.CustomerPatch{
		CustomMetadata: profile.Fields,
	}
	if firstName != "" {
		patch.FirstName = &firstName
	}
	if lastName != "" {
		patch.LastName = &lastName
	}
	if profilePic != "" {
		patch.ProfilePicURL = &profilePic
	}

	updated, err := uc.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("apply refreshed profile: %w", err)
	}
	uc.logger.Info("profile refreshed on request",
		zap.String("customer_id", id.String()),
		zap.String("platform_id", customer.PlatformID))
	return updated, nil
}
