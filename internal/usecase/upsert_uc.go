// internal/usecase/upsert_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-service/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpsertInput is the webhook-sync payload: the ingestion pipeline already
// fetched the profile, so no access token and no remote call here.
type UpsertInput struct {
	AppID         uuid.UUID
	Platform      domain.Platform
	PlatformID    string
	FirstName     string
	LastName      string
	ProfilePicURL string
}

// Upsert creates or updates a customer keyed by (app, platform, platform_id).
// On update only non-empty input fields overwrite stored values, and the
// interaction timestamp is touched since an upsert means the contact just
// messaged. CustomMetadata is never touched by this path.
func (uc *CustomerUsecase) Upsert(ctx context.Context, in UpsertInput) (*domain.Customer, bool, error) {
	if in.AppID == uuid.Nil {
		return nil, false, fmt.Errorf("%w: app_id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.PlatformID) == "" {
		return nil, false, fmt.Errorf("%w: platform_id is required", domain.ErrInvalidInput)
	}
	if in.Platform == "" {
		in.Platform = domain.PlatformInstagram
	}
	if in.Platform != domain.PlatformInstagram && in.Platform != domain.PlatformFacebook {
		return nil, false, domain.ErrInvalidPlatform
	}

	now := time.Now()

	existing, err := uc.repo.GetByIdentity(ctx, in.AppID, in.Platform, in.PlatformID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("lookup identity: %w", err)
	}

	if existing != nil {
		patch := &domain.CustomerPatch{LastInteractionAt: &now}
		if in.FirstName != "" {
			patch.FirstName = &in.FirstName
		}
		if in.LastName != "" {
			patch.LastName = &in.LastName
		}
		if in.ProfilePicURL != "" {
			patch.ProfilePicURL = &in.ProfilePicURL
		}

		updated, err := uc.repo.Patch(ctx, existing.ID, patch)
		if err != nil {
			return nil, false, fmt.Errorf("upsert update: %w", err)
		}
		uc.logger.Debug("upsert updated customer",
			zap.String("customer_id", updated.ID.String()),
			zap.String("platform_id", updated.PlatformID))
		return updated, false, nil
	}

	customer := &domain.Customer{
		AppID:             in.AppID,
		Platform:          in.Platform,
		PlatformID:        in.PlatformID,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		ProfilePicURL:     in.ProfilePicURL,
		IsActive:          true,
		LastInteractionAt: &now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, false, err
	}

	uc.logger.Info("upsert created customer",
		zap.String("customer_id", customer.ID.String()),
		zap.String("platform_id", customer.PlatformID))
	return customer, true, nil
}
