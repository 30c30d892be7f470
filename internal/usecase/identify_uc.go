// internal/usecase/identify_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-service/internal/domain"
	"customer-service/internal/graph"
	"customer-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileFetcher resolves a PSID to profile fields via the Graph API.
// Implemented by graph.Client; faked in tests.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken, platformID string) (*graph.Profile, error)
	Invalidate(ctx context.Context, platformID string)
}

type CustomerUsecase struct {
	repo    repository.CustomerRepository
	fetcher ProfileFetcher
	logger  *zap.Logger
}

func NewCustomerUsecase(repo repository.CustomerRepository, fetcher ProfileFetcher, logger *zap.Logger) *CustomerUsecase {
	return &CustomerUsecase{
		repo:    repo,
		fetcher: fetcher,
		logger:  logger,
	}
}

// IdentifyInput is an inbound identity to reconcile against stored records.
type IdentifyInput struct {
	AppID       uuid.UUID
	Platform    domain.Platform
	PlatformID  string
	AccessToken string
}

// IdentifyResult carries the reconciled record and whether it was created
// by this call.
type IdentifyResult struct {
	Customer *domain.Customer
	IsNew    bool
}

// Identify resolves a platform-scoped ID to a customer record, creating or
// refreshing it as needed:
//
//   - existing and fresh: returned unchanged, no Graph API call, to keep
//     API rate consumption down
//   - existing and stale: refreshed from the Graph API; a failed fetch
//     returns the existing record untouched rather than downgrading good
//     data with nothing
//   - missing: always created, even when every fetch tier fails; identity
//     must be establishable from the PSID alone
//
// Two concurrent calls racing to create the same identity are arbitrated by
// the storage unique constraint; the loser gets domain.ErrConflict.
func (uc *CustomerUsecase) Identify(ctx context.Context, in IdentifyInput) (*IdentifyResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByIdentity(ctx, in.AppID, in.Platform, in.PlatformID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup identity: %w", err)
	}

	if existing != nil && !domain.IsStale(existing.UpdatedAt, time.Now()) {
		uc.logger.Debug("identity fresh, skipping fetch",
			zap.String("platform_id", in.PlatformID),
			zap.String("customer_id", existing.ID.String()))
		return &IdentifyResult{Customer: existing, IsNew: false}, nil
	}

	profile, fetchErr := uc.fetcher.FetchProfile(ctx, in.AccessToken, in.PlatformID)
	if fetchErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if existing != nil {
			// Stale but unfetchable: keep what we have.
			uc.logger.Warn("profile fetch failed, keeping stale record",
				zap.String("platform_id", in.PlatformID),
				zap.String("customer_id", existing.ID.String()),
				zap.Error(fetchErr))
			return &IdentifyResult{Customer: existing, IsNew: false}, nil
		}
		uc.logger.Warn("profile fetch failed for new identity, creating bare record",
			zap.String("platform_id", in.PlatformID),
			zap.Error(fetchErr))
		profile = nil
	}

	firstName, lastName := normalizeName(profile)
	profilePic := profile.ProfilePic()

	var metadata map[string]interface{}
	if profile != nil && len(profile.Fields) > 0 {
		// Entire raw payload, kept for audit.
		metadata = profile.Fields
	}

	if existing != nil {
		patch := &domain.CustomerPatch{
			FirstName:      &firstName,
			LastName:       &lastName,
			ProfilePicURL:  &profilePic,
			CustomMetadata: metadata,
		}
		updated, err := uc.repo.Patch(ctx, existing.ID, patch)
		if err != nil {
			return nil, fmt.Errorf("refresh customer: %w", err)
		}
		uc.logger.Info("refreshed customer from graph api",
			zap.String("customer_id", updated.ID.String()),
			zap.String("platform_id", updated.PlatformID))
		return &IdentifyResult{Customer: updated, IsNew: false}, nil
	}

	customer := &domain.Customer{
		AppID:          in.AppID,
		Platform:       in.Platform,
		PlatformID:     in.PlatformID,
		FirstName:      firstName,
		LastName:       lastName,
		ProfilePicURL:  profilePic,
		CustomMetadata: metadata,
		IsActive:       true,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		// A concurrent identify may have won the insert race; surface
		// the conflict rather than a generic failure.
		return nil, err
	}

	uc.logger.Info("created customer",
		zap.String("customer_id", customer.ID.String()),
		zap.String("platform_id", customer.PlatformID),
		zap.String("platform", string(customer.Platform)))
	return &IdentifyResult{Customer: customer, IsNew: true}, nil
}

func (in *IdentifyInput) validate() error {
	if in.AppID == uuid.Nil {
		return fmt.Errorf("%w: app_id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.PlatformID) == "" {
		return fmt.Errorf("%w: platform_id is required", domain.ErrInvalidInput)
	}
	if in.Platform == "" {
		in.Platform = domain.PlatformInstagram
	}
	if in.Platform != domain.PlatformInstagram && in.Platform != domain.PlatformFacebook {
		return domain.ErrInvalidPlatform
	}
	return nil
}

// normalizeName maps the heterogeneous Graph API name fields onto
// first/last. Messenger responses carry first_name/last_name; Instagram
// usually only carries name, which is split on the first space (the
// remainder becomes the last name, possibly empty).
func normalizeName(profile *graph.Profile) (string, string) {
	firstName := profile.FirstName()
	lastName := profile.LastName()

	if firstName == "" {
		if fullName := profile.Name(); fullName != "" {
			parts := strings.SplitN(fullName, " ", 2)
			firstName = parts[0]
			if len(parts) > 1 {
				lastName = parts[1]
			} else {
				lastName = ""
			}
		}
	}
	return firstName, lastName
}
