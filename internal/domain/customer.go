// internal/domain/customer.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform identifies the messaging platform a customer contacted us through.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// ParsePlatform normalizes a raw platform string. Empty defaults to instagram,
// matching what the webhook pipeline sends for the vast majority of traffic.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PlatformInstagram, nil
	case PlatformInstagram:
		return PlatformInstagram, nil
	case PlatformFacebook:
		return PlatformFacebook, nil
	default:
		return "", ErrInvalidPlatform
	}
}

// FreshnessWindow is how long fetched profile data is considered current.
// Records older than this are refreshed from the Graph API on identify.
const FreshnessWindow = 24 * time.Hour

// IsStale reports whether a record last updated at updatedAt needs a
// profile refresh as of now.
func IsStale(updatedAt, now time.Time) bool {
	return now.Sub(updatedAt) > FreshnessWindow
}

// Customer is an external contact who messages a business through
// Instagram or Facebook. It is NOT a platform user: the PlatformID is the
// page-scoped ID (PSID) issued by the platform's webhook, unique only
// within (AppID, Platform).
type Customer struct {
	ID         uuid.UUID `json:"id"`
	AppID      uuid.UUID `json:"app_id"`
	Platform   Platform  `json:"platform"`
	PlatformID string    `json:"platform_id"`

	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`

	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// CustomMetadata holds the raw Graph API payload when the record was
	// populated via identify, plus any caller-supplied attributes.
	CustomMetadata map[string]interface{} `json:"custom_metadata,omitempty"`

	// AccessToken is the page access token used for profile refreshes.
	// Never serialized in API responses.
	AccessToken string `json:"-"`

	IsActive  bool `json:"is_active"`
	IsBlocked bool `json:"is_blocked"`

	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
}

// FullName joins first and last name, or "Unknown" when both are empty.
func (c *Customer) FullName() string {
	parts := make([]string, 0, 2)
	if c.FirstName != "" {
		parts = append(parts, c.FirstName)
	}
	if c.LastName != "" {
		parts = append(parts, c.LastName)
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// DisplayName falls back to a truncated PSID when no name is known.
func (c *Customer) DisplayName() string {
	if name := c.FullName(); name != "Unknown" {
		return name
	}
	psid := c.PlatformID
	if len(psid) > 8 {
		psid = psid[:8] + "..."
	}
	return "User (" + psid + ")"
}

// CustomerPatch is a typed partial update. A nil field is absent and leaves
// the stored value untouched; a pointer to the zero value clears the field.
type CustomerPatch struct {
	FirstName     *string
	LastName      *string
	ProfilePicURL *string
	Email         *string
	Phone         *string

	// CustomMetadata replaces the stored metadata wholesale when non-nil.
	CustomMetadata map[string]interface{}

	AccessToken *string
	IsActive    *bool
	IsBlocked   *bool

	LastInteractionAt *time.Time
}

// IsEmpty reports whether the patch would change nothing.
func (p *CustomerPatch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.ProfilePicURL == nil &&
		p.Email == nil &&
		p.Phone == nil &&
		p.CustomMetadata == nil &&
		p.AccessToken == nil &&
		p.IsActive == nil &&
		p.IsBlocked == nil &&
		p.LastInteractionAt == nil
}
