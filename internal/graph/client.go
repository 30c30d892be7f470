// internal/graph/client.go
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customer-service/internal/cache"
	"customer-service/internal/domain"

	"go.uber.org/zap"
)

// Shape tags which platform response shape a fetched profile matched.
type Shape string

const (
	ShapeInstagram Shape = "instagram"
	ShapeFacebook  Shape = "facebook"
	ShapeMinimal   Shape = "minimal"
	// ShapeUnknown means the Instagram probe succeeded but the payload
	// lacked the distinguishing username field. Still usable.
	ShapeUnknown Shape = "unknown"
)

// Profile is the tagged result of a fetch: the raw payload plus the shape
// classification the probe sequence settled on.
type Profile struct {
	Shape  Shape
	Fields map[string]interface{}
}

// Str returns a string field from the raw payload, or "" when absent or
// not a string.
func (p *Profile) Str(key string) string {
	if p == nil || p.Fields == nil {
		return ""
	}
	if s, ok := p.Fields[key].(string); ok {
		return s
	}
	return ""
}

func (p *Profile) Name() string       { return p.Str("name") }
func (p *Profile) FirstName() string  { return p.Str("first_name") }
func (p *Profile) LastName() string   { return p.Str("last_name") }
func (p *Profile) ProfilePic() string { return p.Str("profile_pic") }

// Field sets for the three probe tiers. Instagram-scoped accounts reject
// the Facebook fields and vice versa, so the client walks the tiers in
// order of likelihood until one succeeds.
var (
	instagramFields = []string{
		"name", "username", "profile_pic",
		"follower_count", "is_user_follow_business", "is_business_follow_user",
		"biography", "website", "id",
	}
	facebookFields = []string{
		"first_name", "last_name", "name", "profile_pic",
		"email", "locale", "timezone", "gender", "id",
	}
	minimalFields = []string{"name", "profile_pic", "id"}
)

const requestTimeout = 10 * time.Second

// Client fetches user profiles from the Meta Graph API:
//
//	GET {base}/{version}/{psid}?fields=...&access_token=...
//
// Responses are heterogeneous across Instagram and Facebook, so FetchProfile
// runs a bounded probe sequence (at most three calls) instead of assuming a
// shape up front.
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger
}

// NewClient builds a Graph API client. cache may be nil to disable the
// profile read-through cache.
func NewClient(baseURL, version string, profileCache *cache.Cache, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		cache:  profileCache,
		logger: logger,
	}
}

type probe struct {
	shape  Shape
	fields []string
}

// FetchProfile resolves a PSID to profile fields using the page access
// token. It never fails on shape mismatches: each failed tier advances to
// the next, and only when all three fail does it return
// domain.ErrProfileUnavailable.
func (c *Client) FetchProfile(ctx context.Context, accessToken, platformID string) (*Profile, error) {
	if cached, ok := c.cachedProfile(ctx, platformID); ok {
		return cached, nil
	}

	probes := []probe{
		{shape: ShapeInstagram, fields: instagramFields},
		{shape: ShapeFacebook, fields: facebookFields},
		{shape: ShapeMinimal, fields: minimalFields},
	}

	for _, p := range probes {
		payload, err := c.request(ctx, accessToken, platformID, p.fields)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Debug("graph probe failed",
				zap.String("platform_id", platformID),
				zap.String("shape", string(p.shape)),
				zap.Error(err))
			continue
		}

		shape := p.shape
		if shape == ShapeInstagram {
			if _, hasUsername := payload["username"]; !hasUsername {
				// Succeeded but ambiguous: return the partial payload as-is.
				shape = ShapeUnknown
			}
		}

		profile := &Profile{Shape: shape, Fields: payload}
		c.storeProfile(ctx, platformID, profile)

		c.logger.Info("fetched graph profile",
			zap.String("platform_id", platformID),
			zap.String("shape", string(shape)))
		return profile, nil
	}

	c.logger.Warn("all graph probes exhausted", zap.String("platform_id", platformID))
	return nil, domain.ErrProfileUnavailable
}

// Invalidate drops any cached payload for a PSID, forcing the next fetch
// to hit the Graph API.
func (c *Client) Invalidate(ctx context.Context, platformID string) {
	if c.cache != nil {
		c.cache.InvalidateProfile(ctx, platformID)
	}
}

func (c *Client) request(ctx context.Context, accessToken, platformID string, fields []string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.version, url.PathEscape(platformID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build graph request: %w", err)
	}

	q := req.URL.Query()
	q.Set("fields", strings.Join(fields, ","))
	q.Set("access_token", accessToken)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts rank the same as a non-2xx: the tier failed.
		return nil, fmt.Errorf("graph request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read graph response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("graph returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode graph response: %w", err)
	}
	return payload, nil
}

func (c *Client) cachedProfile(ctx context.Context, platformID string) (*Profile, bool) {
	if c.cache == nil {
		return nil, false
	}
	payload, ok := c.cache.GetProfile(ctx, platformID)
	if !ok {
		return nil, false
	}
	profile := &Profile{Shape: ShapeUnknown, Fields: payload}
	if _, hasUsername := payload["username"]; hasUsername {
		profile.Shape = ShapeInstagram
	} else if _, hasFirst := payload["first_name"]; hasFirst {
		profile.Shape = ShapeFacebook
	}
	return profile, true
}

func (c *Client) storeProfile(ctx context.Context, platformID string, profile *Profile) {
	if c.cache != nil {
		c.cache.SetProfile(ctx, platformID, profile.Fields)
	}
}
