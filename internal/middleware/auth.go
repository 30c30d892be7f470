// internal/middleware/auth.go
package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"customer-service/internal/cache"
	"customer-service/pkg/response"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"go.uber.org/zap"
)

type contextKey string

const (
	ContextUserID contextKey = "user_id"
	ContextClaims contextKey = "claims"
)

// UserID returns the authenticated caller's user ID, or "" outside an
// authenticated request.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(ContextUserID).(string); ok {
		return v
	}
	return ""
}

// AuthMiddleware validates bearer tokens against the auth service's JWKS.
// The key set JSON is cached in Redis for 30 minutes so every service
// restart and key rotation stays cheap; cache unavailability means a JWKS
// fetch per request, never a rejected one.
type AuthMiddleware struct {
	jwksURL    string
	issuer     string
	audience   string
	cache      *cache.Cache
	httpClient *http.Client
	logger     *zap.Logger
}

func NewAuthMiddleware(jwksURL, issuer, audience string, jwksCache *cache.Cache, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
		cache:    jwksCache,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Require rejects requests without a valid token.
func (am *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := am.validate(r.Context(), token)
		if err != nil {
			am.logger.Debug("token rejected", zap.Error(err))
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, ok := claims.Get("user_id")
		userIDStr, _ := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(w, http.StatusUnauthorized, "Token missing user information")
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserID, userIDStr)
		ctx = context.WithValue(ctx, ContextClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (am *AuthMiddleware) validate(ctx context.Context, token string) (jwt.Token, error) {
	keySet, err := am.keySet(ctx)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
	}
	if am.issuer != "" {
		opts = append(opts, jwt.WithIssuer(am.issuer))
	}
	if am.audience != "" {
		opts = append(opts, jwt.WithAudience(am.audience))
	}

	parsed, err := jwt.ParseString(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse/validate token: %w", err)
	}
	return parsed, nil
}

func (am *AuthMiddleware) keySet(ctx context.Context) (jwk.Set, error) {
	if am.cache != nil {
		if raw, ok := am.cache.GetJWKS(ctx); ok {
			if keySet, err := jwk.Parse(raw); err == nil {
				return keySet, nil
			}
			am.logger.Warn("cached jwks unparseable, refetching")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, am.jwksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build jwks request: %w", err)
	}
	resp, err := am.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read jwks response: %w", err)
	}

	keySet, err := jwk.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse jwks: %w", err)
	}

	if am.cache != nil {
		am.cache.SetJWKS(ctx, raw)
	}
	return keySet, nil
}

// extractToken checks the Authorization header first, then the token
// cookie, then the query string.
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	if q := r.URL.Query().Get("token"); q != "" {
		return q
	}
	return ""
}
