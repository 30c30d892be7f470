package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	privKey jwk.Key
	jwksSrv *httptest.Server
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privKey, err := jwk.FromRaw(raw)
	require.NoError(t, err)
	require.NoError(t, privKey.Set(jwk.KeyIDKey, "test-key"))
	require.NoError(t, privKey.Set(jwk.AlgorithmKey, jwa.RS256))

	pubKey, err := privKey.PublicKey()
	require.NoError(t, err)

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(pubKey))
	jwksJSON, err := json.Marshal(set)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(jwksJSON)
	}))
	t.Cleanup(srv.Close)

	return &authFixture{privKey: privKey, jwksSrv: srv}
}

func (f *authFixture) signToken(t *testing.T, mutate func(jwt.Token)) string {
	t.Helper()

	tok := jwt.New()
	require.NoError(t, tok.Set(jwt.IssuerKey, "auth-service"))
	require.NoError(t, tok.Set(jwt.ExpirationKey, time.Now().Add(time.Hour)))
	require.NoError(t, tok.Set("user_id", "user-123"))
	if mutate != nil {
		mutate(tok)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.RS256, f.privKey))
	require.NoError(t, err)
	return string(signed)
}

func protectedEcho(t *testing.T, am *AuthMiddleware) http.Handler {
	return am.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-123", UserID(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireValidBearerToken(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "auth-service", "", nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+f.signToken(t, nil))
	rec := httptest.NewRecorder()

	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireTokenFromCookieAndQuery(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "auth-service", "", nil, zap.NewNop())
	token := f.signToken(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec := httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/?token="+token, nil)
	rec = httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRejectsMissingToken(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "", "", nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "", "", nil, zap.NewNop())

	expired := f.signToken(t, func(tok jwt.Token) {
		tok.Set(jwt.ExpirationKey, time.Now().Add(-time.Hour))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRejectsWrongIssuer(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "expected-issuer", "", nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+f.signToken(t, nil))
	rec := httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRejectsTokenWithoutUserID(t *testing.T) {
	f := newAuthFixture(t)
	am := NewAuthMiddleware(f.jwksSrv.URL, "", "", nil, zap.NewNop())

	anonymous := f.signToken(t, func(tok jwt.Token) {
		tok.Remove("user_id")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+anonymous)
	rec := httptest.NewRecorder()
	protectedEcho(t, am).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
