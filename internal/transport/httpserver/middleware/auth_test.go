package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink-go/internal/config"
	"carelink-go/internal/repository/inmemory"
	"carelink-go/pkg/logger"
)

const testSecret = "test-secret-with-enough-length"

type recordingProfiles struct {
	mu    sync.Mutex
	calls []string
}

func (p *recordingProfiles) UpsertProfile(ctx context.Context, userID, email, fullName, avatarURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, userID+"|"+email+"|"+fullName)
	return nil
}

type recordingCache struct {
	mu    sync.Mutex
	users map[string]User
	ttls  []time.Duration
}

func newRecordingCache() *recordingCache {
	return &recordingCache{users: map[string]User{}}
}

func (c *recordingCache) Get(key string) (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user, ok := c.users[key]
	return user, ok
}

func (c *recordingCache) Set(key string, user User, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[key] = user
	c.ttls = append(c.ttls, ttl)
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(user.ID))
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func serve(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLocalJWTVerification(t *testing.T) {
	profiles := &recordingProfiles{}
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret}, profiles, nil, logger.Discard())
	handler := auth.Middleware(echoUser())

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":           "user-1",
		"email":         "ann@example.com",
		"exp":           time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]interface{}{"full_name": "Ann"},
	})
	rec := serve(handler, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
	assert.Equal(t, []string{"user-1|ann@example.com|Ann"}, profiles.calls)
}

func TestLocalJWTRejections(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret}, nil, nil, logger.Discard())
	handler := auth.Middleware(echoUser())

	cases := map[string]string{
		"missing":     "",
		"bad secret":  signToken(t, "other-secret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}),
		"expired":     signToken(t, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}),
		"no expiry":   signToken(t, testSecret, jwt.MapClaims{"sub": "u"}),
		"no subject":  signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
		"not a token": "garbage",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(handler, token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid_token")
		})
	}
}

func TestRemoteVerificationIsCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("apikey") != "anon" || r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-2","email":"bob@example.com","user_metadata":{"name":"Bob"}}`))
	}))
	defer server.Close()

	profiles := &recordingProfiles{}
	cache := inmemory.NewTTLCache[User]()
	auth := NewSupabaseAuth(config.SupabaseConfig{
		URL:            server.URL,
		PublishableKey: "anon",
		AuthCacheTTL:   time.Minute,
	}, profiles, cache, logger.Discard())
	handler := auth.Middleware(echoUser())

	for i := 0; i < 3; i++ {
		rec := serve(handler, "good")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-2", rec.Body.String())
	}
	assert.EqualValues(t, 1, calls.Load())
	assert.Len(t, profiles.calls, 1)

	rec := serve(handler, "bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.EqualValues(t, 2, calls.Load())
}

func TestLocalJWTSavesProfileOncePerToken(t *testing.T) {
	profiles := &recordingProfiles{}
	cache := newRecordingCache()
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret, AuthCacheTTL: time.Minute}, profiles, cache, logger.Discard())
	handler := auth.Middleware(echoUser())

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()})
	for i := 0; i < 3; i++ {
		rec := serve(handler, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Len(t, profiles.calls, 1)
	require.Len(t, cache.ttls, 1)
	assert.Equal(t, time.Minute, cache.ttls[0])

	rec := serve(handler, signToken(t, "other-secret", jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRemoteCacheStopsAtTokenExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-3"}`))
	}))
	defer server.Close()

	cache := newRecordingCache()
	auth := NewSupabaseAuth(config.SupabaseConfig{
		URL:            server.URL,
		PublishableKey: "anon",
		AuthCacheTTL:   time.Hour,
	}, nil, cache, logger.Discard())
	handler := auth.Middleware(echoUser())

	soon := signToken(t, "remote-secret", jwt.MapClaims{"sub": "user-3", "exp": time.Now().Add(2 * time.Minute).Unix()})
	rec := serve(handler, soon)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cache.ttls, 1)
	assert.LessOrEqual(t, cache.ttls[0], 2*time.Minute)
	assert.Greater(t, cache.ttls[0], time.Minute)

	expired := signToken(t, "remote-secret", jwt.MapClaims{"sub": "user-3", "exp": time.Now().Add(-time.Minute).Unix()})
	rec = serve(handler, expired)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, cache.ttls, 1)

	rec = serve(handler, "opaque")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cache.ttls, 2)
	assert.Equal(t, time.Hour, cache.ttls[1])
}

func TestSkipAuthInjectsMockUser(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{SkipAuth: true, MockUserID: "mock-1"}, nil, nil, logger.Discard())
	rec := serve(auth.Middleware(echoUser()), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mock-1", rec.Body.String())

	auth = NewSupabaseAuth(config.SupabaseConfig{SkipAuth: true}, nil, nil, logger.Discard())
	rec = serve(auth.Middleware(echoUser()), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnconfiguredAuth(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{}, nil, nil, logger.Discard())
	rec := serve(auth.Middleware(echoUser()), "anything")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "auth_not_configured")
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
}
