package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/api/middleware"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/mocks"
	"github.com/iryswiki/iryswiki/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRSAKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := newRSAKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"key-1"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "someone",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	tests := []struct {
		name     string
		header   string
		success  bool
		authType string
		subject  string
	}{
		{"bearer token", "Bearer " + valid, true, "jwt", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
		{"api key", "ApiKey key-1", true, "apikey", "apikey:"},
		{"expired token", "Bearer " + expired, false, "", ""},
		{"unknown api key", "ApiKey key-2", false, "", ""},
		{"missing header", "", false, "", ""},
		{"malformed header", "token", false, "", ""},
		{"unsupported scheme", "Basic abc", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, cfg)
			assert.Equal(t, tt.success, result.Success)
			if tt.success {
				assert.NoError(t, result.Error)
				assert.Equal(t, tt.authType, result.AuthType)
				assert.True(t, strings.HasPrefix(result.AuthSubject, tt.subject))
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	router := gin.New()
	router.POST("/paid", middleware.Auth(middleware.AuthConfig{}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/paid", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		result     ratelimit.Result
		err        error
		status     int
		retryAfter string
	}{
		{"allowed", ratelimit.Result{Allowed: true, Remaining: 4}, nil, http.StatusNoContent, ""},
		{"limited", ratelimit.Result{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil, http.StatusTooManyRequests, "2"},
		{"sub-second wait", ratelimit.Result{Allowed: false, RetryAfter: 100 * time.Millisecond}, nil, http.StatusTooManyRequests, "1"},
		{"limiter failure lets request through", ratelimit.Result{}, errors.New("redis down"), http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limiter := mocks.NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(tt.result, tt.err)

			router := gin.New()
			router.POST("/paid", middleware.RateLimit(limiter), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/paid", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(middleware.REQUEST_ID_HEADER))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.REQUEST_ID_HEADER, "3f1c2a9e-8a5b-4c1e-9d2f-6b7a8c9d0e1f")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "3f1c2a9e-8a5b-4c1e-9d2f-6b7a8c9d0e1f", w.Body.String())
}
