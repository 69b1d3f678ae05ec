package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/api/middleware"
	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/api/server"
	apierrors "github.com/iryswiki/iryswiki/internal/api/shared/errors"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/metrics"
	"github.com/iryswiki/iryswiki/internal/mocks"
	"github.com/iryswiki/iryswiki/internal/ratelimit"
)

const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testServerMocks struct {
	ctrl    *gomock.Controller
	forum   *mocks.MockForum
	limiter *mocks.MockRateLimiter
	router  http.Handler
}

func setupTestServer(t *testing.T, auth middleware.AuthConfig, withLimiter bool) *testServerMocks {
	ctrl := gomock.NewController(t)
	tm := &testServerMocks{
		ctrl:  ctrl,
		forum: mocks.NewMockForum(ctrl),
	}

	var limiter ratelimit.Limiter
	if withLimiter {
		tm.limiter = mocks.NewMockRateLimiter(ctrl)
		limiter = tm.limiter
	}

	reg := prometheus.NewRegistry()
	metrics.NewPrometheusRecorder(reg)

	srv := server.New(server.Config{
		ExplorerURL: "https://explorer.example/",
		Auth:        auth,
	}, tm.forum, limiter, reg)
	tm.router = srv.Router()
	return tm
}

func (tm *testServerMocks) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthAndMetrics(t *testing.T) {
	tm := setupTestServer(t, middleware.AuthConfig{}, false)
	defer tm.ctrl.Finish()

	tm.forum.EXPECT().Ready().Return(true)

	w := tm.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	w = tm.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateThread(t *testing.T) {
	body := `{"title":"Hello","category":"general","content":"First post"}`
	input := domain.NewThread{Title: "Hello", Category: domain.CategoryGeneral, Content: "First post"}

	t.Run("receipt", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().CreateThread(gomock.Any(), input).Return("0xabc", nil)

		w := tm.do(http.MethodPost, "/api/v1/threads", body, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var receipt dto.ReceiptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
		assert.Equal(t, "0xabc", receipt.TransactionHash)
		assert.Equal(t, "https://explorer.example/tx/0xabc", receipt.ExplorerURL)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name    string
			err     error
			status  int
			code    apierrors.ErrorCode
			details string
		}{
			{"insufficient balance", &domain.InsufficientBalanceError{Required: "0.0003", Balance: "0.0001", Action: domain.ActionThread}, http.StatusPaymentRequired, apierrors.ErrCodeInsufficientBalance, ""},
			{"verification failed", &domain.PaymentVerificationFailedError{Hash: "0xabc"}, http.StatusUnprocessableEntity, apierrors.ErrCodePaymentVerificationFailed, "0xabc"},
			{"persistence failed", &domain.PersistenceError{Op: "save threads", Hash: "0xabc"}, http.StatusInternalServerError, apierrors.ErrCodePersistenceError, "0xabc"},
			{"not initialized", domain.ErrStoreNotInitialized, http.StatusServiceUnavailable, apierrors.ErrCodeNotInitialized, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tm := setupTestServer(t, middleware.AuthConfig{}, false)
				defer tm.ctrl.Finish()

				tm.forum.EXPECT().CreateThread(gomock.Any(), input).Return("", tt.err)

				w := tm.do(http.MethodPost, "/api/v1/threads", body, nil)
				assert.Equal(t, tt.status, w.Code)
				apiErr := decodeError(t, w)
				assert.Equal(t, tt.code, apiErr.Code)
				if tt.details != "" {
					assert.Equal(t, tt.details, apiErr.Details)
				}
			})
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		w := tm.do(http.MethodPost, "/api/v1/threads", `{"title":`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthAndRateLimit(t *testing.T) {
	auth := middleware.AuthConfig{APIKeys: []string{"key-1"}}
	body := `{"content":"Nice"}`

	t.Run("missing credentials", func(t *testing.T) {
		tm := setupTestServer(t, auth, true)
		defer tm.ctrl.Finish()

		w := tm.do(http.MethodPost, "/api/v1/threads/thread-1/replies", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("allowed", func(t *testing.T) {
		tm := setupTestServer(t, auth, true)
		defer tm.ctrl.Finish()

		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{Allowed: true}, nil)
		tm.forum.EXPECT().CreateReply(gomock.Any(), "thread-1", domain.NewReply{Content: "Nice"}).Return("0xabc", nil)

		w := tm.do(http.MethodPost, "/api/v1/threads/thread-1/replies", body, map[string]string{"Authorization": "ApiKey key-1"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("limited", func(t *testing.T) {
		tm := setupTestServer(t, auth, true)
		defer tm.ctrl.Finish()

		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{Allowed: false, RetryAfter: 6 * time.Second}, nil)

		w := tm.do(http.MethodPost, "/api/v1/threads/thread-1/replies", body, map[string]string{"Authorization": "ApiKey key-1"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "6", w.Header().Get("Retry-After"))
		assert.Equal(t, apierrors.ErrCodeRateLimited, decodeError(t, w).Code)
	})

	t.Run("reads are open", func(t *testing.T) {
		tm := setupTestServer(t, auth, true)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().ListThreads(gomock.Any()).Return([]domain.Thread{{ID: "thread-1"}}, nil)

		w := tm.do(http.MethodGet, "/api/v1/threads", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestReads(t *testing.T) {
	t.Run("thread records a view", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().RecordView(gomock.Any(), "thread-1").Return(&domain.Thread{ID: "thread-1", Views: 3}, nil)
		tm.forum.EXPECT().RecordView(gomock.Any(), "thread-2").Return(nil, nil)

		w := tm.do(http.MethodGet, "/api/v1/threads/thread-1", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"views":3`)

		w = tm.do(http.MethodGet, "/api/v1/threads/thread-2", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("threads filtered by category", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().ListThreads(gomock.Any()).Return([]domain.Thread{
			{ID: "thread-1", Category: domain.CategoryGeneral},
			{ID: "thread-2", Category: domain.CategoryTutorials},
		}, nil)

		w := tm.do(http.MethodGet, "/api/v1/threads?category=tutorials", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ThreadListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Threads, 1)
		assert.Equal(t, "thread-2", resp.Threads[0].ID)
	})

	t.Run("requirement", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		requirement, err := domain.DefaultFeePolicy().RequirementFor(domain.ActionThread)
		require.NoError(t, err)
		tm.forum.EXPECT().RequirementFor(domain.ActionThread).Return(requirement, nil)

		w := tm.do(http.MethodGet, "/api/v1/requirements/thread", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":"0.0003"`)

		w = tm.do(http.MethodGet, "/api/v1/requirements/like", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("transactions by address", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().GetVerifiedTransactionsBy(gomock.Any(), testAddress).
			Return([]domain.VerifiedTransaction{{Hash: "0xabc", From: testAddress, Verified: true}}, nil)

		w := tm.do(http.MethodGet, "/api/v1/transactions?address="+testAddress, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)

		w = tm.do(http.MethodGet, "/api/v1/transactions?address=nope", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().GetProfile(gomock.Any(), testAddress).Return(nil, nil)

		w := tm.do(http.MethodGet, "/api/v1/profiles/"+testAddress, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("balance", func(t *testing.T) {
		tm := setupTestServer(t, middleware.AuthConfig{}, false)
		defer tm.ctrl.Finish()

		tm.forum.EXPECT().Address().Return(testAddress, nil)
		tm.forum.EXPECT().Balance(gomock.Any()).Return("1.5", nil)

		w := tm.do(http.MethodGet, "/api/v1/wallet/balance", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":"1.5"`)
		assert.Contains(t, w.Body.String(), `"symbol":"IRYS"`)
	})
}
