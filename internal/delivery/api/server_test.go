package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authsvc/config"
	apimiddleware "authsvc/internal/delivery/api/middleware"
	"authsvc/internal/delivery/api/router"
	"authsvc/internal/delivery/api/router/handler"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/infra/metrics"
	mockUsecase "authsvc/internal/mocks/usecase"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T, protect bool) (*echo.Echo, *mockUsecase.MockCredentialUsecase, *prometheus.Registry) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Auth = &config.AuthConfig{ProtectManagementRoutes: protect}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	credentials := mockUsecase.NewMockCredentialUsecase(t)
	registry := metrics.NewRegistry()
	metrics.New(registry)

	e := NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Registry: registry,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
				CredentialUC: credentials,
				Logger:       logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(credentials),
			Config:         cfg,
		},
	})

	return e, credentials, registry
}

func do(t *testing.T, e *echo.Echo, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestServer_SignUp(t *testing.T) {
	e, credentials, _ := newTestEcho(t, false)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	credentials.EXPECT().
		CreateAccount(mock.Anything, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret1"}).
		Return(&usecase.CreateAccountOutput{Account: &entity.Account{
			ID:           7,
			Email:        "a@x.com",
			PasswordHash: "$2a$10$hash",
			CreatedAt:    created,
		}}, nil).
		Once()

	rec, env := do(t, e, http.MethodPost, "/api/v1/signup", `{"email":"a@x.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(7), env.Data["id"])
	assert.Equal(t, "a@x.com", env.Data["email"])
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_SignUpErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockUsecase.MockCredentialUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing fields",
			body:       `{"email":""}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "duplicate email",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setup: func(m *mockUsecase.MockCredentialUsecase) {
				m.EXPECT().CreateAccount(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrAccountAlreadyExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "ACCOUNT_ALREADY_EXISTS",
		},
		{
			name: "store failure",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setup: func(m *mockUsecase.MockCredentialUsecase) {
				m.EXPECT().CreateAccount(mock.Anything, mock.Anything).
					Return(nil, domainerrors.NewDatabaseExecuteError(io.ErrUnexpectedEOF, "create")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, credentials, _ := newTestEcho(t, false)
			if tt.setup != nil {
				tt.setup(credentials)
			}

			rec, env := do(t, e, http.MethodPost, "/api/v1/signup", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestServer_SignIn(t *testing.T) {
	e, credentials, _ := newTestEcho(t, false)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	credentials.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "a@x.com", Password: "secret1"}).
		Return(&usecase.SignInOutput{Token: "tok", ExpiresAt: expires, AccountID: 7}, nil).
		Once()
	credentials.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "a@x.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrIncorrectPassword).
		Once()
	credentials.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Email: "b@x.com", Password: "secret1"}).
		Return(nil, domainerrors.ErrAccountNotFound.WithDetails("no record")).
		Once()

	rec, env := do(t, e, http.MethodPost, "/api/v1/signin", `{"email":"a@x.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", env.Data["token"])
	assert.Equal(t, "2030-01-01T00:00:00Z", env.Data["expiresAt"])

	rec, env = do(t, e, http.MethodPost, "/api/v1/signin", `{"email":"a@x.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INCORRECT_PASSWORD", env.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/api/v1/signin", `{"email":"b@x.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "no record", env.Error.Details)
}

func TestServer_IsAuthenticated(t *testing.T) {
	e, credentials, _ := newTestEcho(t, false)

	credentials.EXPECT().
		IsAuthenticated(mock.Anything, &usecase.IsAuthenticatedInput{Token: "good"}).
		Return(&usecase.IsAuthenticatedOutput{AccountID: 7}, nil).
		Twice()
	credentials.EXPECT().
		IsAuthenticated(mock.Anything, &usecase.IsAuthenticatedInput{Token: ""}).
		Return(nil, domainerrors.ErrMissingToken).
		Once()

	rec, env := do(t, e, http.MethodGet, "/api/v1/isAuthenticated", "", map[string]string{"x-access-token": "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), env.Data["accountId"])

	rec, _ = do(t, e, http.MethodGet, "/api/v1/isAuthenticated", "", map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/api/v1/isAuthenticated", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
}

func TestServer_Delete(t *testing.T) {
	e, credentials, _ := newTestEcho(t, false)

	credentials.EXPECT().
		DestroyAccount(mock.Anything, &usecase.DestroyAccountInput{AccountID: 7}).
		Return(&usecase.DestroyAccountOutput{Deleted: 1}, nil).
		Once()
	credentials.EXPECT().
		DestroyAccount(mock.Anything, &usecase.DestroyAccountInput{AccountID: 8}).
		Return(&usecase.DestroyAccountOutput{Deleted: 0}, nil).
		Once()

	rec, env := do(t, e, http.MethodDelete, "/api/v1/delete/7", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), env.Data["deleted"])

	rec, env = do(t, e, http.MethodDelete, "/api/v1/delete/8", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), env.Data["deleted"])

	for _, bad := range []string{"abc", "0", "-1"} {
		rec, env = do(t, e, http.MethodDelete, "/api/v1/delete/"+bad, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, bad)
	}
}

func TestServer_IsAdmin(t *testing.T) {
	e, credentials, _ := newTestEcho(t, false)

	credentials.EXPECT().
		IsAdmin(mock.Anything, &usecase.IsAdminInput{AccountID: 7}).
		Return(&usecase.IsAdminOutput{IsAdmin: true}, nil).
		Twice()
	credentials.EXPECT().
		IsAdmin(mock.Anything, &usecase.IsAdminInput{AccountID: 9}).
		Return(nil, domainerrors.ErrAccountNotFound).
		Once()

	rec, env := do(t, e, http.MethodGet, "/api/v1/isAdmin?id=7", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env.Data["isAdmin"])

	rec, env = do(t, e, http.MethodGet, "/api/v1/isAdmin", `{"id":7}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env.Data["isAdmin"])

	rec, env = do(t, e, http.MethodGet, "/api/v1/isAdmin?id=9", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", env.Error.Code)

	rec, env = do(t, e, http.MethodGet, "/api/v1/isAdmin", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_ProtectedManagementRoutes(t *testing.T) {
	e, credentials, _ := newTestEcho(t, true)

	credentials.EXPECT().
		IsAuthenticated(mock.Anything, &usecase.IsAuthenticatedInput{Token: ""}).
		Return(nil, domainerrors.ErrMissingToken).
		Once()
	credentials.EXPECT().
		IsAuthenticated(mock.Anything, &usecase.IsAuthenticatedInput{Token: "good"}).
		Return(&usecase.IsAuthenticatedOutput{AccountID: 1}, nil).
		Once()
	credentials.EXPECT().
		DestroyAccount(mock.Anything, &usecase.DestroyAccountInput{AccountID: 7}).
		Return(&usecase.DestroyAccountOutput{Deleted: 1}, nil).
		Once()

	rec, env := do(t, e, http.MethodDelete, "/api/v1/delete/7", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, _ = do(t, e, http.MethodDelete, "/api/v1/delete/7", "", map[string]string{"x-access-token": "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	e, _, _ := newTestEcho(t, false)

	rec, env := do(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Data["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	e.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusOK, mrec.Code)
	assert.Contains(t, mrec.Body.String(), "go_goroutines")

	rec, env = do(t, e, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	e, _, _ := newTestEcho(t, false)

	rec, env := do(t, e, http.MethodPost, "/api/v1/signup", `{"email":"`+strings.Repeat("a", 2048)+`"}`, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_StopWithoutServe(t *testing.T) {
	e, _, _ := newTestEcho(t, false)
	srv := &apiServer{cfg: &config.Config{}, logger: slog.New(slog.NewTextHandler(io.Discard, nil)), server: e}

	assert.NoError(t, srv.stop(context.Background()))
}
