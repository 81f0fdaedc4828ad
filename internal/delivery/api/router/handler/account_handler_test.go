package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authsvc/internal/delivery/api/middleware"
	mockUsecase "authsvc/internal/mocks/usecase"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_DeleteLogsActingAccount(t *testing.T) {
	tests := []struct {
		name      string
		protected bool
		wantActor bool
	}{
		{name: "behind auth middleware", protected: true, wantActor: true},
		{name: "open route", protected: false, wantActor: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			credentials := mockUsecase.NewMockCredentialUsecase(t)
			h := NewAccountHandler(AccountHandlerParams{
				CredentialUC: credentials,
				Logger:       slog.New(slog.NewJSONHandler(buf, nil)),
			})

			credentials.EXPECT().
				DestroyAccount(mock.Anything, &usecase.DestroyAccountInput{AccountID: 7}).
				Return(&usecase.DestroyAccountOutput{Deleted: 1}, nil).
				Once()

			var guards []echo.MiddlewareFunc
			if tt.protected {
				credentials.EXPECT().
					IsAuthenticated(mock.Anything, &usecase.IsAuthenticatedInput{Token: "good"}).
					Return(&usecase.IsAuthenticatedOutput{AccountID: 42}, nil).
					Once()
				guards = append(guards, middleware.NewAuthMiddleware(credentials).Authenticate)
			}

			e := echo.New()
			e.DELETE("/delete/:id", h.Delete, guards...)

			req := httptest.NewRequest(http.MethodDelete, "/delete/7", nil)
			req.Header.Set(middleware.HeaderAccessToken, "good")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, buf.String(), `"account_id":7`)
			assert.Contains(t, buf.String(), `"deleted":1`)
			if tt.wantActor {
				assert.Contains(t, buf.String(), `"acting_account_id":42`)
			} else {
				assert.NotContains(t, buf.String(), "acting_account_id")
			}
		})
	}
}
