// Package handler contains the HTTP handlers for the API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"authsvc/internal/delivery/api/middleware"
	"authsvc/internal/delivery/api/response"
	deliverycontext "authsvc/internal/delivery/context"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

// AccountHandler serves the sign-up, sign-in, session and role endpoints.
type AccountHandler struct {
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountHandler{
		credentialUC: params.CredentialUC,
		logger:       logger,
	}
}

// CredentialsRequest is the body of sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IsAdminRequest identifies the account by JSON body or ?id= query.
type IsAdminRequest struct {
	ID uint64 `json:"id" query:"id" validate:"required"`
}

// AccountResponse is the public view of an account. The password hash is never rendered.
type AccountResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignInResponse carries the issued token.
type SignInResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthenticatedResponse names the account a token belongs to.
type AuthenticatedResponse struct {
	AccountID uint64 `json:"accountId"`
}

// DeleteResponse reports how many accounts were removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// IsAdminResponse answers the role query.
type IsAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// SignUp handles POST /signup.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.credentialUC.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, AccountResponse{
		ID:        out.Account.ID,
		Email:     out.Account.Email,
		CreatedAt: out.Account.CreatedAt,
	})
}

// SignIn handles POST /signin.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.credentialUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SignInResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}

// IsAuthenticated handles GET /isAuthenticated. The token comes from x-access-token.
func (h *AccountHandler) IsAuthenticated(c echo.Context) error {
	out, err := h.credentialUC.IsAuthenticated(c.Request().Context(), &usecase.IsAuthenticatedInput{
		Token: middleware.TokenFromRequest(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthenticatedResponse{AccountID: out.AccountID})
}

// Delete handles DELETE /delete/:id. Deleting an unknown id reports zero and succeeds.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer"))
	}

	out, err := h.credentialUC.DestroyAccount(c.Request().Context(), &usecase.DestroyAccountInput{AccountID: id})
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	// Present only when the route is behind the auth middleware.
	if actorID, ok := middleware.GetAccountID(c); ok {
		logger = logger.With(slog.Uint64("acting_account_id", actorID))
	}
	logger.Info("Account delete handled",
		slog.Uint64("account_id", id),
		slog.Int64("deleted", out.Deleted),
	)

	return response.Success(c, http.StatusOK, DeleteResponse{Deleted: out.Deleted})
}

// IsAdmin handles GET /isAdmin.
func (h *AccountHandler) IsAdmin(c echo.Context) error {
	var req IsAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.credentialUC.IsAdmin(c.Request().Context(), &usecase.IsAdminInput{AccountID: req.ID})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, IsAdminResponse{IsAdmin: out.IsAdmin})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request"))
	}

	return c.Validate(req)
}
