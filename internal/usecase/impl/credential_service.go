// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/infra/metrics"
	"authsvc/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Operation names used for logging and the operations counter.
const (
	opCreateAccount   = "create_account"
	opDestroyAccount  = "destroy_account"
	opSignIn          = "sign_in"
	opIsAuthenticated = "is_authenticated"
	opIsAdmin         = "is_admin"
)

const (
	detailNoEmailRecord   = "Please check the email, as there is no record of the email"
	detailNoTokenAccount  = "No user with the corresponding token exists"
	detailNoAccountWithID = "No account exists with the given id"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	minPassword  int
	maxPassword  int
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	minPassword, maxPassword := config.DefaultPasswordMinLength, config.DefaultPasswordMaxLength
	if params.Config != nil && params.Config.PasswordPolicy != nil {
		minPassword = params.Config.PasswordPolicy.MinLength
		maxPassword = params.Config.PasswordPolicy.MaxLength
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &credentialService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		minPassword:  minPassword,
		maxPassword:  maxPassword,
		metrics:      params.Metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// observe records the outcome of one operation on the operations counter.
func (srv *credentialService) observe(operation string, err error) {
	srv.metrics.ObserveOperation(operation, outcomeOf(err))
}

// CreateAccount validates the input, hashes the password and persists the account.
func (srv *credentialService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (out *usecase.CreateAccountOutput, err error) {
	defer func() { srv.observe(opCreateAccount, err) }()

	email := entity.NormalizeEmail(input.Email)
	if err := srv.validateEmail(email); err != nil {
		return nil, err
	}
	if err := srv.validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, err
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindValidation {
			srv.log(ctx).Error("Failed to create account", slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Account created", slog.Uint64("accountID", account.ID))

	return &usecase.CreateAccountOutput{Account: account}, nil
}

// DestroyAccount deletes the account. Deleting an absent account reports zero and is not an error.
func (srv *credentialService) DestroyAccount(ctx context.Context, input *usecase.DestroyAccountInput) (out *usecase.DestroyAccountOutput, err error) {
	defer func() { srv.observe(opDestroyAccount, err) }()

	deleted, err := srv.accountRepo.Delete(ctx, input.AccountID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Uint64("accountID", input.AccountID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account delete processed",
		slog.Uint64("accountID", input.AccountID),
		slog.Int64("deleted", deleted),
	)

	return &usecase.DestroyAccountOutput{Deleted: deleted}, nil
}

// SignIn verifies the credentials and issues a session token.
// An unknown email is reported as not-found, a wrong password as an authentication failure.
func (srv *credentialService) SignIn(ctx context.Context, input *usecase.SignInInput) (out *usecase.SignInOutput, err error) {
	defer func() { srv.observe(opSignIn, err) }()

	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email and password are required"))
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails(detailNoEmailRecord))
		}
		srv.log(ctx).Error("Failed to find account by email", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	ok, err := srv.hasher.Check(ctx, input.Password, account.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Failed to check password", slog.Uint64("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}
	if !ok {
		srv.log(ctx).Info("Sign-in rejected: incorrect password", slog.Uint64("accountID", account.ID))

		return nil, errors.WithStack(domainerrors.ErrIncorrectPassword)
	}

	issuedAt := srv.now()
	token, err := srv.tokenService.Issue(entity.TokenClaims{Email: account.Email, AccountID: account.ID})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Uint64("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account signed in", slog.Uint64("accountID", account.ID))

	return &usecase.SignInOutput{
		Token:     token,
		ExpiresAt: issuedAt.Add(srv.tokenService.TTL()),
		AccountID: account.ID,
	}, nil
}

// IsAuthenticated verifies the token and confirms the account it names still exists.
// Expired, tampered and orphaned tokens all fail the same way.
func (srv *credentialService) IsAuthenticated(ctx context.Context, input *usecase.IsAuthenticatedInput) (out *usecase.IsAuthenticatedOutput, err error) {
	defer func() { srv.observe(opIsAuthenticated, err) }()

	if input.Token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	claims, err := srv.tokenService.Verify(input.Token)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindAuthentication {
			return nil, err
		}

		return nil, errors.WithStack(domainerrors.ErrAuthenticationFailed)
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info(detailNoTokenAccount, slog.Uint64("accountID", claims.AccountID))

			return nil, errors.WithStack(domainerrors.ErrAuthenticationFailed)
		}
		srv.log(ctx).Error("Failed to find account by id", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return &usecase.IsAuthenticatedOutput{AccountID: account.ID}, nil
}

// IsAdmin reports whether the account holds the ADMIN role. A missing ADMIN role row means false.
func (srv *credentialService) IsAdmin(ctx context.Context, input *usecase.IsAdminInput) (out *usecase.IsAdminOutput, err error) {
	defer func() { srv.observe(opIsAdmin, err) }()

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails(detailNoAccountWithID))
		}
		srv.log(ctx).Error("Failed to find account by id", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	isAdmin, err := srv.accountRepo.HasRole(ctx, input.AccountID, entity.RoleAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to check role", slog.Uint64("accountID", input.AccountID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check role")
	}

	return &usecase.IsAdminOutput{IsAdmin: isAdmin}, nil
}

func (srv *credentialService) validateEmail(email string) error {
	if email == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is required"))
	}
	if err := srv.validate.Var(email, "email,max=255"); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is not a valid address"))
	}

	return nil
}

func (srv *credentialService) validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < srv.minPassword || n > srv.maxPassword {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be between %d and %d characters", srv.minPassword, srv.maxPassword),
		))
	}

	return nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	switch domainerrors.KindOf(err) {
	case domainerrors.KindValidation:
		return metrics.OutcomeValidation
	case domainerrors.KindNotFound:
		return metrics.OutcomeNotFound
	case domainerrors.KindAuthentication:
		return metrics.OutcomeAuthentication
	default:
		return metrics.OutcomeInternal
	}
}
