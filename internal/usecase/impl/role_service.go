package impl

import (
	"context"
	"log/slog"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleAdminUsecase interface.
type roleService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleAdminUsecase {
	return &roleService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// GrantRole creates the role if needed and attaches it to the account, in one transaction.
func (srv *roleService) GrantRole(ctx context.Context, accountID uint64, role entity.Role) error {
	if !role.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid role name: " + role.String()))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.AccountRepo().FindByID(ctx, accountID); err != nil {
			return mapAccountLookupError(err)
		}

		roleRepo := repoFactory.RoleRepo()
		if err := roleRepo.EnsureRole(ctx, role); err != nil {
			return err
		}

		return roleRepo.Grant(ctx, accountID, role)
	})
	if err != nil {
		return err
	}

	srv.logger.InfoContext(ctx, "Role granted", slog.Uint64("accountID", accountID), slog.String("role", role.String()))

	return nil
}

// RevokeRole detaches the role and returns how many memberships were removed.
// Revoking a role that has no row removes nothing.
func (srv *roleService) RevokeRole(ctx context.Context, accountID uint64, role entity.Role) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.AccountRepo().FindByID(ctx, accountID); err != nil {
			return mapAccountLookupError(err)
		}

		n, err := repoFactory.RoleRepo().Revoke(ctx, accountID, role)
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil
		}
		removed = n

		return err
	})
	if err != nil {
		return 0, err
	}

	srv.logger.InfoContext(ctx, "Role revoked",
		slog.Uint64("accountID", accountID),
		slog.String("role", role.String()),
		slog.Int64("removed", removed),
	)

	return removed, nil
}

func mapAccountLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails(detailNoAccountWithID))
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to find account")
}
