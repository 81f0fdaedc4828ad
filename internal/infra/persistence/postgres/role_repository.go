package postgres

import (
	"context"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// EnsureRole inserts the role row unless one with the same name exists.
func (repo *roleRepository) EnsureRole(ctx context.Context, role entity.Role) error {
	if !role.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid role name: " + role.String()))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&model.RoleModel{Name: role.String()}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return nil
}

// Grant links the account to the role. An existing membership is left untouched.
func (repo *roleRepository) Grant(ctx context.Context, accountID uint64, role entity.Role) error {
	roleM, err := repo.findRole(ctx, role)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AccountRoleModel{AccountID: accountID, RoleID: roleM.ID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrAccountNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to grant role")
	}

	return nil
}

// Revoke removes the membership and returns how many rows were deleted.
func (repo *roleRepository) Revoke(ctx context.Context, accountID uint64, role entity.Role) (int64, error) {
	roleM, err := repo.findRole(ctx, role)
	if err != nil {
		return 0, err
	}

	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND role_id = ?", accountID, roleM.ID).
		Delete(&model.AccountRoleModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to revoke role")
	}

	return result.RowsAffected, nil
}

func (repo *roleRepository) findRole(ctx context.Context, role entity.Role) (*model.RoleModel, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).Where("name = ?", role.String()).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrRoleNotFound)
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return &roleM, nil
}
