// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account and copies the generated id and timestamps back onto it.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("Roles").Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing required account information"))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its id, preloading its roles.
func (repo *accountRepository) FindByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Delete removes the account. Memberships go with it through ON DELETE CASCADE on
// account_roles.account_id. Deleting an absent id affects zero rows.
func (repo *accountRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete account")
	}

	return result.RowsAffected, nil
}

// HasRole reports whether a membership row links the account to the named role.
func (repo *accountRepository) HasRole(ctx context.Context, accountID uint64, role entity.Role) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AccountRoleModel{}).
		Joins("JOIN roles ON roles.id = account_roles.role_id").
		Where("account_roles.account_id = ? AND roles.name = ?", accountID, role.String()).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check account role")
	}

	return count > 0, nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	var roles entity.Roles
	if len(data.Roles) > 0 {
		roles = make(entity.Roles, 0, len(data.Roles))
		for _, r := range data.Roles {
			roles = append(roles, entity.Role(r.Name))
		}
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Roles:        roles,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
