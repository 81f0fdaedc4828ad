//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/migrations"
	"authsvc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type repositorySuite struct {
	suite.Suite

	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(repositorySuite))
}

func (s *repositorySuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:18-alpine",
		tcpostgres.WithDatabase("authsvc_test"),
		tcpostgres.WithUsername("authsvc"),
		tcpostgres.WithPassword("authsvc"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(nil, nil),
	})
	s.Require().NoError(err)
	s.db = db

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	s.Require().NoError(migrations.Up(s.ctx, sqlDB, nil))
}

func (s *repositorySuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *repositorySuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE account_roles, accounts RESTART IDENTITY CASCADE").Error)
}

func (s *repositorySuite) createAccount(email string) *entity.Account {
	account := &entity.Account{Email: email, PasswordHash: "$2a$10$hash"}
	s.Require().NoError(NewAccountRepository(s.db).Create(s.ctx, account))

	return account
}

func (s *repositorySuite) TestCreateAndFind() {
	repo := NewAccountRepository(s.db)
	account := s.createAccount("a@x.com")

	s.NotZero(account.ID)
	s.False(account.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal(account.ID, byEmail.ID)
	s.Equal("$2a$10$hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal("a@x.com", byID.Email)
}

func (s *repositorySuite) TestCreateDuplicateEmail() {
	s.createAccount("dup@x.com")

	err := NewAccountRepository(s.db).Create(s.ctx, &entity.Account{Email: "dup@x.com", PasswordHash: "h"})
	s.Require().Error(err)
	s.True(errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func (s *repositorySuite) TestCreateRejectsUppercaseEmail() {
	err := NewAccountRepository(s.db).Create(s.ctx, &entity.Account{Email: "Upper@x.com", PasswordHash: "h"})
	s.Require().Error(err)
	s.True(errors.Is(err, domainerrors.ErrValidationFailed))
}

func (s *repositorySuite) TestFindMissing() {
	repo := NewAccountRepository(s.db)

	_, err := repo.FindByEmail(s.ctx, "nobody@x.com")
	s.True(errors.Is(err, repository.ErrAccountNotFound))

	_, err = repo.FindByID(s.ctx, 999)
	s.True(errors.Is(err, repository.ErrAccountNotFound))
}

func (s *repositorySuite) TestDelete() {
	repo := NewAccountRepository(s.db)
	account := s.createAccount("gone@x.com")
	s.Require().NoError(NewRoleRepository(s.db).Grant(s.ctx, account.ID, entity.RoleAdmin))

	n, err := repo.Delete(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = repo.Delete(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	_, err = repo.FindByEmail(s.ctx, "gone@x.com")
	s.True(errors.Is(err, repository.ErrAccountNotFound))

	var memberships int64
	s.Require().NoError(s.db.Model(&model.AccountRoleModel{}).Where("account_id = ?", account.ID).Count(&memberships).Error)
	s.Zero(memberships, "memberships are removed with the account")
}

func (s *repositorySuite) TestRoles() {
	accounts := NewAccountRepository(s.db)
	roles := NewRoleRepository(s.db)
	account := s.createAccount("admin@x.com")

	has, err := accounts.HasRole(s.ctx, account.ID, entity.RoleAdmin)
	s.Require().NoError(err)
	s.False(has)

	s.Require().NoError(roles.Grant(s.ctx, account.ID, entity.RoleAdmin))
	s.Require().NoError(roles.Grant(s.ctx, account.ID, entity.RoleAdmin), "granting twice is a no-op")

	has, err = accounts.HasRole(s.ctx, account.ID, entity.RoleAdmin)
	s.Require().NoError(err)
	s.True(has)

	loaded, err := accounts.FindByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(loaded.HasRole(entity.RoleAdmin))

	has, err = accounts.HasRole(s.ctx, account.ID, entity.Role("AUDITOR"))
	s.Require().NoError(err)
	s.False(has, "a role with no row is simply not held")

	n, err := roles.Revoke(s.ctx, account.ID, entity.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	err = roles.Grant(s.ctx, account.ID, entity.Role("AUDITOR"))
	s.True(errors.Is(err, repository.ErrRoleNotFound))

	s.Require().NoError(roles.EnsureRole(s.ctx, entity.Role("AUDITOR")))
	s.Require().NoError(roles.EnsureRole(s.ctx, entity.Role("AUDITOR")))
	s.Require().NoError(roles.Grant(s.ctx, account.ID, entity.Role("AUDITOR")))

	err = roles.Grant(s.ctx, 424242, entity.RoleAdmin)
	s.True(errors.Is(err, repository.ErrAccountNotFound))
}

func (s *repositorySuite) TestTransactionRollback() {
	tm := NewTransactionManager(s.db)
	sentinel := errors.New("abort")

	err := tm.Execute(s.ctx, func(f repository.RepositoryFactory) error {
		if err := f.AccountRepo().Create(s.ctx, &entity.Account{Email: "tx@x.com", PasswordHash: "h"}); err != nil {
			return err
		}

		return sentinel
	})
	s.Require().ErrorIs(err, sentinel)

	_, err = NewAccountRepository(s.db).FindByEmail(s.ctx, "tx@x.com")
	assert.True(s.T(), errors.Is(err, repository.ErrAccountNotFound))
}

func (s *repositorySuite) TestTransactionCommit() {
	tm := NewTransactionManager(s.db)

	err := tm.Execute(s.ctx, func(f repository.RepositoryFactory) error {
		return f.AccountRepo().Create(s.ctx, &entity.Account{Email: "commit@x.com", PasswordHash: "h"})
	})
	require.NoError(s.T(), err)

	_, err = NewAccountRepository(s.db).FindByEmail(s.ctx, "commit@x.com")
	s.NoError(err)
}
