package impl

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/auth"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccountRepository is an in-memory AccountRepository with the same uniqueness and
// not-found behavior as the Postgres one.
type memoryAccountRepository struct {
	mu       sync.Mutex
	nextID   uint64
	accounts map[uint64]*entity.Account
	roles    map[uint64]entity.Roles
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{
		accounts: map[uint64]*entity.Account{},
		roles:    map[uint64]entity.Roles{},
	}
}

func (r *memoryAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
		}
	}

	r.nextID++
	account.ID = r.nextID
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	r.accounts[account.ID] = &stored

	return nil
}

func (r *memoryAccountRepository) FindByID(_ context.Context, id uint64) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	found := *account
	found.Roles = r.roles[id]

	return &found, nil
}

func (r *memoryAccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			found := *account

			return &found, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepository) Delete(_ context.Context, id uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return 0, nil
	}
	delete(r.accounts, id)
	delete(r.roles, id)

	return 1, nil
}

func (r *memoryAccountRepository) HasRole(_ context.Context, accountID uint64, role entity.Role) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.roles[accountID].Contains(role), nil
}

func (r *memoryAccountRepository) grant(accountID uint64, role entity.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles[accountID] = append(r.roles[accountID], role)
}

func newScenarioService(t *testing.T) (usecase.CredentialUsecase, *memoryAccountRepository) {
	t.Helper()

	repo := newMemoryAccountRepository()
	tokens, err := auth.NewJWTServiceWithOptions("scenario-secret", time.Hour, newDiscardLogger())
	require.NoError(t, err)

	svc := NewCredentialService(CredentialServiceParams{
		AccountRepo:  repo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost, 2, nil),
		TokenService: tokens,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, repo
}

func TestCredentialScenario_FullLifecycle(t *testing.T) {
	svc, repo := newScenarioService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", created.Account.PasswordHash)

	signedIn, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, signedIn.Token)

	authed, err := svc.IsAuthenticated(ctx, &usecase.IsAuthenticatedInput{Token: signedIn.Token})
	require.NoError(t, err)
	assert.Equal(t, created.Account.ID, authed.AccountID)

	admin, err := svc.IsAdmin(ctx, &usecase.IsAdminInput{AccountID: authed.AccountID})
	require.NoError(t, err)
	assert.False(t, admin.IsAdmin)

	repo.grant(created.Account.ID, entity.RoleAdmin)

	admin, err = svc.IsAdmin(ctx, &usecase.IsAdminInput{AccountID: authed.AccountID})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestCredentialScenario_WrongPasswordAfterCreate(t *testing.T) {
	svc, _ := newScenarioService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	for _, guess := range []string{"secret2", "Secret1", "secret1 ", "secret"} {
		_, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "a@x.com", Password: guess})
		require.Error(t, err, guess)
		assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err), guess)
	}
}

func TestCredentialScenario_LongPasswordNeedsExactMatch(t *testing.T) {
	svc, _ := newScenarioService(t)
	ctx := context.Background()
	password := strings.Repeat("p", 72)

	_, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "long@x.com", Password: password})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, &usecase.SignInInput{Email: "long@x.com", Password: password})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, &usecase.SignInInput{Email: "long@x.com", Password: password + "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
}

func TestCredentialScenario_EmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newScenarioService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "Mixed@X.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, &usecase.SignInInput{Email: "mixed@x.COM", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "MIXED@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestCredentialScenario_TokenOutlivesDeletedAccount(t *testing.T) {
	svc, _ := newScenarioService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, &usecase.CreateAccountInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	signedIn, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	destroyed, err := svc.DestroyAccount(ctx, &usecase.DestroyAccountInput{AccountID: created.Account.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), destroyed.Deleted)

	_, err = svc.IsAuthenticated(ctx, &usecase.IsAuthenticatedInput{Token: signedIn.Token})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err))

	destroyed, err = svc.DestroyAccount(ctx, &usecase.DestroyAccountInput{AccountID: created.Account.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), destroyed.Deleted)
}

func TestCredentialScenario_UnknownEmailIsDistinguishable(t *testing.T) {
	svc, _ := newScenarioService(t)

	_, err := svc.SignIn(context.Background(), &usecase.SignInInput{Email: "ghost@x.com", Password: "secret1"})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
