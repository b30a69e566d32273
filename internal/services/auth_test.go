package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/models"
	"github.com/dmitrijs2005/taskdesk/internal/repositories/credentials"
)

type fakeCredRepo struct {
	accounts map[string]models.Account
	saveErr  error
	saves    int
}

func (f *fakeCredRepo) Load(_ context.Context) (map[string]models.Account, error) {
	if f.accounts == nil {
		f.accounts = make(map[string]models.Account)
	}
	return f.accounts, nil
}

func (f *fakeCredRepo) Save(_ context.Context, accounts map[string]models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.accounts = accounts
	f.saves++
	return nil
}

func newTestAuthenticator(repo credentials.Repository) *Authenticator {
	a := NewAuthenticator(repo, discardLogger())
	a.now = func() time.Time { return time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC) }
	return a
}

func TestAuthenticator_DefaultMode(t *testing.T) {
	a := newTestAuthenticator(&fakeCredRepo{})
	assert.Equal(t, ModeLogin, a.Mode())

	a.ToggleMode()
	assert.Equal(t, ModeSignup, a.Mode())
	a.ToggleMode()
	assert.Equal(t, ModeLogin, a.Mode())

	a.SetMode(ModeSignup)
	assert.Equal(t, ModeSignup, a.Mode())
}

func TestSignup_ValidationOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		password  string
		confirm   string
		wantField string
		wantRule  string
	}{
		{"empty username first", "", "", "", "username", "required"},
		{"short username", "ab", "pass", "pass", "username", "min length 3"},
		{"empty password", "alice", "", "", "password", "required"},
		{"short password", "alice", "abc", "abc", "password", "min length 4"},
		{"empty confirm", "alice", "pass", "", "confirm", "required"},
		{"mismatch", "alice", "pass", "past", "confirm", "match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAuthenticator(&fakeCredRepo{})
			_, err := a.Signup(ctx, tt.username, []byte(tt.password), []byte(tt.confirm))

			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantRule, ve.Rule)
		})
	}
}

func TestSignup_UsernameLengthBoundary(t *testing.T) {
	ctx := context.Background()

	a := newTestAuthenticator(&fakeCredRepo{})
	_, err := a.Signup(ctx, "ab", []byte("pass"), []byte("pass"))
	assert.True(t, common.IsValidation(err))

	user, err := a.Signup(ctx, "abc", []byte("pass"), []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "abc", user)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := &fakeCredRepo{}
	a := newTestAuthenticator(repo)

	_, err := a.Signup(ctx, "alice", []byte("pass"), []byte("pass"))
	require.NoError(t, err)

	_, err = a.Signup(ctx, "alice", []byte("other1"), []byte("other1"))
	assert.ErrorIs(t, err, common.ErrUserExists)
	assert.Equal(t, 1, repo.saves)
}

func TestSignup_PersistsHashAndTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := &fakeCredRepo{}
	a := newTestAuthenticator(repo)

	_, err := a.Signup(ctx, "alice", []byte("pass"), []byte("pass"))
	require.NoError(t, err)

	acct, ok := repo.accounts["alice"]
	require.True(t, ok)
	assert.Equal(t, HashPassword([]byte("pass")), acct.PasswordHash)
	assert.NotEqual(t, "pass", acct.PasswordHash)
	assert.Equal(t, "2024-01-02 10:00:00", acct.CreatedAt)
}

func TestSignup_SaveFailureSurfaces(t *testing.T) {
	repo := &fakeCredRepo{saveErr: common.NewPersistenceError("users.json", errors.New("disk full"))}
	a := newTestAuthenticator(repo)

	_, err := a.Signup(context.Background(), "alice", []byte("pass"), []byte("pass"))
	assert.True(t, common.IsPersistence(err))
}

func TestLogin_EmptyFields(t *testing.T) {
	ctx := context.Background()
	a := newTestAuthenticator(&fakeCredRepo{})

	_, err := a.Login(ctx, "", []byte("pass"))
	assert.True(t, common.IsValidation(err))

	_, err = a.Login(ctx, "alice", nil)
	assert.True(t, common.IsValidation(err))
}

func TestLogin_UnknownUserIsABranch(t *testing.T) {
	a := newTestAuthenticator(&fakeCredRepo{})

	_, err := a.Login(context.Background(), "nobody", []byte("pass"))
	assert.ErrorIs(t, err, common.ErrUnknownUser)
}

func TestAuth_SignupThenLoginScenario(t *testing.T) {
	// Full lifecycle against the real JSON-file repository.
	ctx := context.Background()
	repo := credentials.NewJSONFileRepository(filepath.Join(t.TempDir(), "users.json"))
	a := newTestAuthenticator(repo)

	user, err := a.Signup(ctx, "alice", []byte("pass"), []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	_, err = a.Login(ctx, "alice", []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	user, err = a.Login(ctx, "alice", []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
}

func TestLogin_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := &fakeCredRepo{}
	a := newTestAuthenticator(repo)

	_, err := a.Signup(ctx, "alice", []byte("pass"), []byte("pass"))
	require.NoError(t, err)

	_, err = a.Login(ctx, "Alice", []byte("pass"))
	assert.ErrorIs(t, err, common.ErrUnknownUser)
}

func TestHashPassword(t *testing.T) {
	h := HashPassword([]byte("pass"))

	assert.Len(t, h, 64)
	assert.Equal(t, h, HashPassword([]byte("pass")))
	assert.NotEqual(t, h, HashPassword([]byte("Pass")))
}
