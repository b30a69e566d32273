package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/dmitrijs2005/taskdesk/internal/models"
	"github.com/dmitrijs2005/taskdesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/taskdesk/internal/timex"
)

// Mode selects which variant of the auth surface is active. The two variants
// have statically distinct field sets: login takes username+password, signup
// additionally takes a confirmation.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

// Authenticator validates login and signup requests against the credential
// store and owns the password hashing policy.
type Authenticator struct {
	repo credentials.Repository
	log  logging.Logger
	mode Mode
	now  func() time.Time
}

// NewAuthenticator constructs an Authenticator in ModeLogin.
func NewAuthenticator(repo credentials.Repository, log logging.Logger) *Authenticator {
	return &Authenticator{repo: repo, log: log, mode: ModeLogin, now: time.Now}
}

// Mode returns the active auth variant.
func (a *Authenticator) Mode() Mode { return a.mode }

// SetMode switches the active auth variant.
func (a *Authenticator) SetMode(m Mode) { a.mode = m }

// ToggleMode flips between ModeLogin and ModeSignup.
func (a *Authenticator) ToggleMode() {
	if a.mode == ModeLogin {
		a.mode = ModeSignup
	} else {
		a.mode = ModeLogin
	}
}

// HashPassword returns the hex-encoded sha256 digest of password. The digest
// is deliberately unsalted: the credential file format predates this
// implementation and stores plain sha256 hex, and this is a local
// single-user tool, not a networked service. Any shared deployment must
// replace this with a salted password KDF and a file migration.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// Login validates the credentials and returns the authenticated username.
//
// Branches:
//   - empty field → *common.ValidationError
//   - username not registered → common.ErrUnknownUser (the caller decides
//     whether to offer signup; no account data is touched)
//   - digest mismatch → common.ErrInvalidCredentials (the caller must clear
//     the password input)
func (a *Authenticator) Login(ctx context.Context, username string, password []byte) (string, error) {
	if username == "" {
		return "", common.NewValidationError("username", "required")
	}
	if len(password) == 0 {
		return "", common.NewValidationError("password", "required")
	}

	accounts, err := a.repo.Load(ctx)
	if err != nil {
		return "", err
	}

	acct, ok := accounts[username]
	if !ok {
		return "", common.ErrUnknownUser
	}

	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(acct.PasswordHash), []byte(candidate)) != 1 {
		a.log.Warn(ctx, "login rejected", "user", username)
		return "", common.ErrInvalidCredentials
	}

	a.log.Info(ctx, "login ok", "user", username)
	return username, nil
}

// Signup validates the requested account in order, stopping at the first
// violation, then persists the updated credential mapping before reporting
// success. It does not log the new user in; the caller is expected to switch
// back to ModeLogin with the username pre-filled.
func (a *Authenticator) Signup(ctx context.Context, username string, password, confirm []byte) (string, error) {
	if username == "" {
		return "", common.NewValidationError("username", "required")
	}
	if utf8.RuneCountInString(username) < minUsernameLen {
		return "", common.NewValidationError("username", "min length 3")
	}
	if len(password) == 0 {
		return "", common.NewValidationError("password", "required")
	}
	if utf8.RuneCount(password) < minPasswordLen {
		return "", common.NewValidationError("password", "min length 4")
	}
	if len(confirm) == 0 {
		return "", common.NewValidationError("confirm", "required")
	}
	if !bytes.Equal(password, confirm) {
		return "", common.NewValidationError("confirm", "match")
	}

	accounts, err := a.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := accounts[username]; ok {
		return "", common.ErrUserExists
	}

	accounts[username] = models.Account{
		PasswordHash: HashPassword(password),
		CreatedAt:    timex.Stamp(a.now()),
	}

	// Persist before reporting success so memory and disk cannot diverge.
	if err := a.repo.Save(ctx, accounts); err != nil {
		return "", err
	}

	a.log.Info(ctx, "account created", "user", username)
	return username, nil
}
