package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/services"
	"github.com/dmitrijs2005/taskdesk/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// promptUsername asks for a username, offering the pending one (carried over
// from a mode switch) as the default.
func (a *App) promptUsername() (string, error) {
	prompt := "Enter username"
	if a.pendingUsername != "" {
		prompt = fmt.Sprintf("Enter username [%s]", a.pendingUsername)
	}
	username, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if username == "" {
		username = a.pendingUsername
	}
	return username, nil
}

// Login prompts for credentials and tries to authenticate.
//
// An unknown username is not an error: the user is offered account creation,
// which switches the Authenticator to its signup variant with the username
// carried over. A wrong password clears the captured password (it is wiped
// unconditionally) and leaves the user at the prompt to retry.
func (a *App) Login(ctx context.Context) error {
	username, err := a.promptUsername()
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser):
			yes, askErr := askYesNo(a.reader, fmt.Sprintf("Username %q not found. Create a new account?", username), os.Stdout)
			if askErr != nil {
				return askErr
			}
			if yes {
				a.auth.SetMode(services.ModeSignup)
				a.pendingUsername = username
				return a.Signup(ctx)
			}
			return nil
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Incorrect password!")
			return nil
		default:
			printlnFn("Error:", err.Error())
			return nil
		}
	}

	return a.startSession(ctx, user)
}

// Signup prompts for the new account fields and creates the account. On
// success the Authenticator is switched back to its login variant with the
// username pre-filled; the user is not logged in automatically.
func (a *App) Signup(ctx context.Context) error {
	a.auth.SetMode(services.ModeSignup)

	username, err := a.promptUsername()
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	user, err := a.auth.Signup(ctx, username, password, confirm)
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			printlnFn(fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Rule))
		case errors.Is(err, common.ErrUserExists):
			printlnFn("Username already exists!")
			a.pendingUsername = username
		default:
			printlnFn("Error:", err.Error())
		}
		return nil
	}

	a.pendingUsername = user
	a.auth.SetMode(services.ModeLogin)
	printlnFn(fmt.Sprintf("Account created! Please log in as %q.", user))
	return nil
}

// startSession creates the session object and the task service bound to it.
func (a *App) startSession(ctx context.Context, user string) error {
	sess := session.New(user)
	svc, err := newTaskService(ctx, sess, a.taskRepo, a.log)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.sess = sess
	a.svc = svc
	a.filter = services.FilterAll
	a.pendingUsername = ""

	a.log.Info(ctx, "session started", "user", user, "session_id", sess.ID.String())
	printlnFn(fmt.Sprintf("Welcome, %s!", user))
	return nil
}

// Logout drops the session and its task service.
func (a *App) Logout(ctx context.Context) error {
	if a.sess != nil {
		a.log.Info(ctx, "session ended", "user", a.sess.Username, "session_id", a.sess.ID.String())
	}
	a.sess = nil
	a.svc = nil
	a.filter = services.FilterAll
	printlnFn("Logged out")
	return nil
}
