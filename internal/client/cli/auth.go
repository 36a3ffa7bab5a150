package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/coachdesk/coachdesk/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var confirm = Confirm

// Login prompts for credentials and authenticates against the backend.
// On success the session store holds the user and token, and the token is
// already persisted for the next run. The final state is reported from the
// session snapshot rather than the error alone, because a login that returns
// a token without a user record still counts as failed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Session.Login(ctx, email, password); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	s := a.root.Session.Snapshot()
	if !s.IsAuthenticated {
		printlnFn("Login did not produce a usable session; try again.")
		return nil
	}
	printlnFn(fmt.Sprintf("Logged in as %s (%s)", s.User.Email, s.User.Role))
	return nil
}

// Signup collects profile fields and a role, creates the account, and leaves
// the session authenticated on success.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Enter role (trainer, nutritionist, trainee)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(roleText)

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	data := models.SignupData{Name: name, Email: email, Password: password}
	if err := a.root.Session.Signup(ctx, data, role); err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		return err
	}

	printlnFn("Account created!")
	return nil
}

// Logout drops the session locally. No server call is involved; the bearer
// token simply stops being sent and the persisted slice is wiped.
func (a *App) Logout(ctx context.Context) error {
	if err := a.root.Session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current session snapshot.
func (a *App) Whoami(ctx context.Context) error {
	s := a.root.Session.Snapshot()
	if s.User == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s verified=%t", s.User.Name, s.User.Email, s.User.Role, s.User.Verified))
	return nil
}

// ResetPassword runs the two-phase reset flow: request an email, then
// (optionally, in the same sitting) confirm with the token it contained.
// Leaving the token empty stops after the request phase.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Session.RequestPasswordReset(ctx, email); err != nil {
		a.log.Error(ctx, "password reset request failed", "error", err)
		return err
	}
	printlnFn("Reset email requested. Enter the token from the email to finish, or leave empty to stop here.")

	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	newPassword, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.root.Session.ConfirmPasswordReset(ctx, token, newPassword); err != nil {
		a.log.Error(ctx, "password reset failed", "error", err)
		return err
	}
	printlnFn("Password updated. You can log in now.")
	return nil
}
