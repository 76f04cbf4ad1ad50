package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges credentials for a token and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	result, err := r.account.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	session := &shared.Session{
		Token:     result.Token,
		UserID:    strconv.Itoa(result.User.ID),
		Username:  result.User.Username,
		CreatedAt: time.Now(),
	}
	if err := r.sessions.Save(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.logger.Info("logged in", "username", result.User.Username)
	return r.writePlainln("Logged in as %s", result.User.Username)
}

// AuthRegister creates an account, then persists the returned session.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")

	result, err := r.account.Register(ctx, username, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	session := &shared.Session{
		Token:     result.Token,
		UserID:    strconv.Itoa(result.User.ID),
		Username:  result.User.Username,
		CreatedAt: time.Now(),
	}
	if err := r.sessions.Save(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.logger.Info("account created", "username", result.User.Username)
	return r.writePlainln("Registered and logged in as %s", result.User.Username)
}

// AuthStatus reports whether a session is persisted and for whom.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	session, err := r.sessions.Load()
	if err != nil {
		if errors.Is(err, shared.ErrNoSession) {
			return r.writePlainln("Not logged in")
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if session.Username != "" {
		r.writePlainln("Logged in as %s", session.Username)
	} else {
		r.writePlainln("Logged in with an imported token")
	}
	return r.writePlain("Session created %s\n", session.CreatedAt.Format(time.RFC822))
}

// AuthLogout clears the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return r.writePlainln("Logged out")
}

// AuthImport extracts a bearer token from a browser "Copy as cURL" capture
// and persists it as the session, bypassing the password flow.
func (r *Runner) AuthImport(ctx context.Context, cmd *cli.Command) error {
	curl := cmd.String("curl")
	curlFile := cmd.String("curl-file")

	var headers *shared.CurlHeaders
	var err error

	switch {
	case curlFile != "":
		headers, err = shared.ParseCurlFile(curlFile)
	case curl != "":
		headers, err = shared.ParseCurlCommand([]byte(curl))
	default:
		return fmt.Errorf("%w: provide --curl or --curl-file", shared.ErrMissingArgument)
	}

	if err != nil {
		return fmt.Errorf("failed to parse cURL command: %w", err)
	}

	token, err := headers.BearerToken()
	if err != nil {
		return fmt.Errorf("no usable token in capture: %w", err)
	}

	session := &shared.Session{
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := r.sessions.Save(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.logger.Info("session imported from cURL capture")
	return r.writePlainln("Session token imported")
}
