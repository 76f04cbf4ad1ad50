// Account endpoints: login and registration.
package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// AccountService wraps the user endpoints. Its requests are the only ones
// sent without a bearer token.
type AccountService struct {
	client *Client
}

// NewAccountService creates an account service on the given client.
func NewAccountService(client *Client) *AccountService {
	return &AccountService{client: client}
}

// AuthResult is the backend's response to a successful login or registration.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for a token and profile.
func (s *AccountService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrMissingArgument)
	}

	body := map[string]string{"username": username, "password": password}

	var result AuthResult
	if err := s.client.Post(ctx, "/api/users/login", body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if result.Token == "" {
		return nil, fmt.Errorf("%w: backend returned no token", shared.ErrAuthFailed)
	}

	return &result, nil
}

// Register creates an account and returns the initial session.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email, and password are required", shared.ErrMissingArgument)
	}

	body := map[string]string{"username": username, "email": email, "password": password}

	var result AuthResult
	if err := s.client.Post(ctx, "/api/users/register", body, &result); err != nil {
		return nil, err
	}

	if result.Token == "" {
		return nil, fmt.Errorf("%w: backend returned no token", shared.ErrAuthFailed)
	}

	return &result, nil
}
