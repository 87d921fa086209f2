package api

import (
	"context"

	"github.com/ahamed-hazeeb/budget-buddy/internal/model"
)

// AuthService handles login, registration, and profile retrieval.
type AuthService struct {
	client *Client
}

// NewAuthService creates the auth resource client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token and profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := s.client.post(ctx, "/users/login", model.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Register creates a new user and returns a fresh session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := s.client.post(ctx, "/users/register", model.RegisterRequest{Name: name, Email: email, Password: password}, &out)
	return out, err
}

// Profile fetches the authenticated user's profile.
func (s *AuthService) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	err := s.client.get(ctx, "/users/profile", nil, &out)
	return out, err
}
