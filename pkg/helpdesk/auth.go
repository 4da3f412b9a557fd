package helpdesk

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams is the signup payload.
type RegisterParams struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

// AuthResponse is the shape both login and register return. ExpiresAt is
// left raw because the backend has shipped it as an RFC 3339 string, epoch
// seconds and epoch milliseconds at different times; the session package
// normalizes it.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt json.RawMessage `json:"expiresAt,omitempty"`
	User      *User           `json:"user,omitempty"`
}

// AuthService wraps the authentication endpoints.
type AuthService struct {
	client *apiclient.Client
}

// NewAuthService creates the auth API wrapper.
func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token. Errors propagate unmodified; this
// is a user-initiated action where visible failure is correct.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	return apiclient.Call[AuthResponse](ctx, s.client, apiclient.Request{
		Path:   "/auth/login",
		Method: http.MethodPost,
		Body:   creds,
	})
}

// Register creates an account and returns the same shape as Login.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (AuthResponse, error) {
	return apiclient.Call[AuthResponse](ctx, s.client, apiclient.Request{
		Path:   "/auth/register",
		Method: http.MethodPost,
		Body:   params,
	})
}

// Me returns the identity behind the current bearer token.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	user, err := apiclient.Call[User](ctx, s.client, apiclient.Request{
		Path: "/auth/me",
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ValidateToken asks the server whether a token is still good.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (bool, error) {
	return apiclient.Call[bool](ctx, s.client, apiclient.Request{
		Path:   "/auth/validate-token",
		Method: http.MethodPost,
		Body:   token,
	})
}
