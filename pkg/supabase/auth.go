package supabase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"stavquote/internal/models"
)

// AuthClient wraps the Supabase GoTrue API.
type AuthClient struct {
	client gotrue.Client
}

// NewAuthClient builds a client using the project's anon key.
func NewAuthClient(supabaseURL, apiKey string) *AuthClient {
	projectRef := extractProjectRef(supabaseURL)
	client := gotrue.New(projectRef, apiKey)
	return &AuthClient{
		client: client,
	}
}

// NewAuthClientWithServiceKey builds a client authorized with the service
// role key, needed for admin operations.
func NewAuthClientWithServiceKey(supabaseURL, anonKey, serviceKey string) *AuthClient {
	projectRef := extractProjectRef(supabaseURL)
	client := gotrue.New(projectRef, anonKey).WithToken(serviceKey)
	return &AuthClient{
		client: client,
	}
}

// extractProjectRef pulls the project reference out of a Supabase URL.
// URL format: https://project-ref.supabase.co
func extractProjectRef(supabaseURL string) string {
	if len(supabaseURL) == 0 {
		return ""
	}

	url := supabaseURL
	if strings.HasPrefix(url, "https://") {
		url = url[8:]
	}

	parts := strings.Split(url, ".")
	if len(parts) > 0 {
		return parts[0]
	}

	return url
}

// SignUp registers a user with Supabase auth.
func (a *AuthClient) SignUp(email, password string, userData map[string]interface{}) (*models.SupabaseAuthResponse, error) {
	req := types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     userData,
	}

	resp, err := a.client.Signup(req)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	if resp.User.ID == uuid.Nil {
		return nil, fmt.Errorf("user was not created")
	}

	result := &models.SupabaseAuthResponse{
		User: &models.SupabaseUser{
			ID:    resp.User.ID.String(),
			Email: resp.User.Email,
		},
	}

	if resp.AccessToken != "" {
		result.Session = &models.SupabaseSession{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresAt:    time.Unix(int64(resp.ExpiresAt), 0),
		}
	}

	return result, nil
}

// SignIn authenticates a user with email and password.
func (a *AuthClient) SignIn(email, password string) (*models.SupabaseAuthResponse, error) {
	resp, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	if resp.User.ID == uuid.Nil {
		return nil, fmt.Errorf("authentication failed")
	}

	return &models.SupabaseAuthResponse{
		User: &models.SupabaseUser{
			ID:    resp.User.ID.String(),
			Email: resp.User.Email,
		},
		Session: &models.SupabaseSession{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresAt:    time.Unix(int64(resp.ExpiresAt), 0),
		},
	}, nil
}

// GetUser resolves the user behind an access token.
func (a *AuthClient) GetUser(token string) (*models.SupabaseUser, error) {
	clientWithToken := a.client.WithToken(token)
	resp, err := clientWithToken.GetUser()
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return &models.SupabaseUser{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}, nil
}

// RefreshToken exchanges a refresh token for a new session.
func (a *AuthClient) RefreshToken(refreshToken string) (*models.SupabaseSession, error) {
	resp, err := a.client.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}

	return &models.SupabaseSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Unix(int64(resp.ExpiresAt), 0),
	}, nil
}

// SignOut invalidates the user's session.
func (a *AuthClient) SignOut(token string) error {
	clientWithToken := a.client.WithToken(token)
	if err := clientWithToken.Logout(); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}
	return nil
}
