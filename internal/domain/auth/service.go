package auth

import "context"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Register creates a password account with the pending role
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Login authenticates an email/password account and issues a token pair
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates (and on first login creates) an OAuth account
	LoginWithGoogle(ctx context.Context, googleEmail, googleID string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates the refresh token and issues a fresh pair
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
