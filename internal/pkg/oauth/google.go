package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// defaultScopes is the narrowest grant that lets the login flow match a
// Google account to a groomday user: the stable account id plus a verified
// email address.
var defaultScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// GoogleProfile is the slice of the userinfo payload the login flow reads.
type GoogleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
}

// GoogleClient drives the authorization-code flow against Google.
type GoogleClient interface {
	// NewState mints an opaque state value bound to the caller's user agent.
	NewState(userAgent string) string
	// AuthCodeURL builds the consent-screen URL carrying the given state.
	AuthCodeURL(state string) string
	// Exchange trades the callback code for an access token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// Profile fetches the account profile the token grants access to.
	Profile(ctx context.Context, token *oauth2.Token) (GoogleProfile, error)
}

type googleClient struct {
	conf *oauth2.Config
}

// NewGoogleClient configures the Google authorization-code flow. Scopes are
// fixed to the userinfo grant; callers supply only credentials and the
// callback URL.
func NewGoogleClient(clientID, clientSecret, redirectURL string) GoogleClient {
	return &googleClient{conf: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       defaultScopes,
		Endpoint:     google.Endpoint,
	}}
}

func (g *googleClient) NewState(userAgent string) string {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return ""
	}
	raw := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(nonce), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func (g *googleClient) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

func (g *googleClient) Profile(ctx context.Context, token *oauth2.Token) (GoogleProfile, error) {
	resp, err := g.conf.Client(ctx, token).Get(userinfoEndpoint)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleProfile{}, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, fmt.Errorf("decode userinfo: %w", err)
	}
	return profile, nil
}
