package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the Google userinfo payload the login
// flow needs.
type GoogleProfile struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleService drives the Google OAuth2 login flow for SSO sign-in.
type GoogleService interface {
	// LoginURL returns the consent-screen URL plus the random state that
	// must be echoed back on the callback.
	LoginURL(userAgent string) (url string, state string)
	// Authenticate exchanges the callback code and fetches the profile.
	Authenticate(ctx context.Context, code string) (GoogleProfile, error)
}

type googleService struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleService) LoginURL(userAgent string) (string, string) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", ""
	}
	raw := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	state := base64.URLEncoding.EncodeToString([]byte(raw))
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline), state
}

func (g *googleService) Authenticate(ctx context.Context, code string) (GoogleProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("exchange oauth code: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Get(userinfoEndpoint)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, fmt.Errorf("decode google userinfo: %w", err)
	}
	return profile, nil
}
