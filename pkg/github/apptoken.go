package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devpulse-team/devpulse/pkg/config"
)

// tokenSource yields a bearer token for API requests
type tokenSource interface {
	token(ctx context.Context) (string, error)
}

// staticToken is a personal access token
type staticToken string

func (t staticToken) token(context.Context) (string, error) {
	return string(t), nil
}

// appTokenSource implements GitHub App auth: a short-lived RS256 JWT signed
// with the app private key is exchanged for an installation token, which is
// cached until shortly before expiry.
type appTokenSource struct {
	appID          string
	installationID string
	baseURL        string
	key            interface{}
	client         *http.Client

	mu      sync.Mutex
	cached  string
	expires time.Time
}

func newAppTokenSource(cfg *config.GitHubConfig, client *http.Client) (*appTokenSource, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.AppPrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parse app private key: %w", err)
	}

	return &appTokenSource{
		appID:          cfg.AppID,
		installationID: cfg.InstallationID,
		baseURL:        cfg.BaseURL,
		key:            key,
		client:         client,
	}, nil
}

func (s *appTokenSource) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Refresh a minute before the installation token expires
	if s.cached != "" && time.Now().Before(s.expires.Add(-time.Minute)) {
		return s.cached, nil
	}

	appJWT, err := s.signAppJWT()
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/app/installations/%s/access_tokens", s.baseURL, s.installationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("github app token exchange returned status %d", resp.StatusCode)
	}

	var body struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	s.cached = body.Token
	s.expires = body.ExpiresAt
	return s.cached, nil
}

func (s *appTokenSource) signAppJWT() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.appID,
		IssuedAt:  jwt.NewNumericDate(now.Add(-30 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.key)
}
