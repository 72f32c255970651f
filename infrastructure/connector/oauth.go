package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

// OAuthTokenService performs the password grant against <base>oauth/token
type OAuthTokenService struct {
	client *http.Client
	host   entities.RestAPIHost
}

var _ interfaces.TokenService = (*OAuthTokenService)(nil)

// NewOAuthTokenService returns the token service of host
func NewOAuthTokenService(client *http.Client, host entities.RestAPIHost) *OAuthTokenService {
	if client == nil {
		client = http.DefaultClient
	}
	return &OAuthTokenService{client: client, host: host}
}

// Token exchanges user credentials for an access token
func (s *OAuthTokenService) Token(ctx context.Context, user, password, grantType string) (entities.AccessToken, error) {
	var token entities.AccessToken

	form := url.Values{}
	form.Set("grant_type", grantType)
	form.Set("username", user)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(s.host.BaseURL, "oauth/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return token, s.fail(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(s.host.ClientID, s.host.ClientSecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return token, s.fail(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return token, s.fail(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return token, s.fail(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.Unmarshal(body, &token); err != nil {
		return token, s.fail(fmt.Errorf("invalid token response: %w", err))
	}
	if token.AccessToken == "" {
		return token, s.fail(fmt.Errorf("token response has no access_token"))
	}
	return token, nil
}

func (s *OAuthTokenService) fail(err error) error {
	return &entities.AuthenticationError{BaseURL: s.host.BaseURL, Cause: err}
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
