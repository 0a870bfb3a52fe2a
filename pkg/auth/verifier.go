// Package auth verifies bearer tokens against the external identity service.
// The service owns all credential checking; this package only asks it who a
// token belongs to.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-api/pkg/global"
)

// ErrInvalidToken is returned for missing, malformed, expired or otherwise
// rejected credentials. Handlers map it to 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity the verifier vouches for.
type Claims struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Verifier validates a bearer token and returns the claims it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// HTTPVerifier talks the Identity Toolkit accounts:lookup protocol: POST the
// ID token, read the account record back.
type HTTPVerifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPVerifier() *HTTPVerifier {
	return &HTTPVerifier{
		endpoint: global.GetEnvOrDefault("IDENTITY_VERIFIER_URL",
			"https://identitytoolkit.googleapis.com/v1/accounts:lookup"),
		apiKey: global.GetEnvOrDefault("IDENTITY_API_KEY", ""),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
	} `json:"users"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	payload, err := json.Marshal(lookupRequest{IDToken: token})
	if err != nil {
		return nil, err
	}

	url := v.endpoint
	if v.apiKey != "" {
		url = fmt.Sprintf("%s?key=%s", v.endpoint, v.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity verifier unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity verifier returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("identity verifier response: %w", err)
	}
	if len(body.Users) == 0 || body.Users[0].LocalID == "" {
		return nil, ErrInvalidToken
	}

	user := body.Users[0]
	return &Claims{
		UID:         user.LocalID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}, nil
}
