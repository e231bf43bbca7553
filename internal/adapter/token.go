package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenScope        = "https://www.googleapis.com/auth/earthengine https://www.googleapis.com/auth/cloud-platform"
	jwtBearerGrant    = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime = time.Hour
	tokenExpiryLeeway = time.Minute
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// tokenSource exchanges signed service-account assertions for OAuth access
// tokens and caches each token until shortly before it expires.
type tokenSource struct {
	account *ServiceAccount
	client  *utils.HTTPClient
	now     func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(account *ServiceAccount, client *utils.HTTPClient) *tokenSource {
	return &tokenSource{account: account, client: client, now: time.Now}
}

// Token returns a valid access token, refreshing it when needed. Concurrent
// callers share one refresh.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiry.Add(-tokenExpiryLeeway)) {
		return ts.token, nil
	}

	assertion, err := ts.assertion()
	if err != nil {
		return "", err
	}

	resp, err := ts.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		Post(ts.account.TokenURI)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	ts.token = tr.AccessToken
	ts.expiry = ts.now().Add(time.Duration(tr.ExpiresIn) * time.Second)

	return ts.token, nil
}

func (ts *tokenSource) assertion() (string, error) {
	now := ts.now()

	// aud must be a plain string for the token endpoint, not an array.
	claims := jwt.MapClaims{
		"iss":   ts.account.ClientEmail,
		"scope": tokenScope,
		"aud":   ts.account.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if ts.account.PrivateKeyID != "" {
		token.Header["kid"] = ts.account.PrivateKeyID
	}

	signed, err := token.SignedString(ts.account.key)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}
	return signed, nil
}
