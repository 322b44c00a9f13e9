package watsonx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/httpclient"
	"github.com/yashwanth-3000/content--hub/pkg/redis"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var (
	// ErrTokenNotFound is returned when a cached token is not found
	ErrTokenNotFound = errors.New("cached token not found")

	// ErrTokenExchangeFailed is returned when the IAM token exchange fails
	ErrTokenExchangeFailed = errors.New("token exchange failed")
)

const (
	// DefaultTTLSeconds is the default cache TTL if the response carries no expiry
	DefaultTTLSeconds = 3600

	// DefaultSkewSeconds refreshes the token this many seconds before expiry
	DefaultSkewSeconds = 60

	// CacheKeyPrefix is the prefix for bearer token cache keys
	CacheKeyPrefix = "watsonx:token:"

	grantType = "urn:ibm:params:oauth:grant-type:apikey"
)

// CachedToken represents a cached IAM bearer token
type CachedToken struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// IsExpired checks if the token is expired (with skew)
func (t *CachedToken) IsExpired(skewSeconds int) bool {
	if t.ExpiresAt == 0 {
		return false // No expiry set
	}
	now := time.Now().Unix()
	return now >= (t.ExpiresAt - int64(skewSeconds))
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

// TokenManagerConfig holds token manager configuration
type TokenManagerConfig struct {
	TokenURL    string
	APIKey      string
	TTLSeconds  int
	SkewSeconds int
}

// TokenManager exchanges an IAM API key for a bearer token and caches the
// result in Redis until it is within the skew window of expiry.
type TokenManager struct {
	config      TokenManagerConfig
	httpClient  *httpclient.Client
	redisClient *redis.Client
	logger      ectologger.Logger
}

// NewTokenManager creates a new token manager
func NewTokenManager(config TokenManagerConfig, httpClient *httpclient.Client, redisClient *redis.Client, logger ectologger.Logger) *TokenManager {
	if config.TTLSeconds <= 0 {
		config.TTLSeconds = DefaultTTLSeconds
	}
	if config.SkewSeconds <= 0 {
		config.SkewSeconds = DefaultSkewSeconds
	}

	return &TokenManager{
		config:      config,
		httpClient:  httpClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetToken returns a valid bearer token, exchanging the API key only when no
// cached token exists or the cached one is stale.
func (m *TokenManager) GetToken(ctx context.Context) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "TokenManager.GetToken")
	defer span.End()

	cacheKey := m.cacheKey()
	cachedToken, err := m.getCachedToken(ctx, cacheKey)
	if err == nil && !cachedToken.IsExpired(m.config.SkewSeconds) {
		m.logger.WithContext(ctx).Debug("Using cached bearer token")
		return cachedToken.Token, nil
	}

	if err == nil {
		m.logger.WithContext(ctx).Debug("Cached bearer token expired, refreshing")
	}

	newToken, err := m.exchangeAPIKey(ctx)
	if err != nil {
		return "", err
	}

	if cacheErr := m.cacheToken(ctx, cacheKey, newToken); cacheErr != nil {
		m.logger.WithContext(ctx).WithError(cacheErr).Warn("Failed to cache bearer token")
	}

	return newToken.Token, nil
}

// InvalidateToken removes the cached token
func (m *TokenManager) InvalidateToken(ctx context.Context) error {
	ctx, span := tracing.StartSpan(ctx, "TokenManager.InvalidateToken")
	defer span.End()

	return m.redisClient.Del(ctx, m.cacheKey())
}

func (m *TokenManager) exchangeAPIKey(ctx context.Context) (*CachedToken, error) {
	ctx, span := tracing.StartSpan(ctx, "TokenManager.exchangeAPIKey")
	defer span.End()

	form := url.Values{}
	form.Set("grant_type", grantType)
	form.Set("apikey", m.config.APIKey)

	resp, err := m.httpClient.PostForm(ctx, m.config.TokenURL, form, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTokenExchangeFailed, resp.StatusCode, string(resp.Body))
	}

	var tokenResp iamTokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResp); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %v", ErrTokenExchangeFailed, err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("%w: response contained no access_token", ErrTokenExchangeFailed)
	}

	token := &CachedToken{
		Token:     tokenResp.AccessToken,
		TokenType: tokenResp.TokenType,
		CreatedAt: time.Now().Unix(),
	}

	if tokenResp.Expiration > 0 {
		token.ExpiresAt = tokenResp.Expiration
	} else if tokenResp.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Unix() + tokenResp.ExpiresIn
	}

	m.logger.WithContext(ctx).Info("Successfully obtained bearer token")
	return token, nil
}

func (m *TokenManager) getCachedToken(ctx context.Context, key string) (*CachedToken, error) {
	data, err := m.redisClient.Get(ctx, key)
	if err != nil {
		return nil, ErrTokenNotFound
	}

	var token CachedToken
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached token: %w", err)
	}

	return &token, nil
}

func (m *TokenManager) cacheToken(ctx context.Context, key string, token *CachedToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	return m.redisClient.Set(ctx, key, string(data), m.calculateTTL(token))
}

func (m *TokenManager) calculateTTL(token *CachedToken) time.Duration {
	if token.ExpiresAt > 0 {
		remaining := token.ExpiresAt - time.Now().Unix() - int64(m.config.SkewSeconds)
		if remaining > 0 {
			return time.Duration(remaining) * time.Second
		}
	}

	return time.Duration(m.config.TTLSeconds) * time.Second
}

func (m *TokenManager) cacheKey() string {
	return CacheKeyPrefix + "ibm"
}
