package watsonx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedTokenIsExpired(t *testing.T) {
	now := time.Now().Unix()

	tests := []struct {
		name     string
		token    CachedToken
		skew     int
		expected bool
	}{
		{
			name:     "no expiry never expires",
			token:    CachedToken{Token: "abc"},
			skew:     60,
			expected: false,
		},
		{
			name:     "well before expiry",
			token:    CachedToken{Token: "abc", ExpiresAt: now + 3600},
			skew:     60,
			expected: false,
		},
		{
			name:     "inside skew window",
			token:    CachedToken{Token: "abc", ExpiresAt: now + 30},
			skew:     60,
			expected: true,
		},
		{
			name:     "already expired",
			token:    CachedToken{Token: "abc", ExpiresAt: now - 10},
			skew:     60,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsExpired(tt.skew))
		})
	}
}

func TestCalculateTTL(t *testing.T) {
	manager := &TokenManager{config: TokenManagerConfig{TTLSeconds: 3600, SkewSeconds: 60}}

	t.Run("uses remaining lifetime minus skew", func(t *testing.T) {
		token := &CachedToken{ExpiresAt: time.Now().Unix() + 1000}

		ttl := manager.calculateTTL(token)
		assert.InDelta(t, float64(940*time.Second), float64(ttl), float64(2*time.Second))
	})

	t.Run("falls back to configured TTL when expiry is in the past", func(t *testing.T) {
		token := &CachedToken{ExpiresAt: time.Now().Unix() - 10}

		assert.Equal(t, 3600*time.Second, manager.calculateTTL(token))
	})

	t.Run("falls back to configured TTL without expiry", func(t *testing.T) {
		assert.Equal(t, 3600*time.Second, manager.calculateTTL(&CachedToken{}))
	})
}

func TestNewTokenManagerDefaults(t *testing.T) {
	manager := NewTokenManager(TokenManagerConfig{TokenURL: "https://iam.example.com"}, nil, nil, nil)

	assert.Equal(t, DefaultTTLSeconds, manager.config.TTLSeconds)
	assert.Equal(t, DefaultSkewSeconds, manager.config.SkewSeconds)
}
