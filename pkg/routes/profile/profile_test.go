package profile

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/stretchr/testify/assert"

	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
)

func TestMapFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "missing identity",
			err:      fmt.Errorf("%w: empty username", profile.ErrMissingIdentity),
			expected: http.StatusBadRequest,
		},
		{
			name:     "no posts",
			err:      fmt.Errorf("%w: twitter user %q", profile.ErrNoPosts, "jane"),
			expected: http.StatusBadGateway,
		},
		{
			name:     "webhook failure",
			err:      fmt.Errorf("twitter profile fetch failed: %w", fmt.Errorf("%w: status 503: upstream down", agents.ErrWebhookFailure)),
			expected: http.StatusBadGateway,
		},
		{
			name:     "malformed response",
			err:      fmt.Errorf("%w: expected a tweet array", agents.ErrMalformedResponse),
			expected: http.StatusBadGateway,
		},
		{
			name:     "unknown error",
			err:      errors.New("database unavailable"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapFetchError(tt.err)
			assert.Equal(t, tt.expected, httperror.GetStatusCode(mapped))
		})
	}
}

func TestMapFetchErrorPreservesWebhookDetail(t *testing.T) {
	err := fmt.Errorf("twitter profile fetch failed: %w", fmt.Errorf("%w: status 503: upstream down", agents.ErrWebhookFailure))

	mapped := mapFetchError(err)

	assert.Contains(t, mapped.Error(), "status 503")
	assert.Contains(t, mapped.Error(), "upstream down")
}
