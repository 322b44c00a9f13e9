package analytics

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

func TestMapAnalyticsError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "missing identity",
			err:      profile.ErrMissingIdentity,
			expected: http.StatusBadRequest,
		},
		{
			name:     "no posts",
			err:      profile.ErrNoPosts,
			expected: http.StatusBadGateway,
		},
		{
			name:     "webhook failure",
			err:      fmt.Errorf("linkedin profile fetch failed: %w", fmt.Errorf("%w: status 504: timeout", agents.ErrWebhookFailure)),
			expected: http.StatusBadGateway,
		},
		{
			name:     "malformed response",
			err:      agents.ErrMalformedResponse,
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
			mapped := mapAnalyticsError(tt.err)
			assert.Equal(t, tt.expected, httperror.GetStatusCode(mapped))
		})
	}
}
