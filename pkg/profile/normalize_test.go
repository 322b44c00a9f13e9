package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

func strPtr(s string) *string {
	return &s
}

func TestExtractLinkedInUsername(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain profile url",
			url:      "https://www.linkedin.com/in/satyanadella",
			expected: "satyanadella",
		},
		{
			name:     "trailing slash",
			url:      "https://www.linkedin.com/in/satyanadella/",
			expected: "satyanadella",
		},
		{
			name:     "query params stripped",
			url:      "https://linkedin.com/in/jane-doe-123?originalSubdomain=us",
			expected: "jane-doe-123",
		},
		{
			name:     "fragment stripped",
			url:      "https://linkedin.com/in/jane#section",
			expected: "jane",
		},
		{
			name:     "case insensitive host",
			url:      "https://www.LinkedIn.com/IN/SomeUser",
			expected: "SomeUser",
		},
		{
			name:    "not a linkedin url",
			url:     "https://twitter.com/someuser",
			wantErr: true,
		},
		{
			name:    "bare username",
			url:     "someuser",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := ExtractLinkedInUsername(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, username)
		})
	}
}

func TestFilterOriginalTweets(t *testing.T) {
	tweets := []models.Tweet{
		{Text: "RT @someone: look at this"},
		{Text: "my own thoughts"},
		{Text: "another original"},
		{Text: "RT @other: more reposts"},
	}

	original := FilterOriginalTweets(tweets)

	require.Len(t, original, 2)
	assert.Equal(t, "my own thoughts", original[0].Text)
	assert.Equal(t, "another original", original[1].Text)
}

func TestFilterOriginalTweetsKeepsMidTextRT(t *testing.T) {
	tweets := []models.Tweet{
		{Text: "I love the RT @mention pattern"},
	}

	assert.Len(t, FilterOriginalTweets(tweets), 1)
}

func TestIsRepost(t *testing.T) {
	tests := []struct {
		name     string
		post     models.LinkedInPost
		expected bool
	}{
		{
			name:     "no header",
			post:     models.LinkedInPost{},
			expected: false,
		},
		{
			name:     "header without reposted",
			post:     models.LinkedInPost{HeaderText: strPtr("Jane Doe celebrates this")},
			expected: false,
		},
		{
			name:     "reposted header",
			post:     models.LinkedInPost{HeaderText: strPtr("Jane Doe reposted this")},
			expected: true,
		},
		{
			name:     "case insensitive",
			post:     models.LinkedInPost{HeaderText: strPtr("Jane Doe REPOSTED this")},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRepost(tt.post))
		})
	}
}

func TestFilterOriginalLinkedInPosts(t *testing.T) {
	posts := []models.LinkedInPost{
		{Commentary: "original one"},
		{Commentary: "a repost", HeaderText: strPtr("someone reposted this")},
		{Commentary: "original two", HeaderText: strPtr("someone celebrates this")},
	}

	original := FilterOriginalLinkedInPosts(posts)

	require.Len(t, original, 2)
	assert.Equal(t, "original one", original[0].Commentary)
	assert.Equal(t, "original two", original[1].Commentary)
}

func TestParseLinkedInEnvelope(t *testing.T) {
	t.Run("bare post array", func(t *testing.T) {
		raw := json.RawMessage(`[{"activity_id": "1", "commentary": "hello"}]`)

		posts, username, err := ParseLinkedInEnvelope(raw, "jane")
		require.NoError(t, err)
		assert.Equal(t, "jane", username)
		require.Len(t, posts, 1)
		assert.Equal(t, "hello", posts[0].Commentary)
	})

	t.Run("nested under username key", func(t *testing.T) {
		raw := json.RawMessage(`{"jane": {"posts": [{"activity_id": "1", "commentary": "hi"}]}}`)

		posts, username, err := ParseLinkedInEnvelope(raw, "jane")
		require.NoError(t, err)
		assert.Equal(t, "jane", username)
		require.Len(t, posts, 1)
	})

	t.Run("response envelope wrapping account map", func(t *testing.T) {
		raw := json.RawMessage(`{"response": {"jane": {"posts": [{"activity_id": "1"}]}}}`)

		posts, username, err := ParseLinkedInEnvelope(raw, "jane")
		require.NoError(t, err)
		assert.Equal(t, "jane", username)
		require.Len(t, posts, 1)
	})

	t.Run("falls back to first key when username differs", func(t *testing.T) {
		raw := json.RawMessage(`{"jane-doe-123": {"posts": [{"activity_id": "1"}]}}`)

		posts, username, err := ParseLinkedInEnvelope(raw, "janedoe")
		require.NoError(t, err)
		assert.Equal(t, "jane-doe-123", username)
		require.Len(t, posts, 1)
	})

	t.Run("empty post list", func(t *testing.T) {
		raw := json.RawMessage(`{"jane": {"posts": []}}`)

		_, _, err := ParseLinkedInEnvelope(raw, "jane")
		assert.ErrorIs(t, err, ErrNoPosts)
	})

	t.Run("empty bare array", func(t *testing.T) {
		raw := json.RawMessage(`[]`)

		_, _, err := ParseLinkedInEnvelope(raw, "jane")
		assert.ErrorIs(t, err, ErrNoPosts)
	})

	t.Run("unrecognized shape", func(t *testing.T) {
		raw := json.RawMessage(`"just a string"`)

		_, _, err := ParseLinkedInEnvelope(raw, "jane")
		assert.Error(t, err)
	})
}

func TestAuthorFromPosts(t *testing.T) {
	t.Run("personal profile", func(t *testing.T) {
		posts := []models.LinkedInPost{
			{
				HeaderText: strPtr("Jane reposted this"),
				Author:     &models.LinkedInAuthor{FirstName: "Wrong", LastName: "Person"},
			},
			{
				Author: &models.LinkedInAuthor{
					ProfileType:    "personal",
					FirstName:      "Jane",
					LastName:       "Doe",
					SubTitle:       "Engineer",
					ProfilePicture: "https://example.com/jane.jpg",
				},
			},
		}

		author := AuthorFromPosts(posts)
		require.NotNil(t, author)
		assert.Equal(t, "Jane Doe", author.Name)
		assert.Equal(t, "Engineer", author.Bio)
		assert.Equal(t, "https://example.com/jane.jpg", author.Picture)
	})

	t.Run("company page", func(t *testing.T) {
		posts := []models.LinkedInPost{
			{
				Author: &models.LinkedInAuthor{
					ProfileType: "company",
					Name:        "Acme Corp",
					SubTitle:    "We make anvils",
					LogoURL:     "https://example.com/acme.png",
				},
			},
		}

		author := AuthorFromPosts(posts)
		require.NotNil(t, author)
		assert.Equal(t, "Acme Corp", author.Name)
		assert.Equal(t, "https://example.com/acme.png", author.Picture)
	})

	t.Run("company falls back to universal name", func(t *testing.T) {
		posts := []models.LinkedInPost{
			{
				Author: &models.LinkedInAuthor{
					ProfileType:   "company",
					UniversalName: "acme-corp",
				},
			},
		}

		author := AuthorFromPosts(posts)
		require.NotNil(t, author)
		assert.Equal(t, "acme-corp", author.Name)
	})

	t.Run("no usable post", func(t *testing.T) {
		posts := []models.LinkedInPost{
			{HeaderText: strPtr("someone reposted this"), Author: &models.LinkedInAuthor{FirstName: "A"}},
			{Commentary: "no author"},
		}

		assert.Nil(t, AuthorFromPosts(posts))
	})
}
