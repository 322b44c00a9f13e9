package agents

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/httpclient"
	"github.com/yashwanth-3000/content--hub/pkg/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logging.NewNop()
	client := NewClient(Config{
		TwitterProfileURL:   server.URL,
		LinkedInProfileURL:  server.URL,
		URLAnalysisURL:      server.URL,
		YouTubeAnalysisURL:  server.URL,
		ImageGenerationURL:  server.URL,
		InstagramCaptionURL: server.URL,
	}, httpclient.NewClient(httpclient.DefaultConfig(), logger), logger)

	return client, server
}

func TestFetchTwitterProfile(t *testing.T) {
	t.Run("bare tweet array", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "jane", body["twitter_name"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"created_at": "2025-01-01T00:00:00Z", "text": "hello"}]`))
		})

		_, tweets, err := client.FetchTwitterProfile(context.Background(), "jane")
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, "hello", tweets[0].Text)
	})

	t.Run("enveloped tweet array", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": [{"text": "wrapped"}]}`))
		})

		payload, tweets, err := client.FetchTwitterProfile(context.Background(), "jane")
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, "wrapped", tweets[0].Text)
		assert.JSONEq(t, `[{"text": "wrapped"}]`, string(payload))
	})

	t.Run("malformed payload", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected": true}`))
		})

		_, _, err := client.FetchTwitterProfile(context.Background(), "jane")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("upstream down"))
		})

		_, _, err := client.FetchTwitterProfile(context.Background(), "jane")
		assert.ErrorIs(t, err, ErrWebhookFailure)
		assert.Contains(t, err.Error(), "status 503")
		assert.Contains(t, err.Error(), "upstream down")
	})
}

func TestFetchInstagramAnalysis(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "jane.gram", body["instagram_name"])

			w.Write([]byte(`{"response": {"heading": "Style", "response": "casual and visual"}}`))
		})

		analysis, err := client.FetchInstagramAnalysis(context.Background(), "jane.gram")
		require.NoError(t, err)
		assert.Equal(t, "Style", analysis.Heading)
		assert.Equal(t, "casual and visual", analysis.Response)
	})

	t.Run("missing response text", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": {"heading": "Style"}}`))
		})

		_, err := client.FetchInstagramAnalysis(context.Background(), "jane.gram")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestGenerateImage(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "double wrapped fragment",
			response: `{"response": {"response": "<img src=\"https://cdn.example.com/a.png\" alt=\"\">"}}`,
			expected: "https://cdn.example.com/a.png",
		},
		{
			name:     "single wrapped fragment",
			response: `{"response": "<img src=\"https://cdn.example.com/b.png\">"}`,
			expected: "https://cdn.example.com/b.png",
		},
		{
			name:     "bare string fragment",
			response: `"<img src=\"https://cdn.example.com/c.png\">"`,
			expected: "https://cdn.example.com/c.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "a lovely tweet", body["Tweet_text"])

				w.Write([]byte(tt.response))
			})

			url, err := client.GenerateImage(context.Background(), "Tweet_text", "a lovely tweet")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}

	t.Run("instagram payload key", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "caption text", body["post_text"])

			w.Write([]byte(`{"response": "<img src=\"https://cdn.example.com/d.png\">"}`))
		})

		url, err := client.GenerateImage(context.Background(), "post_text", "caption text")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/d.png", url)
	})

	t.Run("missing src attribute", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response": "no image markup here"}`))
		})

		_, err := client.GenerateImage(context.Background(), "Tweet_text", "text")
		assert.ErrorIs(t, err, ErrImageExtraction)
	})
}

func TestGenerateInstagramCaption(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "prior analysis", body["user_analysis"])
		assert.Equal(t, "my new product", body["post_about"])

		w.Write([]byte(`{"response": {"response": "a shiny caption"}}`))
	})

	caption, err := client.GenerateInstagramCaption(context.Background(), "prior analysis", "my new product")
	require.NoError(t, err)
	assert.Equal(t, "a shiny caption", caption)
}

func TestAnalyzeURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com/event", body["user_URL"])
		assert.Equal(t, "what happened", body["user_question"])

		w.Write([]byte(`{"response": "the event context"}`))
	})

	text, err := client.AnalyzeURL(context.Background(), "https://example.com/event", "what happened")
	require.NoError(t, err)
	assert.Equal(t, "the event context", text)
}
