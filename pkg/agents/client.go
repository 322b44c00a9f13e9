// Package agents wraps the external agent webhooks: profile scraping,
// URL/video analysis, caption generation and image generation.
package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/httpclient"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

var (
	// ErrWebhookFailure is returned when a webhook responds with a non-2xx status
	ErrWebhookFailure = errors.New("webhook request failed")

	// ErrMalformedResponse is returned when a webhook payload is missing an expected key
	ErrMalformedResponse = errors.New("malformed webhook response")

	// ErrImageExtraction is returned when no src attribute can be found in the image payload
	ErrImageExtraction = errors.New("could not extract image URL from response")
)

// imgSrcPattern extracts the src URL from the HTML fragment the image webhook returns
var imgSrcPattern = regexp.MustCompile(`src="([^"]+)"`)

// Config holds the webhook endpoint URLs
type Config struct {
	TwitterProfileURL   string
	LinkedInProfileURL  string
	URLAnalysisURL      string
	YouTubeAnalysisURL  string
	ImageGenerationURL  string
	InstagramCaptionURL string
}

// Client calls the agent webhooks
type Client struct {
	config     Config
	httpClient *httpclient.Client
	logger     ectologger.Logger
}

// NewClient creates a new agent webhook client
func NewClient(config Config, httpClient *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	resp, err := c.httpClient.PostJSON(ctx, url, payload, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d: %s", ErrWebhookFailure, resp.StatusCode, string(resp.Body))
	}
	return resp.Body, nil
}

// FetchTwitterProfile fetches a user's recent tweets. The provider may wrap
// the tweet array in a response envelope.
func (c *Client) FetchTwitterProfile(ctx context.Context, username string) (json.RawMessage, []models.Tweet, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.FetchTwitterProfile")
	defer span.End()

	body, err := c.post(ctx, c.config.TwitterProfileURL, map[string]string{"twitter_name": username})
	if err != nil {
		return nil, nil, fmt.Errorf("twitter profile fetch failed: %w", err)
	}

	payload := UnwrapEnvelope(body)

	var tweets []models.Tweet
	if err := json.Unmarshal(payload, &tweets); err != nil {
		return nil, nil, fmt.Errorf("%w: expected a tweet array: %v", ErrMalformedResponse, err)
	}

	return payload, tweets, nil
}

// FetchInstagramAnalysis fetches the lightweight {heading, response} analysis
// for an Instagram account.
func (c *Client) FetchInstagramAnalysis(ctx context.Context, username string) (*models.AnalysisContent, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.FetchInstagramAnalysis")
	defer span.End()

	body, err := c.post(ctx, c.config.TwitterProfileURL, map[string]string{"instagram_name": username})
	if err != nil {
		return nil, fmt.Errorf("instagram account analysis failed: %w", err)
	}

	var envelope struct {
		Response models.AnalysisContent `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Response.Response == "" {
		return nil, fmt.Errorf("%w: missing analysis response", ErrMalformedResponse)
	}

	return &envelope.Response, nil
}

// FetchLinkedInProfile fetches a LinkedIn profile payload. The full response
// is returned so it can be cached verbatim; the account data is nested under
// the resolved username key.
func (c *Client) FetchLinkedInProfile(ctx context.Context, profileURL string) (json.RawMessage, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.FetchLinkedInProfile")
	defer span.End()

	body, err := c.post(ctx, c.config.LinkedInProfileURL, map[string]string{"LinkedIn_url": profileURL})
	if err != nil {
		return nil, fmt.Errorf("linkedin profile fetch failed: %w", err)
	}

	return body, nil
}

// AnalyzeURL asks the analysis webhook about an event or article page and
// returns the free-text context.
func (c *Client) AnalyzeURL(ctx context.Context, pageURL, question string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.AnalyzeURL")
	defer span.End()

	body, err := c.post(ctx, c.config.URLAnalysisURL, map[string]string{
		"user_URL":      pageURL,
		"user_question": question,
	})
	if err != nil {
		return "", fmt.Errorf("url analysis failed: %w", err)
	}

	return ExtractText(body), nil
}

// AnalyzeYouTube asks the video analysis webhook about a YouTube URL
func (c *Client) AnalyzeYouTube(ctx context.Context, videoURL string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.AnalyzeYouTube")
	defer span.End()

	body, err := c.post(ctx, c.config.YouTubeAnalysisURL, map[string]string{"yt_url": videoURL})
	if err != nil {
		return "", fmt.Errorf("youtube analysis failed: %w", err)
	}

	return ExtractText(body), nil
}

// GenerateImage sends post text to the image webhook and extracts the image
// URL from the HTML fragment in its response. The payload key differs by
// flow: Tweet_text for tweets and LinkedIn posts, post_text for Instagram.
func (c *Client) GenerateImage(ctx context.Context, payloadKey, text string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.GenerateImage")
	defer span.End()

	body, err := c.post(ctx, c.config.ImageGenerationURL, map[string]string{payloadKey: text})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	fragment := ExtractText(body)
	if fragment == "" {
		return "", fmt.Errorf("%w: empty response", ErrImageExtraction)
	}

	match := imgSrcPattern.FindStringSubmatch(fragment)
	if len(match) < 2 {
		return "", ErrImageExtraction
	}

	return match[1], nil
}

// GenerateInstagramCaption asks the caption webhook for a caption based on a
// prior account analysis and the topic of the post.
func (c *Client) GenerateInstagramCaption(ctx context.Context, userAnalysis, postAbout string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "AgentClient.GenerateInstagramCaption")
	defer span.End()

	body, err := c.post(ctx, c.config.InstagramCaptionURL, map[string]string{
		"user_analysis": userAnalysis,
		"post_about":    postAbout,
	})
	if err != nil {
		return "", fmt.Errorf("caption generation failed: %w", err)
	}

	caption := ExtractText(body)
	if caption == "" {
		return "", fmt.Errorf("%w: missing caption text", ErrMalformedResponse)
	}

	return caption, nil
}
