package watsonx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/httpclient"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// ErrEmptyGeneration is returned when the model produces no results
var ErrEmptyGeneration = errors.New("text generation returned no results")

// GenerationParams controls the model's decoding behavior
type GenerationParams struct {
	DecodingMethod    string   `json:"decoding_method"`
	MaxNewTokens      int      `json:"max_new_tokens"`
	MinNewTokens      int      `json:"min_new_tokens"`
	StopSequences     []string `json:"stop_sequences"`
	RepetitionPenalty float64  `json:"repetition_penalty"`
}

// DefaultParams returns greedy decoding parameters for short-form output
func DefaultParams(maxNewTokens int) GenerationParams {
	return GenerationParams{
		DecodingMethod:    "greedy",
		MaxNewTokens:      maxNewTokens,
		MinNewTokens:      0,
		StopSequences:     []string{},
		RepetitionPenalty: 1,
	}
}

type generationRequest struct {
	Input      string           `json:"input"`
	Parameters GenerationParams `json:"parameters"`
	ModelID    string           `json:"model_id"`
	ProjectID  string           `json:"project_id"`
}

type generationResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

// Config holds watsonx client configuration
type Config struct {
	BaseURL    string
	APIVersion string
	ModelID    string
	ProjectID  string
}

// Client calls the watsonx text-generation endpoint
type Client struct {
	config       Config
	httpClient   *httpclient.Client
	tokenManager *TokenManager
	logger       ectologger.Logger
}

// NewClient creates a new watsonx client
func NewClient(config Config, httpClient *httpclient.Client, tokenManager *TokenManager, logger ectologger.Logger) *Client {
	return &Client{
		config:       config,
		httpClient:   httpClient,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Generate sends a fully composed prompt to the text-generation endpoint and
// returns the generated text.
func (c *Client) Generate(ctx context.Context, input string, params GenerationParams) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "WatsonxClient.Generate")
	defer span.End()

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain bearer token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/ml/v1/text/generation?version=%s", c.config.BaseURL, c.config.APIVersion)

	reqBody := generationRequest{
		Input:      input,
		Parameters: params,
		ModelID:    c.config.ModelID,
		ProjectID:  c.config.ProjectID,
	}

	resp, err := c.httpClient.PostJSON(ctx, endpoint, reqBody, map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("text generation failed with status %d: %s", resp.StatusCode, string(resp.Body))
	}

	var genResp generationResponse
	if err := json.Unmarshal(resp.Body, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	if len(genResp.Results) == 0 {
		return "", ErrEmptyGeneration
	}

	return genResp.Results[0].GeneratedText, nil
}
