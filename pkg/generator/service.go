// Package generator orchestrates the content pipelines: style analysis,
// tweet/thread/LinkedIn/Instagram generation and image attachment.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/internal/repositories/socialaccount"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
	"github.com/yashwanth-3000/content--hub/pkg/watsonx"
)

const (
	analysisMaxTokens = 8000
	tweetMaxTokens    = 200
	tweetMinTokens    = 10
	threadMaxTokens   = 800
	linkedInMaxTokens = 1000
	linkedInMinTokens = 50
)

// TextGenerator is the model client the pipelines generate text with
type TextGenerator interface {
	Generate(ctx context.Context, input string, params watsonx.GenerationParams) (string, error)
}

// ContextAgent is the subset of the webhook client the pipelines use for
// external context, images and captions
type ContextAgent interface {
	AnalyzeURL(ctx context.Context, pageURL, question string) (string, error)
	AnalyzeYouTube(ctx context.Context, videoURL string) (string, error)
	GenerateImage(ctx context.Context, payloadKey, text string) (string, error)
	GenerateInstagramCaption(ctx context.Context, userAnalysis, postAbout string) (string, error)
}

// Service runs the generation pipelines
type Service struct {
	profiles *profile.Service
	accounts socialaccount.SocialAccountRepository
	agents   ContextAgent
	model    TextGenerator
	logger   ectologger.Logger
}

// NewService creates a new generation service
func NewService(
	profiles *profile.Service,
	accounts socialaccount.SocialAccountRepository,
	agents ContextAgent,
	model TextGenerator,
	logger ectologger.Logger,
) *Service {
	return &Service{
		profiles: profiles,
		accounts: accounts,
		agents:   agents,
		model:    model,
		logger:   logger,
	}
}

// AnalyzeStyle produces the free-text writing-style analysis for a profile.
// The result is cached on the account record so regeneration skips the model
// call.
func (s *Service) AnalyzeStyle(ctx context.Context, platform models.Platform, identity string) (*models.AnalyzeStyleResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "GeneratorService.AnalyzeStyle")
	defer span.End()

	switch platform {
	case models.PlatformTwitter:
		analysis, err := s.twitterStyleAnalysis(ctx, identity)
		if err != nil {
			return nil, err
		}
		return &models.AnalyzeStyleResponse{Username: identity, Analysis: analysis}, nil

	case models.PlatformLinkedIn:
		analysis, username, err := s.linkedInStyleAnalysis(ctx, identity)
		if err != nil {
			return nil, err
		}
		return &models.AnalyzeStyleResponse{Username: username, Analysis: analysis}, nil

	default:
		return nil, fmt.Errorf("%w: style analysis not supported for platform %q", profile.ErrMissingIdentity, platform)
	}
}

func (s *Service) twitterStyleAnalysis(ctx context.Context, username string) (string, error) {
	if cached := s.cachedAnalysis(ctx, models.PlatformTwitter, username); cached != "" {
		return cached, nil
	}

	tweets, _, err := s.profiles.FetchTweets(ctx, username)
	if err != nil {
		return "", err
	}

	return s.runStyleAnalysis(ctx, models.PlatformTwitter, username, tweets)
}

func (s *Service) linkedInStyleAnalysis(ctx context.Context, profileURL string) (string, string, error) {
	posts, username, _, err := s.profiles.FetchLinkedInPosts(ctx, profileURL)
	if err != nil {
		return "", "", err
	}

	if cached := s.cachedAnalysis(ctx, models.PlatformLinkedIn, username); cached != "" {
		return cached, username, nil
	}

	analysis, err := s.runStyleAnalysis(ctx, models.PlatformLinkedIn, username, posts)
	if err != nil {
		return "", "", err
	}
	return analysis, username, nil
}

func (s *Service) cachedAnalysis(ctx context.Context, platform models.Platform, username string) string {
	record, err := s.accounts.Get(ctx, platform, username)
	if err != nil || record == nil {
		return ""
	}
	return record.Content
}

func (s *Service) runStyleAnalysis(ctx context.Context, platform models.Platform, username string, posts any) (string, error) {
	data, err := json.Marshal(posts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile data: %w", err)
	}

	analysis, err := s.model.Generate(ctx, styleAnalysisPrompt(string(data)), watsonx.DefaultParams(analysisMaxTokens))
	if err != nil {
		return "", fmt.Errorf("style analysis failed: %w", err)
	}

	if err := s.accounts.UpdateContent(ctx, platform, username, analysis); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("failed to cache style analysis, continuing with generated analysis")
	}

	return analysis, nil
}

// externalContext resolves the optional URL or video context for a pipeline
func (s *Service) externalContext(ctx context.Context, source models.SourceType, sourceURL, topic string) (string, error) {
	switch source {
	case models.SourceTypeEvent:
		if sourceURL == "" {
			return "", fmt.Errorf("%w: source_url required for event context", profile.ErrMissingIdentity)
		}
		return s.agents.AnalyzeURL(ctx, sourceURL, topic)
	case models.SourceTypeYouTube:
		if sourceURL == "" {
			return "", fmt.Errorf("%w: source_url required for video context", profile.ErrMissingIdentity)
		}
		return s.agents.AnalyzeYouTube(ctx, sourceURL)
	default:
		return "", nil
	}
}

// attachImage generates an image for the text and returns (url, errMessage).
// Image failure never fails the pipeline once text exists.
func (s *Service) attachImage(ctx context.Context, payloadKey, text string) (string, string) {
	imageURL, err := s.agents.GenerateImage(ctx, payloadKey, text)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("image generation failed, returning text only")
		return "", err.Error()
	}
	return imageURL, ""
}

// GenerateTweet runs the single-tweet pipeline
func (s *Service) GenerateTweet(ctx context.Context, req models.GenerateTweetRequest) (*models.GenerateTweetResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "GeneratorService.GenerateTweet")
	defer span.End()

	analysis, err := s.twitterStyleAnalysis(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	extra, err := s.externalContext(ctx, req.SourceType, req.SourceURL, req.Topic)
	if err != nil {
		return nil, err
	}

	params := watsonx.DefaultParams(tweetMaxTokens)
	params.MinNewTokens = tweetMinTokens

	content, err := s.model.Generate(ctx, tweetPrompt(analysis, req.Topic, extra), params)
	if err != nil {
		return nil, fmt.Errorf("tweet generation failed: %w", err)
	}

	imageURL, imageErr := s.attachImage(ctx, "Tweet_text", content)

	return &models.GenerateTweetResponse{
		Content:    content,
		ImageURL:   imageURL,
		ImageError: imageErr,
	}, nil
}

// GenerateThread runs the seven-tweet thread pipeline
func (s *Service) GenerateThread(ctx context.Context, req models.GenerateThreadRequest) (*models.GenerateThreadResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "GeneratorService.GenerateThread")
	defer span.End()

	analysis, err := s.twitterStyleAnalysis(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	extra, err := s.externalContext(ctx, req.SourceType, req.SourceURL, req.Topic)
	if err != nil {
		return nil, err
	}

	text, err := s.model.Generate(ctx, threadPrompt(analysis, req.Topic, extra, req.SourceType), watsonx.DefaultParams(threadMaxTokens))
	if err != nil {
		return nil, fmt.Errorf("thread generation failed: %w", err)
	}

	tweets, err := ParseThread(text)
	if err != nil {
		return nil, err
	}

	return &models.GenerateThreadResponse{Tweets: tweets}, nil
}

// GenerateLinkedIn runs the LinkedIn post pipeline
func (s *Service) GenerateLinkedIn(ctx context.Context, req models.GenerateLinkedInRequest) (*models.GenerateLinkedInResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "GeneratorService.GenerateLinkedIn")
	defer span.End()

	posts, username, _, err := s.profiles.FetchLinkedInPosts(ctx, req.LinkedInURL)
	if err != nil {
		return nil, err
	}

	analysis := s.cachedAnalysis(ctx, models.PlatformLinkedIn, username)
	if analysis == "" {
		analysis, err = s.runStyleAnalysis(ctx, models.PlatformLinkedIn, username, posts)
		if err != nil {
			return nil, err
		}
	}

	extra, err := s.externalContext(ctx, req.SourceType, req.SourceURL, req.Topic)
	if err != nil {
		return nil, err
	}

	params := watsonx.DefaultParams(linkedInMaxTokens)
	params.MinNewTokens = linkedInMinTokens

	content, err := s.model.Generate(ctx, linkedInPrompt(analysis, req.Topic, extra), params)
	if err != nil {
		return nil, fmt.Errorf("linkedin post generation failed: %w", err)
	}

	imageURL, imageErr := s.attachImage(ctx, "Tweet_text", content)

	return &models.GenerateLinkedInResponse{
		Username:   username,
		Content:    content,
		ImageURL:   imageURL,
		ImageError: imageErr,
		Author:     profile.AuthorFromPosts(posts),
	}, nil
}

// GenerateInstagram runs the Instagram caption pipeline. The caption comes
// from the caption webhook seeded with the account's cached analysis.
func (s *Service) GenerateInstagram(ctx context.Context, req models.GenerateInstagramRequest) (*models.GenerateInstagramResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "GeneratorService.GenerateInstagram")
	defer span.End()

	analysis, _, err := s.profiles.FetchInstagramAnalysis(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	caption, err := s.agents.GenerateInstagramCaption(ctx, analysis.Response, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("instagram caption generation failed: %w", err)
	}

	imageURL, imageErr := s.attachImage(ctx, "post_text", caption)

	return &models.GenerateInstagramResponse{
		Caption:    caption,
		ImageURL:   imageURL,
		ImageError: imageErr,
	}, nil
}
