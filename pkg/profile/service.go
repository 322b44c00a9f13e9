package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/internal/repositories/socialaccount"
	"github.com/yashwanth-3000/content--hub/internal/repositories/usernameanalysis"
	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// AgentClient is the subset of the webhook client the fetch service uses
type AgentClient interface {
	FetchTwitterProfile(ctx context.Context, username string) (json.RawMessage, []models.Tweet, error)
	FetchInstagramAnalysis(ctx context.Context, username string) (*models.AnalysisContent, error)
	FetchLinkedInProfile(ctx context.Context, profileURL string) (json.RawMessage, error)
}

// Service resolves profiles through the store-first fetch flow: cached rows
// are served as-is, misses hit the provider webhook and are written back.
type Service struct {
	accounts socialaccount.SocialAccountRepository
	analyses usernameanalysis.UsernameAnalysisRepository
	agents   AgentClient
	logger   ectologger.Logger
}

// NewService creates a new profile fetch service
func NewService(
	accounts socialaccount.SocialAccountRepository,
	analyses usernameanalysis.UsernameAnalysisRepository,
	agentClient AgentClient,
	logger ectologger.Logger,
) *Service {
	return &Service{
		accounts: accounts,
		analyses: analyses,
		agents:   agentClient,
		logger:   logger,
	}
}

// FetchProfile resolves an identity on a platform into normalized posts
func (s *Service) FetchProfile(ctx context.Context, platform models.Platform, identity string) (*models.FetchProfileResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "ProfileService.FetchProfile")
	defer span.End()

	switch platform {
	case models.PlatformTwitter:
		tweets, cached, err := s.FetchTweets(ctx, identity)
		if err != nil {
			return nil, err
		}
		return &models.FetchProfileResponse{
			Username: identity,
			Cached:   cached,
			Posts:    FilterOriginalTweets(tweets),
		}, nil

	case models.PlatformLinkedIn:
		posts, username, cached, err := s.FetchLinkedInPosts(ctx, identity)
		if err != nil {
			return nil, err
		}
		return &models.FetchProfileResponse{
			Username: username,
			Cached:   cached,
			Posts:    FilterOriginalLinkedInPosts(posts),
			Author:   AuthorFromPosts(posts),
		}, nil

	case models.PlatformInstagram:
		analysis, cached, err := s.FetchInstagramAnalysis(ctx, identity)
		if err != nil {
			return nil, err
		}
		return &models.FetchProfileResponse{
			Username: identity,
			Cached:   cached,
			Posts:    analysis,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrMissingIdentity, platform)
	}
}

// FetchTweets returns a user's tweets, serving the cached payload when one
// exists. The bool reports whether the cache was hit.
func (s *Service) FetchTweets(ctx context.Context, username string) ([]models.Tweet, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "ProfileService.FetchTweets")
	defer span.End()

	if username == "" {
		return nil, false, ErrMissingIdentity
	}

	record, err := s.accounts.Get(ctx, models.PlatformTwitter, username)
	if err != nil {
		return nil, false, err
	}
	if record != nil {
		tweets, err := decodeTweets(record.RawContent)
		if err != nil {
			return nil, false, err
		}
		return tweets, true, nil
	}

	payload, tweets, err := s.agents.FetchTwitterProfile(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if len(tweets) == 0 {
		return nil, false, fmt.Errorf("%w: twitter user %q", ErrNoPosts, username)
	}

	if _, err := s.accounts.Upsert(ctx, models.PlatformTwitter, username, payload); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("failed to cache twitter profile, continuing with fetched data")
	}

	return tweets, false, nil
}

// FetchLinkedInPosts returns a profile's posts given its URL, serving the
// cached payload when one exists. Returns the resolved username alongside.
func (s *Service) FetchLinkedInPosts(ctx context.Context, profileURL string) ([]models.LinkedInPost, string, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "ProfileService.FetchLinkedInPosts")
	defer span.End()

	username, err := ExtractLinkedInUsername(profileURL)
	if err != nil {
		return nil, "", false, err
	}

	record, err := s.accounts.Get(ctx, models.PlatformLinkedIn, username)
	if err != nil {
		return nil, "", false, err
	}
	if record != nil {
		posts, resolved, err := ParseLinkedInEnvelope(record.RawContent, username)
		if err != nil {
			return nil, "", false, err
		}
		return posts, resolved, true, nil
	}

	payload, err := s.agents.FetchLinkedInProfile(ctx, profileURL)
	if err != nil {
		return nil, "", false, err
	}

	posts, resolved, err := ParseLinkedInEnvelope(payload, username)
	if err != nil {
		return nil, "", false, err
	}

	if _, err := s.accounts.Upsert(ctx, models.PlatformLinkedIn, resolved, payload); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("failed to cache linkedin profile, continuing with fetched data")
	}

	return posts, resolved, false, nil
}

// FetchInstagramAnalysis returns the {heading, response} analysis for an
// Instagram account, serving the cached row when one exists.
func (s *Service) FetchInstagramAnalysis(ctx context.Context, username string) (*models.AnalysisContent, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "ProfileService.FetchInstagramAnalysis")
	defer span.End()

	if username == "" {
		return nil, false, ErrMissingIdentity
	}

	record, err := s.analyses.Get(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if record != nil {
		content, err := record.ParseContent()
		if err != nil {
			return nil, false, fmt.Errorf("corrupt cached analysis for %q: %w", username, err)
		}
		return content, true, nil
	}

	analysis, err := s.agents.FetchInstagramAnalysis(ctx, username)
	if err != nil {
		return nil, false, err
	}

	if _, err := s.analyses.Upsert(ctx, username, *analysis); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("failed to cache instagram analysis, continuing with fetched data")
	}

	return analysis, false, nil
}

func decodeTweets(raw json.RawMessage) ([]models.Tweet, error) {
	payload := agents.UnwrapEnvelope(raw)
	var tweets []models.Tweet
	if err := json.Unmarshal(payload, &tweets); err != nil {
		return nil, fmt.Errorf("%w: corrupt cached tweet payload: %v", agents.ErrMalformedResponse, err)
	}
	return tweets, nil
}
