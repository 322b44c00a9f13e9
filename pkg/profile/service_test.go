package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/logging"
	"github.com/yashwanth-3000/content--hub/pkg/models"
)

type fakeAccountRepo struct {
	records    map[string]*models.SocialAccountRecord
	upserts    int
	failUpsert bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{records: map[string]*models.SocialAccountRecord{}}
}

func accountKey(platform models.Platform, username string) string {
	return string(platform) + "/" + username
}

func (f *fakeAccountRepo) Get(_ context.Context, platform models.Platform, username string) (*models.SocialAccountRecord, error) {
	return f.records[accountKey(platform, username)], nil
}

func (f *fakeAccountRepo) Upsert(_ context.Context, platform models.Platform, username string, rawContent json.RawMessage) (*models.SocialAccountRecord, error) {
	f.upserts++
	if f.failUpsert {
		return nil, errors.New("database unavailable")
	}
	record := &models.SocialAccountRecord{Platform: platform, Username: username, RawContent: rawContent}
	f.records[accountKey(platform, username)] = record
	return record, nil
}

func (f *fakeAccountRepo) UpdateContent(_ context.Context, platform models.Platform, username string, content string) error {
	if record := f.records[accountKey(platform, username)]; record != nil {
		record.Content = content
	}
	return nil
}

type fakeAnalysisRepo struct {
	records map[string]*models.UsernameAnalysis
	upserts int
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{records: map[string]*models.UsernameAnalysis{}}
}

func (f *fakeAnalysisRepo) Get(_ context.Context, username string) (*models.UsernameAnalysis, error) {
	return f.records[username], nil
}

func (f *fakeAnalysisRepo) Upsert(_ context.Context, username string, content models.AnalysisContent) (*models.UsernameAnalysis, error) {
	f.upserts++
	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	record := &models.UsernameAnalysis{Username: username, Content: string(data)}
	f.records[username] = record
	return record, nil
}

type fakeAgentClient struct {
	tweets         []models.Tweet
	tweetPayload   json.RawMessage
	linkedInBody   json.RawMessage
	instagram      *models.AnalysisContent
	err            error
	twitterCalls   int
	linkedInCalls  int
	instagramCalls int
}

func (f *fakeAgentClient) FetchTwitterProfile(_ context.Context, _ string) (json.RawMessage, []models.Tweet, error) {
	f.twitterCalls++
	return f.tweetPayload, f.tweets, f.err
}

func (f *fakeAgentClient) FetchInstagramAnalysis(_ context.Context, _ string) (*models.AnalysisContent, error) {
	f.instagramCalls++
	return f.instagram, f.err
}

func (f *fakeAgentClient) FetchLinkedInProfile(_ context.Context, _ string) (json.RawMessage, error) {
	f.linkedInCalls++
	return f.linkedInBody, f.err
}

func newTestService(accounts *fakeAccountRepo, analyses *fakeAnalysisRepo, agent *fakeAgentClient) *Service {
	return NewService(accounts, analyses, agent, logging.NewNop())
}

func TestFetchTweetsCacheMiss(t *testing.T) {
	accounts := newFakeAccountRepo()
	agent := &fakeAgentClient{
		tweets:       []models.Tweet{{Text: "hello"}},
		tweetPayload: json.RawMessage(`[{"text": "hello"}]`),
	}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	tweets, cached, err := svc.FetchTweets(context.Background(), "jane")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, tweets, 1)
	assert.Equal(t, 1, agent.twitterCalls)
	assert.Equal(t, 1, accounts.upserts)
}

func TestFetchTweetsCacheHit(t *testing.T) {
	accounts := newFakeAccountRepo()
	accounts.records[accountKey(models.PlatformTwitter, "jane")] = &models.SocialAccountRecord{
		Platform:   models.PlatformTwitter,
		Username:   "jane",
		RawContent: json.RawMessage(`[{"text": "cached tweet"}]`),
	}
	agent := &fakeAgentClient{}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	tweets, cached, err := svc.FetchTweets(context.Background(), "jane")

	require.NoError(t, err)
	assert.True(t, cached)
	require.Len(t, tweets, 1)
	assert.Equal(t, "cached tweet", tweets[0].Text)
	assert.Zero(t, agent.twitterCalls)
}

func TestFetchTweetsStoreFailureIsNonFatal(t *testing.T) {
	accounts := newFakeAccountRepo()
	accounts.failUpsert = true
	agent := &fakeAgentClient{
		tweets:       []models.Tweet{{Text: "hello"}},
		tweetPayload: json.RawMessage(`[{"text": "hello"}]`),
	}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	tweets, _, err := svc.FetchTweets(context.Background(), "jane")

	require.NoError(t, err)
	assert.Len(t, tweets, 1)
}

func TestFetchTweetsEmptyIdentity(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), newFakeAnalysisRepo(), &fakeAgentClient{})

	_, _, err := svc.FetchTweets(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestFetchTweetsNoPosts(t *testing.T) {
	agent := &fakeAgentClient{tweetPayload: json.RawMessage(`[]`)}
	svc := newTestService(newFakeAccountRepo(), newFakeAnalysisRepo(), agent)

	_, _, err := svc.FetchTweets(context.Background(), "jane")

	assert.ErrorIs(t, err, ErrNoPosts)
}

func TestFetchLinkedInPostsCacheMiss(t *testing.T) {
	accounts := newFakeAccountRepo()
	agent := &fakeAgentClient{
		linkedInBody: json.RawMessage(`{"jane": {"posts": [{"commentary": "fresh"}]}}`),
	}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	posts, username, cached, err := svc.FetchLinkedInPosts(context.Background(), "https://linkedin.com/in/jane")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "jane", username)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, accounts.upserts)
}

func TestFetchLinkedInPostsCacheHit(t *testing.T) {
	accounts := newFakeAccountRepo()
	accounts.records[accountKey(models.PlatformLinkedIn, "jane")] = &models.SocialAccountRecord{
		Platform:   models.PlatformLinkedIn,
		Username:   "jane",
		RawContent: json.RawMessage(`{"jane": {"posts": [{"commentary": "cached"}]}}`),
	}
	agent := &fakeAgentClient{}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	posts, _, cached, err := svc.FetchLinkedInPosts(context.Background(), "https://linkedin.com/in/jane")

	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "cached", posts[0].Commentary)
	assert.Zero(t, agent.linkedInCalls)
}

func TestFetchLinkedInPostsInvalidURL(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), newFakeAnalysisRepo(), &fakeAgentClient{})

	_, _, _, err := svc.FetchLinkedInPosts(context.Background(), "https://example.com/jane")

	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestFetchInstagramAnalysisCaching(t *testing.T) {
	analyses := newFakeAnalysisRepo()
	agent := &fakeAgentClient{
		instagram: &models.AnalysisContent{Heading: "Style", Response: "visual"},
	}
	svc := newTestService(newFakeAccountRepo(), analyses, agent)

	first, cached, err := svc.FetchInstagramAnalysis(context.Background(), "jane.gram")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "visual", first.Response)
	assert.Equal(t, 1, analyses.upserts)

	second, cached, err := svc.FetchInstagramAnalysis(context.Background(), "jane.gram")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "visual", second.Response)
	assert.Equal(t, 1, agent.instagramCalls)
}

func TestFetchProfileUnsupportedPlatform(t *testing.T) {
	svc := newTestService(newFakeAccountRepo(), newFakeAnalysisRepo(), &fakeAgentClient{})

	_, err := svc.FetchProfile(context.Background(), models.Platform("myspace"), "jane")

	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestFetchProfileLinkedInFiltersAndAuthor(t *testing.T) {
	accounts := newFakeAccountRepo()
	agent := &fakeAgentClient{
		linkedInBody: json.RawMessage(`{"jane": {"posts": [
			{"commentary": "original", "author": {"profile_type": "personal", "first_name": "Jane", "last_name": "Doe"}},
			{"commentary": "repost", "header_text": "Jane reposted this"}
		]}}`),
	}
	svc := newTestService(accounts, newFakeAnalysisRepo(), agent)

	result, err := svc.FetchProfile(context.Background(), models.PlatformLinkedIn, "https://linkedin.com/in/jane")

	require.NoError(t, err)
	posts, ok := result.Posts.([]models.LinkedInPost)
	require.True(t, ok)
	assert.Len(t, posts, 1)
	require.NotNil(t, result.Author)
	assert.Equal(t, "Jane Doe", result.Author.Name)
}
