package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

func tweet(createdAt, text string, impressions, likes, retweets, replies, quotes, bookmarks int) models.Tweet {
	return models.Tweet{
		CreatedAt: createdAt,
		Text:      text,
		PublicMetrics: models.TweetMetrics{
			ImpressionCount: impressions,
			LikeCount:       likes,
			RetweetCount:    retweets,
			ReplyCount:      replies,
			QuoteCount:      quotes,
			BookmarkCount:   bookmarks,
		},
	}
}

func TestBuildTwitterAnalyticsEmpty(t *testing.T) {
	result := BuildTwitterAnalytics("jane", nil, nil)

	assert.Equal(t, "# Analysis for @jane\n\nNo original tweets found for this profile.", result.Analysis)
	assert.Empty(t, result.Series)
}

func TestBuildTwitterAnalyticsOnlyRetweets(t *testing.T) {
	tweets := []models.Tweet{
		tweet("2025-01-01T00:00:00Z", "RT @a: one", 100, 10, 0, 0, 0, 0),
		tweet("2025-01-02T00:00:00Z", "RT @b: two", 200, 20, 0, 0, 0, 0),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	assert.Contains(t, result.Analysis, "No original tweets found")
	assert.Empty(t, result.Series)
}

func TestBuildTwitterAnalyticsMeans(t *testing.T) {
	tweets := []models.Tweet{
		tweet("2025-01-01T00:00:00Z", "one", 100, 10, 1, 1, 0, 0),
		tweet("2025-01-02T00:00:00Z", "two", 201, 15, 2, 2, 0, 0),
		tweet("2025-01-03T00:00:00Z", "RT @x: excluded", 9999, 999, 0, 0, 0, 0),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	// (100+201)/2 rounds to 151, (10+15)/2 rounds to 13
	assert.Contains(t, result.Analysis, "**Avg impressions/tweet:** 151")
	assert.Contains(t, result.Analysis, "**Avg likes/tweet:** 13")
	// engagement sums: 12 and 19, mean 15.5 rounds to 16
	assert.Contains(t, result.Analysis, "**Total engagement/tweet:** 16")
	assert.True(t, strings.HasPrefix(result.Analysis, "# Analysis for @jane"))

	require.Len(t, result.Series, 2)
}

func TestBuildTwitterAnalyticsSeriesAscending(t *testing.T) {
	tweets := []models.Tweet{
		tweet("2025-03-01T00:00:00Z", "newest", 300, 3, 0, 0, 0, 0),
		tweet("2025-01-01T00:00:00Z", "oldest", 100, 1, 0, 0, 0, 0),
		tweet("2025-02-01T00:00:00Z", "middle", 200, 2, 0, 0, 0, 0),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	require.Len(t, result.Series, 3)
	assert.Equal(t, "2025-01-01", result.Series[0].Date)
	assert.Equal(t, "2025-02-01", result.Series[1].Date)
	assert.Equal(t, "2025-03-01", result.Series[2].Date)
	assert.True(t, result.Series[0].Timestamp < result.Series[1].Timestamp)
	assert.True(t, result.Series[1].Timestamp < result.Series[2].Timestamp)
}

func TestBuildTwitterAnalyticsSeriesMetrics(t *testing.T) {
	tweets := []models.Tweet{
		tweet("2025-01-01T00:00:00Z", "one", 500, 10, 5, 3, 2, 1),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	require.Len(t, result.Series, 1)
	point := result.Series[0]
	assert.Equal(t, 500, point.Impressions)
	assert.Equal(t, 10, point.Likes)
	assert.Equal(t, 5, point.Retweets)
	assert.Equal(t, 3, point.Replies)
	assert.Equal(t, 2, point.Quotes)
	assert.Equal(t, 1, point.Bookmarks)
	assert.Equal(t, 21, point.TotalEngagement)
}

func TestBuildTwitterAnalyticsRubyDateTimestamps(t *testing.T) {
	tweets := []models.Tweet{
		tweet("Wed Oct 10 20:19:24 +0000 2018", "provider format", 100, 1, 0, 0, 0, 0),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	require.Len(t, result.Series, 1)
	assert.Equal(t, "2018-10-10", result.Series[0].Date)
}

func TestBuildTwitterAnalyticsEngagementRate(t *testing.T) {
	tweets := []models.Tweet{
		tweet("2025-01-01T00:00:00Z", "one", 200, 10, 0, 0, 0, 0),
	}

	result := BuildTwitterAnalytics("jane", tweets, nil)

	// 10 engagement / 200 impressions
	assert.Contains(t, result.Analysis, "Engagement rate: 5.00%")
}
