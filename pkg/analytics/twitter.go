// Package analytics aggregates original posts into summary reports and
// chart-ready timeline series.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
)

// twitterTimeFormats are the timestamp layouts the provider has been seen using
var twitterTimeFormats = []string{
	time.RFC3339,
	time.RubyDate,
}

// BuildTwitterAnalytics computes the Markdown engagement report and timeline
// series for a set of tweets. Retweets are excluded from every aggregate.
func BuildTwitterAnalytics(username string, tweets []models.Tweet, logger ectologger.Logger) *models.TwitterAnalyticsResponse {
	original := profile.FilterOriginalTweets(tweets)

	if len(original) == 0 {
		return &models.TwitterAnalyticsResponse{
			Analysis: fmt.Sprintf("# Analysis for @%s\n\nNo original tweets found for this profile.", username),
			Series:   []models.TweetPoint{},
		}
	}

	var sumImpressions, sumLikes, sumEngagement int
	for _, tweet := range original {
		sumImpressions += tweet.PublicMetrics.ImpressionCount
		sumLikes += tweet.PublicMetrics.LikeCount
		sumEngagement += tweet.TotalEngagement()
	}

	avgImpressions := roundedMean(sumImpressions, len(original))
	avgLikes := roundedMean(sumLikes, len(original))
	avgEngagement := roundedMean(sumEngagement, len(original))

	engagementRate := "0"
	if avgImpressions > 0 {
		engagementRate = fmt.Sprintf("%.2f", float64(avgEngagement)/float64(avgImpressions)*100)
	}

	analysis := fmt.Sprintf(`# Analysis for @%s

## Profile Overview
Analysis of your last %d original tweets shows:

## Engagement Metrics
- **Avg impressions/tweet:** %d
- **Avg likes/tweet:** %d
- **Total engagement/tweet:** %d

## Key Insights
- Your top-performing tweets get %d+ impressions
- Engagement rate: %s%%
- Best time to post: 2-5 PM (GMT)`,
		username, len(original), avgImpressions, avgLikes, avgEngagement,
		int(math.Round(float64(avgImpressions)*1.5)), engagementRate)

	return &models.TwitterAnalyticsResponse{
		Analysis: analysis,
		Series:   buildTweetSeries(original, logger),
	}
}

func buildTweetSeries(tweets []models.Tweet, logger ectologger.Logger) []models.TweetPoint {
	series := make([]models.TweetPoint, 0, len(tweets))
	for _, tweet := range tweets {
		ts := parseTwitterTime(tweet.CreatedAt, logger)
		series = append(series, models.TweetPoint{
			Date:            ts.Format("2006-01-02"),
			Timestamp:       ts.UnixMilli(),
			Impressions:     tweet.PublicMetrics.ImpressionCount,
			Likes:           tweet.PublicMetrics.LikeCount,
			Retweets:        tweet.PublicMetrics.RetweetCount,
			Replies:         tweet.PublicMetrics.ReplyCount,
			Quotes:          tweet.PublicMetrics.QuoteCount,
			Bookmarks:       tweet.PublicMetrics.BookmarkCount,
			TotalEngagement: tweet.TotalEngagement(),
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp < series[j].Timestamp
	})

	return series
}

func parseTwitterTime(value string, logger ectologger.Logger) time.Time {
	for _, layout := range twitterTimeFormats {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	if logger != nil {
		logger.Warnf("unparseable tweet timestamp %q, using current time", value)
	}
	return time.Now()
}

func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
