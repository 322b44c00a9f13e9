package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
)

// BuildLinkedInAnalytics computes the Markdown engagement report and timeline
// series for a set of LinkedIn posts. Reposts are excluded from every
// aggregate.
func BuildLinkedInAnalytics(posts []models.LinkedInPost, now time.Time, logger ectologger.Logger) *models.LinkedInAnalyticsResponse {
	original := profile.FilterOriginalLinkedInPosts(posts)

	if len(original) == 0 {
		return &models.LinkedInAnalyticsResponse{
			Analysis: "# LinkedIn Profile Analysis\n\nNo original posts found for this profile.",
			Series:   []models.LinkedInPoint{},
		}
	}

	var sumReactions, sumComments, sumShares int
	for _, post := range original {
		sumReactions += post.NumReactions
		sumComments += post.NumComments
		sumShares += post.NumShares
	}

	avgReactions := roundedMean(sumReactions, len(original))
	avgComments := roundedMean(sumComments, len(original))
	avgShares := roundedMean(sumShares, len(original))

	// Distribution percentages divide the rounded averages, not the raw sums
	avgTotal := avgReactions + avgComments + avgShares
	reactionPct := wholePercent(avgReactions, avgTotal)
	commentPct := wholePercent(avgComments, avgTotal)
	sharePct := wholePercent(avgShares, avgTotal)

	topReactions := int(math.Round(float64(avgReactions) * 1.5))

	analysis := fmt.Sprintf(`# LinkedIn Profile Analysis

## Engagement Overview
Analysis of %d original posts:

## Key Metrics
- **Avg reactions/post:** %d
- **Avg comments/post:** %d
- **Avg shares/post:** %d

## Performance Insights
- Top posts receive %d+ reactions
- Engagement distribution:
  - Reactions: %d%%
  - Comments: %d%%
  - Shares: %d%%
- Most common reaction: %s`,
		len(original), avgReactions, avgComments, avgShares,
		topReactions, reactionPct, commentPct, sharePct,
		formatReaction(mostCommonReaction(original)))

	return &models.LinkedInAnalyticsResponse{
		Analysis: analysis,
		Series:   buildLinkedInSeries(original, now, logger),
	}
}

func buildLinkedInSeries(posts []models.LinkedInPost, now time.Time, logger ectologger.Logger) []models.LinkedInPoint {
	series := make([]models.LinkedInPoint, 0, len(posts))
	for _, post := range posts {
		ts := profile.PostTime(post, now, logger)
		series = append(series, models.LinkedInPoint{
			Date:            ts.Format("2006-01-02"),
			Timestamp:       ts.UnixMilli(),
			Reactions:       post.NumReactions,
			Comments:        post.NumComments,
			Shares:          post.NumShares,
			TotalEngagement: post.TotalEngagement(),
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp < series[j].Timestamp
	})

	return series
}

// mostCommonReaction picks the dominant reaction type from the first post's
// reaction breakdown, defaulting to "like" when no breakdown is present.
func mostCommonReaction(posts []models.LinkedInPost) string {
	breakdown := posts[0].ReactionBreakdown
	if len(breakdown) == 0 {
		return "like"
	}

	best := ""
	bestCount := -1
	for reaction, count := range breakdown {
		if count > bestCount || (count == bestCount && reaction < best) {
			best = reaction
			bestCount = count
		}
	}
	if best == "" {
		return "like"
	}
	return best
}

func formatReaction(reaction string) string {
	return strings.ToUpper(strings.ReplaceAll(reaction, "_", " "))
}

func wholePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
