package profile

import (
	"strconv"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

// ParseRelativeTime converts a relative time string ("3 days", "2 months")
// into an absolute time by subtracting from now. Units are matched by prefix
// (day/week/month/year). An unrecognized unit returns now and logs a warning
// so the gap is visible instead of silently producing a wrong timestamp.
func ParseRelativeTime(elapsed string, now time.Time, logger ectologger.Logger) time.Time {
	parts := strings.Fields(elapsed)
	if len(parts) < 2 {
		if logger != nil {
			logger.Warnf("unparseable relative time %q, using current time", elapsed)
		}
		return now
	}

	amount, err := strconv.Atoi(parts[0])
	if err != nil {
		if logger != nil {
			logger.Warnf("unparseable relative time amount %q, using current time", elapsed)
		}
		return now
	}

	unit := parts[1]
	switch {
	case strings.HasPrefix(unit, "month"):
		return now.AddDate(0, -amount, 0)
	case strings.HasPrefix(unit, "year"):
		return now.AddDate(-amount, 0, 0)
	case strings.HasPrefix(unit, "day"):
		return now.AddDate(0, 0, -amount)
	case strings.HasPrefix(unit, "week"):
		return now.AddDate(0, 0, -amount*7)
	default:
		if logger != nil {
			logger.Warnf("unrecognized relative time unit %q, using current time", unit)
		}
		return now
	}
}

// PostTime resolves a LinkedIn post's timestamp: created_at when present,
// otherwise the relative time_elapsed field.
func PostTime(post models.LinkedInPost, now time.Time, logger ectologger.Logger) time.Time {
	if post.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, post.CreatedAt); err == nil {
			return ts
		}
	}
	return ParseRelativeTime(post.TimeElapsed, now, logger)
}
