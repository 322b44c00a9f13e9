package generator

import (
	"fmt"
	"time"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

const calendarDateFormat = "Jan 2, 2006"

// BuildCalendar produces a deterministic per-day content plan starting today.
// Each platform entry is filled only when its handle was supplied.
func BuildCalendar(req models.CalendarRequest, today time.Time) *models.CalendarResponse {
	days := make([]models.CalendarDay, 0, req.Days)

	for i := 0; i < req.Days; i++ {
		date := today.AddDate(0, 0, i)
		formatted := date.Format(calendarDateFormat)

		day := models.CalendarDay{Date: formatted}
		if req.TwitterUsername != "" {
			day.Tweet = fmt.Sprintf("Day %d (%s): %q advice for @%s.", i+1, formatted, req.Goal, req.TwitterUsername)
		}
		if req.LinkedInURL != "" {
			day.LinkedIn = fmt.Sprintf("Day %d (%s): Professional tip on %q. Check out %s.", i+1, formatted, req.Goal, req.LinkedInURL)
		}
		if req.InstagramUsername != "" {
			day.Instagram = fmt.Sprintf("Day %d (%s): Visual inspiration on %q for @%s.", i+1, formatted, req.Goal, req.InstagramUsername)
		}

		days = append(days, day)
	}

	return &models.CalendarResponse{Days: days}
}
