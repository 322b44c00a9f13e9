package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

func TestBuildCalendar(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	result := BuildCalendar(models.CalendarRequest{
		Goal:              "grow an audience",
		Days:              3,
		TwitterUsername:   "jane",
		InstagramUsername: "jane.gram",
		LinkedInURL:       "https://linkedin.com/in/jane",
	}, today)

	require.Len(t, result.Days, 3)

	first := result.Days[0]
	assert.Equal(t, "Jun 15, 2025", first.Date)
	assert.Equal(t, `Day 1 (Jun 15, 2025): "grow an audience" advice for @jane.`, first.Tweet)
	assert.Equal(t, `Day 1 (Jun 15, 2025): Professional tip on "grow an audience". Check out https://linkedin.com/in/jane.`, first.LinkedIn)
	assert.Equal(t, `Day 1 (Jun 15, 2025): Visual inspiration on "grow an audience" for @jane.gram.`, first.Instagram)

	assert.Equal(t, "Jun 17, 2025", result.Days[2].Date)
	assert.Contains(t, result.Days[2].Tweet, "Day 3")
}

func TestBuildCalendarSkipsMissingHandles(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	result := BuildCalendar(models.CalendarRequest{
		Goal:            "ship a product",
		Days:            1,
		TwitterUsername: "jane",
	}, today)

	require.Len(t, result.Days, 1)
	assert.NotEmpty(t, result.Days[0].Tweet)
	assert.Empty(t, result.Days[0].LinkedIn)
	assert.Empty(t, result.Days[0].Instagram)
}

func TestBuildCalendarDeterministic(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	req := models.CalendarRequest{Goal: "learn Go", Days: 30, TwitterUsername: "jane"}

	first := BuildCalendar(req, today)
	second := BuildCalendar(req, today)

	assert.Equal(t, first, second)
	assert.Len(t, first.Days, 30)
}
