package models

// TwitterAnalyticsRequest is the request body for Twitter analytics
type TwitterAnalyticsRequest struct {
	Username string `json:"username" validate:"required"`
}

// LinkedInAnalyticsRequest is the request body for LinkedIn analytics
type LinkedInAnalyticsRequest struct {
	LinkedInURL string `json:"linkedin_url" validate:"required"`
}

// TweetPoint is one timeline point of the Twitter engagement series
type TweetPoint struct {
	Date            string `json:"date"`
	Timestamp       int64  `json:"timestamp"`
	Impressions     int    `json:"impressions"`
	Likes           int    `json:"likes"`
	Retweets        int    `json:"retweets"`
	Replies         int    `json:"replies"`
	Quotes          int    `json:"quotes"`
	Bookmarks       int    `json:"bookmarks"`
	TotalEngagement int    `json:"total_engagement"`
}

// LinkedInPoint is one timeline point of the LinkedIn engagement series
type LinkedInPoint struct {
	Date            string `json:"date"`
	Timestamp       int64  `json:"timestamp"`
	Reactions       int    `json:"reactions"`
	Comments        int    `json:"comments"`
	Shares          int    `json:"shares"`
	TotalEngagement int    `json:"total_engagement"`
}

// TwitterAnalyticsResponse carries the Markdown report and the chart series
type TwitterAnalyticsResponse struct {
	Analysis string       `json:"analysis"`
	Series   []TweetPoint `json:"series"`
}

// LinkedInAnalyticsResponse carries the Markdown report and the chart series
type LinkedInAnalyticsResponse struct {
	Analysis string          `json:"analysis"`
	Series   []LinkedInPoint `json:"series"`
}
