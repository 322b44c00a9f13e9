package models

// TweetMetrics is the public_metrics block of a provider tweet payload
type TweetMetrics struct {
	ImpressionCount int `json:"impression_count"`
	LikeCount       int `json:"like_count"`
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	QuoteCount      int `json:"quote_count"`
	BookmarkCount   int `json:"bookmark_count"`
}

// Tweet is a single tweet as returned by the Twitter profile webhook
type Tweet struct {
	CreatedAt     string       `json:"created_at"`
	Text          string       `json:"text"`
	PublicMetrics TweetMetrics `json:"public_metrics"`
}

// TotalEngagement sums every engagement metric on the tweet
func (t *Tweet) TotalEngagement() int {
	m := t.PublicMetrics
	return m.LikeCount + m.RetweetCount + m.ReplyCount + m.QuoteCount + m.BookmarkCount
}

// LinkedInAuthor is the author block attached to a LinkedIn post payload
type LinkedInAuthor struct {
	ProfileType    string `json:"profile_type"`
	ProfileID      string `json:"profile_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Name           string `json:"name"`
	UniversalName  string `json:"universal_name"`
	SubTitle       string `json:"sub_title"`
	ProfilePicture string `json:"profile_picture"`
	LogoURL        string `json:"logo_url"`
}

// LinkedInAttachment is a media attachment on a LinkedIn post
type LinkedInAttachment struct {
	AttType      string   `json:"att_type"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
}

// LinkedInPost is a single post as returned by the LinkedIn profile webhook
type LinkedInPost struct {
	ActivityID        string               `json:"activity_id"`
	Commentary        string               `json:"commentary"`
	HeaderText        *string              `json:"header_text"`
	NumReactions      int                  `json:"num_reactions"`
	NumComments       int                  `json:"num_comments"`
	NumShares         int                  `json:"num_shares"`
	ReactionBreakdown map[string]int       `json:"reaction_breakdown"`
	TimeElapsed       string               `json:"time_elapsed"`
	CreatedAt         string               `json:"created_at"`
	Author            *LinkedInAuthor      `json:"author,omitempty"`
	Attachments       []LinkedInAttachment `json:"attachments,omitempty"`
}

// TotalEngagement sums reactions, comments and shares
func (p *LinkedInPost) TotalEngagement() int {
	return p.NumReactions + p.NumComments + p.NumShares
}

// AuthorProfile is the normalized author metadata surfaced by the fetch
// response (name/bio/picture pulled from the first original post)
type AuthorProfile struct {
	Name    string `json:"name"`
	Bio     string `json:"bio,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// FetchProfileRequest is the request body for fetching a profile
type FetchProfileRequest struct {
	Identity string `json:"identity" validate:"required"`
}

// FetchProfileResponse is the fetch result: the resolved username, whether the
// data came from the cache, and the original (non-reposted) posts
type FetchProfileResponse struct {
	Username string         `json:"username"`
	Cached   bool           `json:"cached"`
	Posts    any            `json:"posts"`
	Author   *AuthorProfile `json:"author,omitempty"`
}
