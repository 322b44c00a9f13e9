package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Platform identifies the social network a record belongs to
type Platform string

const (
	PlatformTwitter       Platform = "twitter"
	PlatformTwitterThread Platform = "twitter_thread"
	PlatformLinkedIn      Platform = "linkedin"
	PlatformInstagram     Platform = "instagram"
)

// FetchPlatforms are the platforms a profile can be fetched from
var FetchPlatforms = map[Platform]bool{
	PlatformTwitter:   true,
	PlatformLinkedIn:  true,
	PlatformInstagram: true,
}

// PublishPlatforms are the platforms a post can be published under
var PublishPlatforms = map[Platform]bool{
	PlatformTwitter:       true,
	PlatformTwitterThread: true,
	PlatformLinkedIn:      true,
	PlatformInstagram:     true,
}

// SocialAccountRecord caches the raw provider payload for a (platform, username)
// pair. The pair is unique; repeated fetches upsert the same row.
type SocialAccountRecord struct {
	ID         string          `json:"id" db:"id"`
	Platform   Platform        `json:"platform" db:"platform"`
	Username   string          `json:"username" db:"username"`
	RawContent json.RawMessage `json:"raw_content" db:"raw_content"`
	Content    string          `json:"content" db:"content"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// PublishedPost is a saved, final piece of content. Rows are immutable once
// created; threads store their segments joined with blank lines.
type PublishedPost struct {
	ID        string    `json:"id" db:"id"`
	Platform  Platform  `json:"platform" db:"platform"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	ImgURL    *string   `json:"img_url" db:"img_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreatePublishedPostRequest is the request body for saving a post. Threads
// may send their segments in Tweets instead of pre-joined Content.
type CreatePublishedPostRequest struct {
	Platform Platform `json:"platform" validate:"required,oneof=twitter twitter_thread linkedin instagram"`
	Username string   `json:"username" validate:"required"`
	Content  string   `json:"content" validate:"required_without=Tweets"`
	Tweets   []string `json:"tweets,omitempty" validate:"omitempty,min=1,dive,required"`
	ImgURL   *string  `json:"img_url,omitempty"`
}

// NormalizeContent joins thread segments into Content when Content was not
// supplied directly. Segments are separated by a blank line.
func (r *CreatePublishedPostRequest) NormalizeContent() {
	if r.Content == "" && len(r.Tweets) > 0 {
		r.Content = strings.Join(r.Tweets, "\n\n")
	}
}

// PublishedPostListResponse is the gallery response, newest first
type PublishedPostListResponse struct {
	Items      []PublishedPost `json:"items"`
	TotalCount int             `json:"total_count"`
}

// AnalysisContent is the {heading, response} payload cached per username
type AnalysisContent struct {
	Heading  string `json:"heading"`
	Response string `json:"response"`
}

// UsernameAnalysis caches a lightweight provider analysis for a username
// (the Instagram flow's variant of the social account cache).
type UsernameAnalysis struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ParseContent decodes the cached {heading, response} JSON
func (u *UsernameAnalysis) ParseContent() (*AnalysisContent, error) {
	var content AnalysisContent
	if err := json.Unmarshal([]byte(u.Content), &content); err != nil {
		return nil, err
	}
	return &content, nil
}
