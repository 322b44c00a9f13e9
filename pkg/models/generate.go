package models

// SourceType selects the optional external context for generation
type SourceType string

const (
	SourceTypeEvent   SourceType = "event"
	SourceTypeYouTube SourceType = "yt"
	SourceTypeNone    SourceType = "none"
)

// AnalyzeStyleRequest is the request body for a style analysis
type AnalyzeStyleRequest struct {
	Platform Platform `json:"platform" validate:"required,oneof=twitter linkedin"`
	Identity string   `json:"identity" validate:"required"`
}

// AnalyzeStyleResponse carries the free-text style analysis for a profile
type AnalyzeStyleResponse struct {
	Username string `json:"username"`
	Analysis string `json:"analysis"`
}

// GenerateTweetRequest is the request body for single tweet generation
type GenerateTweetRequest struct {
	Username   string     `json:"username" validate:"required"`
	Topic      string     `json:"topic" validate:"required"`
	SourceType SourceType `json:"source_type" validate:"omitempty,oneof=event yt none"`
	SourceURL  string     `json:"source_url" validate:"omitempty,url"`
}

// GenerateTweetResponse is the single tweet generation result. ImageError is
// set when the text generated but the image URL could not be extracted.
type GenerateTweetResponse struct {
	Content    string `json:"content"`
	ImageURL   string `json:"image_url,omitempty"`
	ImageError string `json:"image_error,omitempty"`
}

// GenerateThreadRequest is the request body for thread generation
type GenerateThreadRequest struct {
	Username   string     `json:"username" validate:"required"`
	Topic      string     `json:"topic" validate:"required"`
	SourceType SourceType `json:"source_type" validate:"omitempty,oneof=event yt none"`
	SourceURL  string     `json:"source_url" validate:"omitempty,url"`
}

// GenerateThreadResponse carries the exactly-seven tweets of a thread
type GenerateThreadResponse struct {
	Tweets []string `json:"tweets"`
}

// GenerateLinkedInRequest is the request body for LinkedIn post generation
type GenerateLinkedInRequest struct {
	LinkedInURL string     `json:"linkedin_url" validate:"required"`
	Topic       string     `json:"topic" validate:"required"`
	SourceType  SourceType `json:"source_type" validate:"omitempty,oneof=event yt none"`
	SourceURL   string     `json:"source_url" validate:"omitempty,url"`
}

// GenerateLinkedInResponse is the LinkedIn generation result
type GenerateLinkedInResponse struct {
	Username   string         `json:"username"`
	Content    string         `json:"content"`
	ImageURL   string         `json:"image_url,omitempty"`
	ImageError string         `json:"image_error,omitempty"`
	Author     *AuthorProfile `json:"author,omitempty"`
}

// GenerateInstagramRequest is the request body for Instagram caption generation
type GenerateInstagramRequest struct {
	Username  string `json:"username" validate:"required"`
	Topic     string `json:"topic" validate:"required"`
	SourceURL string `json:"source_url" validate:"omitempty,url"`
}

// GenerateInstagramResponse is the Instagram generation result
type GenerateInstagramResponse struct {
	Caption    string `json:"caption"`
	ImageURL   string `json:"image_url,omitempty"`
	ImageError string `json:"image_error,omitempty"`
}

// CalendarRequest is the request body for content calendar generation
type CalendarRequest struct {
	Goal              string `json:"goal" validate:"required"`
	Days              int    `json:"days" validate:"required,min=1,max=30"`
	TwitterUsername   string `json:"twitter_username"`
	InstagramUsername string `json:"instagram_username"`
	LinkedInURL       string `json:"linkedin_url"`
}

// CalendarDay is one day of planned content
type CalendarDay struct {
	Date      string `json:"date"`
	Tweet     string `json:"tweet,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// CalendarResponse is the generated calendar
type CalendarResponse struct {
	Days []CalendarDay `json:"days"`
}
