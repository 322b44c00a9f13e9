// Package profile normalizes provider payloads into uniform post lists:
// repost filtering, identity extraction and author metadata.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/models"
)

var (
	// ErrMissingIdentity is returned when an identity fails validation before any network call
	ErrMissingIdentity = errors.New("missing or invalid identity")

	// ErrNoPosts is returned when a payload contains no posts for the resolved identity
	ErrNoPosts = errors.New("no posts found for identity")
)

const retweetPrefix = "RT @"

var linkedInURLPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([^/?#]+)`)

// ExtractLinkedInUsername pulls the username out of a LinkedIn profile URL
func ExtractLinkedInUsername(profileURL string) (string, error) {
	match := linkedInURLPattern.FindStringSubmatch(profileURL)
	if len(match) < 2 {
		return "", fmt.Errorf("%w: could not extract username from %q", ErrMissingIdentity, profileURL)
	}
	return match[1], nil
}

// FilterOriginalTweets drops retweets (text starting with "RT @")
func FilterOriginalTweets(tweets []models.Tweet) []models.Tweet {
	original := make([]models.Tweet, 0, len(tweets))
	for _, tweet := range tweets {
		if strings.HasPrefix(tweet.Text, retweetPrefix) {
			continue
		}
		original = append(original, tweet)
	}
	return original
}

// FilterOriginalLinkedInPosts drops reposts (header containing "reposted",
// case-insensitive)
func FilterOriginalLinkedInPosts(posts []models.LinkedInPost) []models.LinkedInPost {
	original := make([]models.LinkedInPost, 0, len(posts))
	for _, post := range posts {
		if IsRepost(post) {
			continue
		}
		original = append(original, post)
	}
	return original
}

// IsRepost reports whether a LinkedIn post is a repost of someone else's content
func IsRepost(post models.LinkedInPost) bool {
	return post.HeaderText != nil && strings.Contains(strings.ToLower(*post.HeaderText), "reposted")
}

type linkedInAccount struct {
	Posts []models.LinkedInPost `json:"posts"`
}

// ParseLinkedInEnvelope decodes a LinkedIn provider payload. The payload may
// be wrapped in a response envelope and nests account data under the resolved
// username key; older cached rows stored the post array directly.
func ParseLinkedInEnvelope(raw json.RawMessage, username string) ([]models.LinkedInPost, string, error) {
	payload := agents.UnwrapEnvelope(raw)

	var posts []models.LinkedInPost
	if err := json.Unmarshal(payload, &posts); err == nil {
		if len(posts) == 0 {
			return nil, username, ErrNoPosts
		}
		return posts, username, nil
	}

	var accounts map[string]linkedInAccount
	if err := json.Unmarshal(payload, &accounts); err != nil {
		return nil, "", fmt.Errorf("%w: unrecognized payload shape: %v", agents.ErrMalformedResponse, err)
	}
	if len(accounts) == 0 {
		return nil, "", fmt.Errorf("%w: empty payload", agents.ErrMalformedResponse)
	}

	account, ok := accounts[username]
	resolved := username
	if !ok {
		// The provider resolves vanity URLs, so the key may differ from the
		// submitted identity. Fall back to the first account present.
		for key, value := range accounts {
			account = value
			resolved = key
			break
		}
	}

	if len(account.Posts) == 0 {
		return nil, resolved, ErrNoPosts
	}

	return account.Posts, resolved, nil
}

// AuthorFromPosts extracts author metadata from the first original post.
// Company pages report a name and logo, personal profiles a first/last name
// and picture.
func AuthorFromPosts(posts []models.LinkedInPost) *models.AuthorProfile {
	for _, post := range posts {
		if IsRepost(post) || post.Author == nil {
			continue
		}

		author := post.Author
		profile := &models.AuthorProfile{Bio: author.SubTitle}

		if author.ProfileType == "company" {
			profile.Name = author.Name
			if profile.Name == "" {
				profile.Name = author.UniversalName
			}
			profile.Picture = author.LogoURL
		} else {
			if author.FirstName != "" && author.LastName != "" {
				profile.Name = author.FirstName + " " + author.LastName
			} else {
				profile.Name = author.ProfileID
			}
			profile.Picture = author.ProfilePicture
		}

		return profile
	}
	return nil
}
