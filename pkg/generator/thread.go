package generator

import (
	"errors"
	"fmt"
	"strings"
)

// threadLength is the number of tweets every thread must contain
const threadLength = 7

// ErrThreadLength is returned when the model produces a thread with the wrong
// number of segments. No partial thread is ever returned.
var ErrThreadLength = errors.New("thread must contain exactly 7 tweets")

// ParseThread splits a generated thread on its "#@...@#" delimiters. Anything
// before the first "#@" is discarded; each segment is the text before its
// closing "@#", trimmed.
func ParseThread(text string) ([]string, error) {
	parts := strings.Split(text, "#@")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: no delimited tweets found", ErrThreadLength)
	}

	tweets := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		segment, _, _ := strings.Cut(part, "@#")
		tweets = append(tweets, strings.TrimSpace(segment))
	}

	if len(tweets) != threadLength {
		return nil, fmt.Errorf("%w: got %d", ErrThreadLength, len(tweets))
	}

	return tweets, nil
}
