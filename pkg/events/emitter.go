// Package events handles event emission for published content
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/yashwanth-3000/content--hub/pkg/kafka"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// PostPublishedEvent is emitted when a post is saved to the gallery
type PostPublishedEvent struct {
	EventType     string          `json:"event_type"`
	PostID        string          `json:"post_id"`
	Platform      models.Platform `json:"platform"`
	Username      string          `json:"username"`
	HasImage      bool            `json:"has_image"`
	SchemaVersion string          `json:"schema_version"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Emitter publishes content lifecycle events. A nil producer disables
// emission entirely.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitPostPublished emits a post.published event. Failures are logged and
// swallowed: event emission never fails a save.
func (e *Emitter) EmitPostPublished(ctx context.Context, post *models.PublishedPost) {
	if e.producer == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitPostPublished")
	defer span.End()

	event := PostPublishedEvent{
		EventType:     "post.published",
		PostID:        post.ID,
		Platform:      post.Platform,
		Username:      post.Username,
		HasImage:      post.ImgURL != nil && *post.ImgURL != "",
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to marshal post.published event")
		return
	}

	headers := map[string]string{
		"event_type":     event.EventType,
		"platform":       string(post.Platform),
		"schema_version": SchemaVersion,
	}

	if err := e.producer.Publish(ctx, post.ID, data, headers); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit post.published event")
	}
}
