package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// FeedbackPublisher implements ports.FeedbackPublisher over Redis pub/sub.
// Messages are fire-and-forget: a device that is not subscribed at publish
// time simply misses the frame, which is acceptable for advisory feedback.
type FeedbackPublisher struct {
	client *goredis.Client
}

// NewFeedbackPublisher creates a Redis-backed feedback publisher.
func NewFeedbackPublisher(client *goredis.Client) *FeedbackPublisher {
	return &FeedbackPublisher{client: client}
}

// PublishToDevice pushes a feedback message onto the device's channel.
func (p *FeedbackPublisher) PublishToDevice(ctx context.Context, deviceID string, msg *domain.FeedbackMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling feedback message: %w", err)
	}
	channel := "feedback:device:" + deviceID
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", channel, err)
	}
	return nil
}

// PublishToEvent broadcasts a payload on an event-scoped topic channel.
func (p *FeedbackPublisher) PublishToEvent(ctx context.Context, eventID uuid.UUID, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}
	channel := fmt.Sprintf("feedback:event:%s:%s", eventID, topic)
	if err := p.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", channel, err)
	}
	return nil
}

// PublishToUser sends a payload on a user-scoped topic channel.
func (p *FeedbackPublisher) PublishToUser(ctx context.Context, userID uuid.UUID, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling user payload: %w", err)
	}
	channel := fmt.Sprintf("feedback:user:%s:%s", userID, topic)
	if err := p.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", channel, err)
	}
	return nil
}
