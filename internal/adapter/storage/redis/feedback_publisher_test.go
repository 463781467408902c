package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tapconnect/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subscribe opens a live subscription and waits for the confirmation frame
// so a subsequent publish cannot race the SUBSCRIBE.
func subscribe(t *testing.T, client *goredis.Client, channel string) *goredis.PubSub {
	t.Helper()
	sub := client.Subscribe(context.Background(), channel)
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)
	return sub
}

func receiveMessage(t *testing.T, sub *goredis.PubSub) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	return msg.Payload
}

func TestFeedbackPublisher_PublishToDevice(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewFeedbackPublisher(client)

	sub := subscribe(t, client, "feedback:device:band-001")

	opID := uuid.New()
	msg := domain.NewPaymentFeedback(opID, 800, 9200)
	require.NoError(t, pub.PublishToDevice(context.Background(), "band-001", msg))

	var got domain.FeedbackMessage
	require.NoError(t, json.Unmarshal([]byte(receiveMessage(t, sub)), &got))

	assert.Equal(t, domain.FeedbackTypePayment, got.Type)
	assert.Equal(t, opID, got.OperationID)
	require.NotNil(t, got.Amount)
	assert.Equal(t, int64(800), *got.Amount)
	require.NotNil(t, got.Balance)
	assert.Equal(t, int64(9200), *got.Balance)
}

func TestFeedbackPublisher_PublishToEvent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewFeedbackPublisher(client)

	eventID := uuid.New()
	sub := subscribe(t, client, "feedback:event:"+eventID.String()+":announcements")

	payload := map[string]string{"text": "doors open"}
	require.NoError(t, pub.PublishToEvent(context.Background(), eventID, "announcements", payload))

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(receiveMessage(t, sub)), &got))
	assert.Equal(t, "doors open", got["text"])
}

func TestFeedbackPublisher_PublishToUser(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewFeedbackPublisher(client)

	userID := uuid.New()
	sub := subscribe(t, client, "feedback:user:"+userID.String()+":achievements")

	payload := map[string]any{"achievement": "Networker", "reward_tokens": 500}
	require.NoError(t, pub.PublishToUser(context.Background(), userID, "achievements", payload))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(receiveMessage(t, sub)), &got))
	assert.Equal(t, "Networker", got["achievement"])
}

func TestFeedbackPublisher_NoSubscriberIsNotAnError(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewFeedbackPublisher(client)

	msg := domain.NewProfileSyncFeedback(uuid.New(), &domain.ProfileSnapshot{Name: "Ada"})
	assert.NoError(t, pub.PublishToDevice(context.Background(), "band-silent", msg))
}
