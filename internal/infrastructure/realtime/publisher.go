package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Event is the envelope pushed onto a topic.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Publisher is the fan-out channel the core publishes into. Delivery is
// at-least-once; per-topic ordering comes from the underlying channel.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

// MatchTopic carries new messages for one match.
func MatchTopic(matchID int64) string {
	return fmt.Sprintf("match:%d", matchID)
}

// UserTopic carries per-user events such as match_created.
func UserTopic(userID string) string {
	return "user:" + userID
}

type redisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, topic string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.client.Publish(ctx, topic, payload).Err()
}
