package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CommentInserted is the change event published when a comment row is
// inserted. It carries foreign keys only; the author profile is resolved by
// the listener.
type CommentInserted struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelFor returns the pub/sub channel carrying insert events for one post.
func ChannelFor(postID string) string {
	return "comments:" + postID
}

// Bus publishes and subscribes comment insert events over redis pub/sub.
type Bus struct {
	rdb *redis.Client
}

func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

func (b *Bus) PublishCommentInsert(ctx context.Context, event CommentInserted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal comment event: %w", err)
	}
	return b.rdb.Publish(ctx, ChannelFor(event.PostID), payload).Err()
}

// Subscribe opens a channel of raw event payloads for one post. The returned
// close func tears the subscription down; the payload channel closes after
// that.
func (b *Bus) Subscribe(ctx context.Context, postID string) (<-chan []byte, func() error, error) {
	pubsub := b.rdb.Subscribe(ctx, ChannelFor(postID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", ChannelFor(postID), err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, pubsub.Close, nil
}
