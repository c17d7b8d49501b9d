package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"linkup/internal/entity"
	"linkup/pkg/logger"
)

// Source is the transport a Listener consumes raw insert events from.
// *Bus satisfies it; tests substitute an in-memory feed.
type Source interface {
	Subscribe(ctx context.Context, postID string) (<-chan []byte, func() error, error)
}

// ProfileResolver looks up the author of a pushed comment. Events carry only
// the author's id.
type ProfileResolver interface {
	GetByID(id string) (*entity.Profile, error)
}

// Listener watches one post's comment channel and emits denormalized
// comments. Lifecycle: Subscribe moves it to listening, Unsubscribe tears the
// channel down; after Unsubscribe no further callbacks run. A listener is
// bound to at most one post at a time.
type Listener struct {
	source   Source
	profiles ProfileResolver
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	closer func() error
	done   chan struct{}
}

func NewListener(source Source, profiles ProfileResolver, log *logger.Logger) *Listener {
	return &Listener{
		source:   source,
		profiles: profiles,
		logger:   log,
	}
}

func (l *Listener) Subscribe(ctx context.Context, postID string, fn func(entity.Comment)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return fmt.Errorf("listener already subscribed")
	}

	ctx, cancel := context.WithCancel(ctx)
	events, closer, err := l.source.Subscribe(ctx, postID)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	l.cancel = cancel
	l.closer = closer
	l.done = done

	go func() {
		defer close(done)
		for {
			select {
			case payload, ok := <-events:
				if !ok {
					return
				}
				comment, err := l.enrich(payload)
				if err != nil {
					l.logger.Error("Dropping comment event: %v", err)
					continue
				}
				fn(comment)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// enrich resolves the event's author and builds the denormalized comment.
// A failed profile lookup still emits the comment, with no author attached,
// matching the fetch path's tolerance for missing joins.
func (l *Listener) enrich(payload []byte) (entity.Comment, error) {
	var event CommentInserted
	if err := json.Unmarshal(payload, &event); err != nil {
		return entity.Comment{}, fmt.Errorf("malformed comment event: %w", err)
	}

	comment := entity.Comment{
		ID:        event.ID,
		PostID:    event.PostID,
		UserID:    event.UserID,
		Text:      event.Text,
		CreatedAt: event.CreatedAt,
	}

	profile, err := l.profiles.GetByID(event.UserID)
	if err != nil {
		l.logger.Warn("Could not resolve comment author %s: %v", event.UserID, err)
	} else {
		comment.User = profile
	}

	return comment, nil
}

// Unsubscribe stops event delivery and waits for the pump goroutine to exit,
// so no callback runs after it returns.
func (l *Listener) Unsubscribe() error {
	l.mu.Lock()
	cancel, closer, done := l.cancel, l.closer, l.done
	l.cancel, l.closer, l.done = nil, nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	var err error
	if closer != nil {
		err = closer()
	}
	<-done
	return err
}
