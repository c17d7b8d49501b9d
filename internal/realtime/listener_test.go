package realtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkup/internal/entity"
	"linkup/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	events chan []byte
	closed bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{events: make(chan []byte, 8)}
}

func (f *fakeSource) Subscribe(ctx context.Context, postID string) (<-chan []byte, func() error, error) {
	return f.events, func() error {
		f.closed = true
		return nil
	}, nil
}

type fakeProfiles struct {
	profiles map[string]*entity.Profile
}

func (f *fakeProfiles) GetByID(id string) (*entity.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s not found", id)
	}
	return profile, nil
}

func collectComments(t *testing.T, out chan entity.Comment, n int) []entity.Comment {
	t.Helper()
	comments := make([]entity.Comment, 0, n)
	for len(comments) < n {
		select {
		case c := <-out:
			comments = append(comments, c)
		case <-time.After(time.Second):
			t.Fatalf("Timed out after %d of %d comments", len(comments), n)
		}
	}
	return comments
}

func TestListener_EnrichesAuthor(t *testing.T) {
	source := newFakeSource()
	profiles := &fakeProfiles{profiles: map[string]*entity.Profile{
		"u2": {ID: "u2", Name: "Bob"},
	}}
	listener := NewListener(source, profiles, logger.New())

	out := make(chan entity.Comment, 8)
	err := listener.Subscribe(context.Background(), "p1", func(c entity.Comment) { out <- c })
	assert.NoError(t, err)
	defer listener.Unsubscribe()

	source.events <- []byte(`{"id":"c9","postId":"p1","userId":"u2","text":"hey"}`)

	comments := collectComments(t, out, 1)
	assert.Equal(t, "c9", comments[0].ID)
	assert.Equal(t, "hey", comments[0].Text)
	assert.NotNil(t, comments[0].User)
	assert.Equal(t, "Bob", comments[0].User.Name)
}

func TestListener_UnknownAuthorStillEmits(t *testing.T) {
	source := newFakeSource()
	profiles := &fakeProfiles{profiles: map[string]*entity.Profile{}}
	listener := NewListener(source, profiles, logger.New())

	out := make(chan entity.Comment, 8)
	err := listener.Subscribe(context.Background(), "p1", func(c entity.Comment) { out <- c })
	assert.NoError(t, err)
	defer listener.Unsubscribe()

	source.events <- []byte(`{"id":"c1","postId":"p1","userId":"ghost","text":"boo"}`)

	comments := collectComments(t, out, 1)
	assert.Equal(t, "c1", comments[0].ID)
	assert.Nil(t, comments[0].User)
}

func TestListener_MalformedEventDropped(t *testing.T) {
	source := newFakeSource()
	profiles := &fakeProfiles{profiles: map[string]*entity.Profile{
		"u1": {ID: "u1"},
	}}
	listener := NewListener(source, profiles, logger.New())

	out := make(chan entity.Comment, 8)
	err := listener.Subscribe(context.Background(), "p1", func(c entity.Comment) { out <- c })
	assert.NoError(t, err)
	defer listener.Unsubscribe()

	source.events <- []byte(`not json`)
	source.events <- []byte(`{"id":"c2","postId":"p1","userId":"u1","text":"after"}`)

	comments := collectComments(t, out, 1)
	assert.Equal(t, "c2", comments[0].ID)
}

func TestListener_DoubleSubscribeRejected(t *testing.T) {
	source := newFakeSource()
	listener := NewListener(source, &fakeProfiles{}, logger.New())

	err := listener.Subscribe(context.Background(), "p1", func(entity.Comment) {})
	assert.NoError(t, err)
	defer listener.Unsubscribe()

	err = listener.Subscribe(context.Background(), "p1", func(entity.Comment) {})
	assert.Error(t, err)
}

func TestListener_UnsubscribeStopsCallbacks(t *testing.T) {
	source := newFakeSource()
	profiles := &fakeProfiles{profiles: map[string]*entity.Profile{
		"u1": {ID: "u1"},
	}}
	listener := NewListener(source, profiles, logger.New())

	out := make(chan entity.Comment, 8)
	err := listener.Subscribe(context.Background(), "p1", func(c entity.Comment) { out <- c })
	assert.NoError(t, err)

	assert.NoError(t, listener.Unsubscribe())
	assert.True(t, source.closed)

	// Events after teardown never reach the callback.
	source.events <- []byte(`{"id":"late","postId":"p1","userId":"u1","text":"late"}`)
	select {
	case c := <-out:
		t.Fatalf("Unexpected comment after unsubscribe: %s", c.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestListener_ResubscribeAfterUnsubscribe(t *testing.T) {
	source := newFakeSource()
	listener := NewListener(source, &fakeProfiles{}, logger.New())

	assert.NoError(t, listener.Subscribe(context.Background(), "p1", func(entity.Comment) {}))
	assert.NoError(t, listener.Unsubscribe())

	assert.NoError(t, listener.Subscribe(context.Background(), "p2", func(entity.Comment) {}))
	assert.NoError(t, listener.Unsubscribe())
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "comments:p1", ChannelFor("p1"))
}
