package view

import (
	"context"

	"linkup/internal/entity"
	"linkup/internal/realtime"
	"linkup/internal/usecase"
)

// PostDetailSession drives one post-detail screen for one signed-in user:
// it owns the view state, the realtime listener bound to the post, and the
// calls that mutate the thread. Exactly one listener channel exists per
// session; Close tears it down.
type PostDetailSession struct {
	postID   string
	userID   string
	view     *PostDetail
	posts    usecase.PostUseCase
	comments usecase.CommentUseCase
	listener *realtime.Listener
}

// OpenPostDetail attaches the realtime listener, fetches the post detail and
// merges it into fresh view state. The listener attaches before the fetch;
// because both paths merge by id, a push racing the snapshot is harmless in
// either order.
func OpenPostDetail(
	ctx context.Context,
	postID, userID string,
	posts usecase.PostUseCase,
	comments usecase.CommentUseCase,
	listener *realtime.Listener,
) (*PostDetailSession, error) {
	s := &PostDetailSession{
		postID:   postID,
		userID:   userID,
		view:     NewPostDetail(),
		posts:    posts,
		comments: comments,
		listener: listener,
	}

	if listener != nil {
		if err := listener.Subscribe(ctx, postID, s.onRealtimeComment); err != nil {
			return nil, err
		}
	}

	post, err := posts.GetDetail(postID)
	if err != nil {
		if listener != nil {
			listener.Unsubscribe()
		}
		return nil, err
	}
	s.view.ApplySnapshot(post)

	return s, nil
}

func (s *PostDetailSession) onRealtimeComment(comment entity.Comment) {
	s.view.AddComment(comment)
}

func (s *PostDetailSession) View() *PostDetail {
	return s.view
}

// Refresh re-fetches the post and merges the snapshot into the view.
func (s *PostDetailSession) Refresh() error {
	post, err := s.posts.GetDetail(s.postID)
	if err != nil {
		return err
	}
	s.view.ApplySnapshot(post)
	return nil
}

// AddComment persists a new comment by the session user and merges it into
// the thread. The realtime echo of the same insert merges to the same id.
func (s *PostDetailSession) AddComment(ctx context.Context, text string) (*entity.Comment, error) {
	comment := &entity.Comment{
		PostID: s.postID,
		UserID: s.userID,
		Text:   text,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.view.AddComment(*created)
	return created, nil
}

func (s *PostDetailSession) DeleteComment(commentID string) error {
	if err := s.comments.Remove(commentID, s.userID); err != nil {
		return err
	}
	s.view.RemoveComment(commentID)
	return nil
}

// ToggleLike flips the session user's like optimistically: the local like
// set changes first and is rolled back if the backend call fails.
func (s *PostDetailSession) ToggleLike() error {
	if prior, liked := s.view.LikeBy(s.userID); liked {
		return Mutate(
			func() { s.view.RemoveLike(s.userID) },
			func() error { return s.posts.Unlike(s.postID, s.userID) },
			func() { s.view.AddLike(prior) },
		)
	}

	like := entity.Like{UserID: s.userID, PostID: s.postID}
	return Mutate(
		func() { s.view.AddLike(like) },
		func() error { return s.posts.Like(s.userID, s.postID) },
		func() { s.view.RemoveLike(s.userID) },
	)
}

// Close detaches the realtime listener and freezes the view; any responses
// still in flight become no-ops.
func (s *PostDetailSession) Close() error {
	var err error
	if s.listener != nil {
		err = s.listener.Unsubscribe()
	}
	s.view.Close()
	return err
}
