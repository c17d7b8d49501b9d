package view

import (
	"sort"
	"sync"

	"linkup/internal/entity"
)

// PostDetail is the transient state behind one post-detail screen: the post,
// its like set and its comment thread. Comments are merged by id from both
// the fetch path and the realtime push path, so a snapshot that resolves
// after a push can never drop the pushed comment, and the rendered thread is
// always newest-first regardless of arrival order.
//
// After Close, every mutation is a no-op: late responses targeting a
// dismissed screen change nothing.
type PostDetail struct {
	mu       sync.Mutex
	closed   bool
	post     *entity.Post
	comments map[string]entity.Comment
	likes    map[string]entity.Like
}

func NewPostDetail() *PostDetail {
	return &PostDetail{
		comments: make(map[string]entity.Comment),
		likes:    make(map[string]entity.Like),
	}
}

// ApplySnapshot merges a freshly fetched post into the view. The post's own
// fields and like set are replaced; comments are merged by id.
func (v *PostDetail) ApplySnapshot(post *entity.Post) {
	if post == nil {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}

	v.post = post
	v.likes = make(map[string]entity.Like, len(post.PostLikes))
	for _, like := range post.PostLikes {
		v.likes[like.UserID] = like
	}
	for _, comment := range post.Comments {
		v.comments[comment.ID] = comment
	}
}

func (v *PostDetail) AddComment(comment entity.Comment) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.comments[comment.ID] = comment
}

func (v *PostDetail) RemoveComment(commentID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	delete(v.comments, commentID)
}

func (v *PostDetail) AddLike(like entity.Like) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.likes[like.UserID] = like
}

func (v *PostDetail) RemoveLike(userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	delete(v.likes, userID)
}

// Comments returns the thread newest-first.
func (v *PostDetail) Comments() []entity.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()

	comments := make([]entity.Comment, 0, len(v.comments))
	for _, comment := range v.comments {
		comments = append(comments, comment)
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments
}

func (v *PostDetail) Likes() []entity.Like {
	v.mu.Lock()
	defer v.mu.Unlock()

	likes := make([]entity.Like, 0, len(v.likes))
	for _, like := range v.likes {
		likes = append(likes, like)
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].UserID < likes[j].UserID })
	return likes
}

// LikeBy reports whether userID has a like in the current set and returns it.
func (v *PostDetail) LikeBy(userID string) (entity.Like, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	like, ok := v.likes[userID]
	return like, ok
}

// Post returns the displayed post with the merged comment thread and like
// set filled in, or nil before the first snapshot.
func (v *PostDetail) Post() *entity.Post {
	v.mu.Lock()
	post := v.post
	v.mu.Unlock()

	if post == nil {
		return nil
	}

	snapshot := *post
	snapshot.Comments = v.Comments()
	snapshot.PostLikes = v.Likes()
	snapshot.CommentCount = int64(len(snapshot.Comments))
	return &snapshot
}

func (v *PostDetail) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

func (v *PostDetail) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
