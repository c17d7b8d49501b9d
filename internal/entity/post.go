package entity

import "time"

// Post is a feed entry. User, PostLikes and Comments are denormalized joins
// populated depending on the query: the feed list carries a comment count
// projection, the detail query carries the full comment thread.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Body         string    `json:"body"`
	File         *Media    `json:"file,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	User         *Profile  `json:"user,omitempty"`
	PostLikes    []Like    `json:"postLikes"`
	Comments     []Comment `json:"comments,omitempty"`
	CommentCount int64     `json:"commentCount"`
}

type Like struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
