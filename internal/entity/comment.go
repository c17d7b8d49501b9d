package entity

import "time"

// Comment belongs to one post. User is the denormalized author profile,
// present when the comment was fetched with a join or enriched by the
// realtime listener.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	User      *Profile  `json:"user,omitempty"`
}
