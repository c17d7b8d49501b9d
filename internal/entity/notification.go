package entity

import "time"

// Notification is the side-channel record written when someone interacts
// with another user's content. Data is a JSON-encoded payload, e.g.
// {"postId": ..., "commentId": ...}.
type Notification struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Title      string    `json:"title"`
	Data       string    `json:"data"`
	CreatedAt  time.Time `json:"created_at"`
	Sender     *Profile  `json:"sender,omitempty"`
}
