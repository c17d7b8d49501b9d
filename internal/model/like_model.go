package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel rows have (userId, postId) as their natural key, backed by a
// unique index. The repository does not pre-check duplicates.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key;column:id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_user_post;column:userId"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_user_post;column:postId"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (LikeModel) TableName() string {
	return "postLikes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
