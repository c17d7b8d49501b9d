package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key;column:id"`
	PostID    string    `gorm:"type:uuid;not null;index;column:postId"`
	UserID    string    `gorm:"type:uuid;not null;index;column:userId"`
	Text      string    `gorm:"not null;column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`

	User ProfileModel `gorm:"foreignKey:UserID;references:ID"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
