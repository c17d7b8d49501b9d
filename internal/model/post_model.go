package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string    `gorm:"type:uuid;primary_key;column:id"`
	UserID    string    `gorm:"type:uuid;not null;index;column:userId"`
	Body      string    `gorm:"column:body"`
	File      string    `gorm:"column:file"`
	CreatedAt time.Time `gorm:"column:created_at"`

	User      ProfileModel   `gorm:"foreignKey:UserID;references:ID"`
	PostLikes []LikeModel    `gorm:"foreignKey:PostID;references:ID"`
	Comments  []CommentModel `gorm:"foreignKey:PostID;references:ID"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
