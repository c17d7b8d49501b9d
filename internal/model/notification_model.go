package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID         string    `gorm:"type:uuid;primary_key;column:id"`
	SenderID   string    `gorm:"type:uuid;not null;column:senderId"`
	ReceiverID string    `gorm:"type:uuid;not null;index;column:receiverId"`
	Title      string    `gorm:"not null;column:title"`
	Data       string    `gorm:"column:data"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Sender ProfileModel `gorm:"foreignKey:SenderID;references:ID"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
