package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID          string    `gorm:"type:uuid;primary_key;column:id"`
	Name        string    `gorm:"not null;column:name"`
	Email       string    `gorm:"uniqueIndex;not null;column:email"`
	Password    string    `gorm:"not null;column:password"`
	PhoneNumber string    `gorm:"column:phoneNumber"`
	Image       string    `gorm:"column:image"`
	Bio         string    `gorm:"column:bio"`
	Address     string    `gorm:"column:address"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
