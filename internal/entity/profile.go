package entity

import "time"

// Profile is the identity record created at signup and edited from the
// profile screen. Image holds either a storage path or a full URL.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Image       string    `json:"image,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
