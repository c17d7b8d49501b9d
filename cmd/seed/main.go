package main

import (
	"fmt"

	"linkup/internal/model"
	"linkup/pkg/config"
	"linkup/pkg/database"
	"linkup/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		name     string
		bio      string
		password string
	}{
		{"alice@test.com", "Alice", "Coffee first, everything else later", "password123"},
		{"bob@test.com", "Bob", "Weekend hiker", "password123"},
		{"charlie@test.com", "Charlie", "", "password123"},
		{"diana@test.com", "Diana", "Sharing what I cook", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		profile := &model.ProfileModel{
			Name:     userData.name,
			Email:    userData.email,
			Password: string(hashedPassword),
			Bio:      userData.bio,
		}

		var existing model.ProfileModel
		result := db.Where("email = ?", profile.Email).First(&existing)
		if result.Error == nil {
			log.Info("Profile %s already exists, skipping", profile.Email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(profile).Error; err != nil {
			log.Error("Failed to create profile %s: %v", profile.Email, err)
			continue
		}

		log.Info("Created profile: %s (%s)", profile.Name, profile.Email)
		userIDs = append(userIDs, profile.ID)
	}

	if len(userIDs) < 2 {
		return fmt.Errorf("not enough profiles to seed posts")
	}

	postBodies := []string{
		"Trying out the new feed. Hello everyone!",
		"Sunday hike was worth every step.",
		"Anyone else up way too late again?",
	}

	postIDs := make([]string, 0, len(postBodies))
	for i, body := range postBodies {
		post := &model.PostModel{
			UserID: userIDs[i%len(userIDs)],
			Body:   body,
		}
		if err := db.Create(post).Error; err != nil {
			log.Error("Failed to create post: %v", err)
			continue
		}
		postIDs = append(postIDs, post.ID)
	}

	for _, postID := range postIDs {
		like := &model.LikeModel{
			UserID: userIDs[len(userIDs)-1],
			PostID: postID,
		}
		if err := db.Create(like).Error; err != nil {
			log.Error("Failed to create like: %v", err)
		}
	}

	if len(postIDs) > 0 {
		comment := &model.CommentModel{
			PostID: postIDs[0],
			UserID: userIDs[1],
			Text:   "Welcome to the feed!",
		}
		if err := db.Create(comment).Error; err != nil {
			log.Error("Failed to create comment: %v", err)
		}
	}

	return nil
}
