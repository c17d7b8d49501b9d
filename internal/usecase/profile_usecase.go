package usecase

import (
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/pkg/logger"
)

// UpdateProfileInput carries a partial profile edit; nil fields stay
// untouched.
type UpdateProfileInput struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Image       *string `json:"image"`
	Bio         *string `json:"bio"`
	Address     *string `json:"address"`
}

type ProfileUseCase interface {
	Get(userID string) (*entity.Profile, error)
	Update(userID string, input UpdateProfileInput) error
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	logger      *logger.Logger
}

func NewProfileUseCase(profileRepo persistent.ProfileRepository, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{profileRepo: profileRepo, logger: logger}
}

func (uc *profileUseCase) Get(userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch the profile: %w", err)
	}
	return profile, nil
}

func (uc *profileUseCase) Update(userID string, input UpdateProfileInput) error {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.PhoneNumber != nil {
		fields["phoneNumber"] = *input.PhoneNumber
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}

	if err := uc.profileRepo.Update(userID, fields); err != nil {
		uc.logger.Error("Failed to update profile %s: %v", userID, err)
		return fmt.Errorf("could not update the profile: %w", err)
	}
	return nil
}
