package usecase

import (
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/pkg/jwt"
	"linkup/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	// Register creates the profile record at signup and returns it with a
	// session token.
	Register(name, email, password string) (*entity.Profile, string, error)
	Login(email, password string) (*entity.Profile, string, error)
}

type authUseCase struct {
	profileRepo persistent.ProfileRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(profileRepo persistent.ProfileRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		profileRepo: profileRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(name, email, password string) (*entity.Profile, string, error) {
	if _, _, err := uc.profileRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("an account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	profile := &entity.Profile{
		Name:  name,
		Email: email,
	}
	if err := uc.profileRepo.Create(profile, string(hashedPassword)); err != nil {
		uc.logger.Error("Failed to create profile: %v", err)
		return nil, "", fmt.Errorf("failed to create account")
	}

	token, err := uc.jwtService.GenerateToken(profile.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return profile, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.Profile, string, error) {
	profile, passwordHash, err := uc.profileRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(profile.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return profile, token, nil
}
