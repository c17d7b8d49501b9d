package persistent

import (
	"linkup/internal/entity"
	"linkup/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *entity.Profile, passwordHash string) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, string, error)
	Update(id string, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *entity.Profile, passwordHash string) error {
	profileModel := &model.ProfileModel{
		ID:          profile.ID,
		Name:        profile.Name,
		Email:       profile.Email,
		Password:    passwordHash,
		PhoneNumber: profile.PhoneNumber,
		Image:       profile.Image,
		Bio:         profile.Bio,
		Address:     profile.Address,
	}
	if err := r.db.Create(profileModel).Error; err != nil {
		return err
	}

	profile.ID = profileModel.ID
	profile.CreatedAt = profileModel.CreatedAt
	return nil
}

func (r *profileRepository) GetByID(id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.First(&profileModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return ToProfileEntity(&profileModel), nil
}

// GetByEmail returns the profile together with its password hash; the hash
// never appears on the entity itself.
func (r *profileRepository) GetByEmail(email string) (*entity.Profile, string, error) {
	var profileModel model.ProfileModel
	if err := r.db.First(&profileModel, "email = ?", email).Error; err != nil {
		return nil, "", translate(err)
	}
	return ToProfileEntity(&profileModel), profileModel.Password, nil
}

// Update applies a partial update; fields absent from the map stay untouched.
func (r *profileRepository) Update(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	res := r.db.Model(&model.ProfileModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
