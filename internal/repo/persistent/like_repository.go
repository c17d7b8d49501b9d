package persistent

import (
	"linkup/internal/entity"
	"linkup/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *entity.Like) error
	Delete(postID, userID string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the (userId, postId) pair without checking for an existing
// row. Double-liking is guarded optimistically by the caller; the unique
// index surfaces any slip as a failed insert.
func (r *likeRepository) Create(like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if err := r.db.Create(likeModel).Error; err != nil {
		return err
	}

	like.ID = likeModel.ID
	like.CreatedAt = likeModel.CreatedAt
	return nil
}

func (r *likeRepository) Delete(postID, userID string) error {
	res := r.db.Where(`"postId" = ? AND "userId" = ?`, postID, userID).Delete(&model.LikeModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
