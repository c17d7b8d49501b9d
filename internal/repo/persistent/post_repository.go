package persistent

import (
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Insert(post *entity.Post) error
	Update(post *entity.Post) (*entity.Post, error)
	GetDetail(id string) (*entity.Post, error)
	List(limit int, ownerID string) ([]*entity.Post, error)
	Delete(id string) error
	GetOwnerID(id string) (string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func selectProfileSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "image")
}

// Insert persists a new post and writes the generated id and timestamp back
// into post. The attachment must already be a remote path; local handles are
// never persisted.
func (r *postRepository) Insert(post *entity.Post) error {
	if post.File.IsLocal() {
		return fmt.Errorf("post has an unresolved local attachment")
	}

	postModel := ToPostModel(post)
	if err := r.db.Omit(clause.Associations).Create(postModel).Error; err != nil {
		return err
	}

	post.ID = postModel.ID
	post.CreatedAt = postModel.CreatedAt
	return nil
}

// Update updates only the targeted row's own columns and returns the stored
// record.
func (r *postRepository) Update(post *entity.Post) (*entity.Post, error) {
	if post.File.IsLocal() {
		return nil, fmt.Errorf("post has an unresolved local attachment")
	}

	fields := map[string]interface{}{
		"body": post.Body,
		"file": "",
	}
	if post.File != nil {
		fields["file"] = post.File.Remote
	}

	res := r.db.Model(&model.PostModel{}).Where("id = ?", post.ID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var updated model.PostModel
	if err := r.db.First(&updated, "id = ?", post.ID).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&updated), nil
}

// GetDetail loads one post with its owner, like rows and the full comment
// thread (each comment joined with its author), comments newest-first.
func (r *postRepository) GetDetail(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Preload("User", selectProfileSummary).
		Preload("PostLikes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User", selectProfileSummary).
		First(&postModel, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}

	post := ToPostEntity(&postModel)
	post.CommentCount = int64(len(post.Comments))
	return post, nil
}

// List returns posts newest-first joined with the owner profile summary, all
// like rows and a comment-count projection. ownerID filters to one author
// when set; limit bounds the result size.
func (r *postRepository) List(limit int, ownerID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := r.db.
		Preload("User", selectProfileSummary).
		Preload("PostLikes").
		Order("created_at DESC")

	if ownerID != "" {
		query = query.Where(`"userId" = ?`, ownerID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	ids := make([]string, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
		ids[i] = postModels[i].ID
	}

	if err := r.fillCommentCounts(posts, ids); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) fillCommentCounts(posts []*entity.Post, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var rows []struct {
		PostID string `gorm:"column:postId"`
		Count  int64  `gorm:"column:count"`
	}
	err := r.db.Model(&model.CommentModel{}).
		Select(`"postId", count(*) as count`).
		Where(`"postId" IN ?`, ids).
		Group(`"postId"`).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	for _, post := range posts {
		post.CommentCount = counts[post.ID]
	}
	return nil
}

func (r *postRepository) Delete(id string) error {
	res := r.db.Delete(&model.PostModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) GetOwnerID(id string) (string, error) {
	var postModel model.PostModel
	err := r.db.Select(`"userId"`).First(&postModel, "id = ?", id).Error
	if err != nil {
		return "", translate(err)
	}
	return postModel.UserID, nil
}
