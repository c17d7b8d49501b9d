package usecase

import (
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/pkg/logger"
)

const (
	imageFolder = "postImages"
	videoFolder = "postVideos"
)

type PostUseCase interface {
	// CreateOrUpdate persists a post: a local attachment is uploaded first,
	// then the presence of an id selects update or insert. An upload failure
	// aborts before any database write, and only the owner may update.
	CreateOrUpdate(post *entity.Post) (*entity.Post, error)
	List(limit int, ownerID string) ([]*entity.Post, error)
	GetDetail(postID string) (*entity.Post, error)
	Remove(postID, userID string) error
	Like(userID, postID string) error
	Unlike(postID, userID string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	likeRepo persistent.LikeRepository
	media    MediaUseCase
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	media MediaUseCase,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		likeRepo: likeRepo,
		media:    media,
		logger:   logger,
	}
}

func (uc *postUseCase) CreateOrUpdate(post *entity.Post) (*entity.Post, error) {
	// Resolve ownership before touching storage so a rejected edit uploads
	// nothing.
	if post.ID != "" {
		owner, err := uc.postRepo.GetOwnerID(post.ID)
		if err != nil {
			return nil, fmt.Errorf("could not update your post: %w", err)
		}
		if owner != post.UserID {
			return nil, fmt.Errorf("you can only update your own posts")
		}
	}

	if post.File.IsLocal() {
		folder := videoFolder
		if post.File.Kind() == entity.MediaImage {
			folder = imageFolder
		}

		url, err := uc.media.Upload(folder, post.File.Local)
		if err != nil {
			return nil, err
		}
		post.File = entity.NewRemoteMedia(url)
	}

	if post.ID != "" {
		updated, err := uc.postRepo.Update(post)
		if err != nil {
			uc.logger.Error("Failed to update post %s: %v", post.ID, err)
			return nil, fmt.Errorf("could not update your post: %w", err)
		}
		return updated, nil
	}

	if err := uc.postRepo.Insert(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("could not create your post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) List(limit int, ownerID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(limit, ownerID)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("could not fetch the posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) GetDetail(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetDetail(postID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch the post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) Remove(postID, userID string) error {
	owner, err := uc.postRepo.GetOwnerID(postID)
	if err != nil {
		return fmt.Errorf("could not remove the post: %w", err)
	}
	if owner != userID {
		return fmt.Errorf("you can only delete your own posts")
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("could not remove the post: %w", err)
	}
	return nil
}

func (uc *postUseCase) Like(userID, postID string) error {
	like := &entity.Like{UserID: userID, PostID: postID}
	if err := uc.likeRepo.Create(like); err != nil {
		uc.logger.Error("Failed to create like (%s, %s): %v", userID, postID, err)
		return fmt.Errorf("could not like the post: %w", err)
	}
	return nil
}

func (uc *postUseCase) Unlike(postID, userID string) error {
	if err := uc.likeRepo.Delete(postID, userID); err != nil {
		uc.logger.Error("Failed to remove like (%s, %s): %v", userID, postID, err)
		return fmt.Errorf("could not unlike the post: %w", err)
	}
	return nil
}
