package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/realtime"
	"linkup/internal/repo/persistent"
	"linkup/pkg/logger"
)

// CommentPublisher pushes comment insert events onto the realtime change
// feed. *realtime.Bus satisfies it.
type CommentPublisher interface {
	PublishCommentInsert(ctx context.Context, event realtime.CommentInserted) error
}

// NotificationPublisher hands notification tasks to the side-channel queue.
// *queue.Client satisfies it.
type NotificationPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

type CommentUseCase interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	Remove(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	bus         CommentPublisher
	queueClient NotificationPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	bus CommentPublisher,
	queueClient NotificationPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		bus:         bus,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Create inserts the comment, pushes the insert event onto the post's
// realtime channel, and notifies the post owner when someone else commented.
// Both side effects are fire-and-forget; only the insert decides success.
func (uc *commentUseCase) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("could not create your comment: %w", err)
	}

	if uc.bus != nil {
		event := realtime.CommentInserted{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		}
		if err := uc.bus.PublishCommentInsert(ctx, event); err != nil {
			uc.logger.Error("Failed to publish comment event for post %s: %v", comment.PostID, err)
		}
	}

	uc.notifyPostOwner(comment)

	return comment, nil
}

func (uc *commentUseCase) notifyPostOwner(comment *entity.Comment) {
	if uc.queueClient == nil {
		return
	}

	owner, err := uc.postRepo.GetOwnerID(comment.PostID)
	if err != nil {
		uc.logger.Warn("Could not resolve owner of post %s: %v", comment.PostID, err)
		return
	}
	if owner == comment.UserID {
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"postId":    comment.PostID,
		"commentId": comment.ID,
	})

	task := map[string]interface{}{
		"type":       "comment",
		"senderId":   comment.UserID,
		"receiverId": owner,
		"title":      "commented on your post",
		"data":       string(payload),
		"priority":   3,
	}

	go func() {
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish comment notification: %v", err)
		}
	}()
}

// Remove deletes a comment. Allowed for the comment author and the post
// owner, mirroring who sees the delete action on the thread.
func (uc *commentUseCase) Remove(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return fmt.Errorf("could not remove the comment: %w", err)
	}

	if comment.UserID != userID {
		owner, err := uc.postRepo.GetOwnerID(comment.PostID)
		if err != nil || owner != userID {
			return fmt.Errorf("you can only delete your own comments")
		}
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("could not remove the comment: %w", err)
	}
	return nil
}
