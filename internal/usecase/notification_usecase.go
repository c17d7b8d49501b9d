package usecase

import (
	"fmt"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/pkg/logger"
)

type NotificationUseCase interface {
	List(receiverID string, limit, offset int) ([]*entity.Notification, error)
	// HandleTask drains one queued notification task into the notifications
	// table. Wired as the queue consumer handler.
	HandleTask(task map[string]interface{}) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *notificationUseCase) List(receiverID string, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListByReceiver(receiverID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list notifications for %s: %v", receiverID, err)
		return nil, fmt.Errorf("could not fetch notifications: %w", err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) HandleTask(task map[string]interface{}) error {
	senderID, _ := task["senderId"].(string)
	receiverID, _ := task["receiverId"].(string)
	title, _ := task["title"].(string)
	data, _ := task["data"].(string)

	if senderID == "" || receiverID == "" {
		return fmt.Errorf("notification task missing sender or receiver")
	}

	notification := &entity.Notification{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Title:      title,
		Data:       data,
	}
	if err := uc.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	uc.logger.Info("Stored notification %s for user %s", notification.ID, receiverID)
	return nil
}
