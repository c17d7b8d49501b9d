package persistent

import (
	"linkup/internal/entity"
	"linkup/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	if err := r.db.Omit(clause.Associations).Create(notificationModel).Error; err != nil {
		return err
	}

	notification.ID = notificationModel.ID
	notification.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (r *notificationRepository) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	query := r.db.
		Preload("Sender", selectProfileSummary).
		Where(`"receiverId" = ?`, receiverID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}
