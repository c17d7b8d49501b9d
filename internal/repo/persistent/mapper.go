package persistent

import (
	"linkup/internal/entity"
	"linkup/internal/model"
)

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Image:       m.Image,
		Bio:         m.Bio,
		Address:     m.Address,
		CreatedAt:   m.CreatedAt,
	}
}

// toProfileSummary maps only the columns the feed joins select.
func toProfileSummary(m *model.ProfileModel) *entity.Profile {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.Profile{
		ID:    m.ID,
		Name:  m.Name,
		Image: m.Image,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		User:      toProfileSummary(&m.User),
		PostLikes: make([]entity.Like, len(m.PostLikes)),
	}

	if m.File != "" {
		post.File = entity.NewRemoteMedia(m.File)
	}

	for i := range m.PostLikes {
		post.PostLikes[i] = *ToLikeEntity(&m.PostLikes[i])
	}

	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			post.Comments[i] = *ToCommentEntity(&m.Comments[i])
		}
		post.CommentCount = int64(len(m.Comments))
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Body:      e.Body,
		CreatedAt: e.CreatedAt,
	}

	if e.File != nil && !e.File.IsLocal() {
		post.File = e.File.Remote
	}

	return post
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		CreatedAt: e.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		User:      toProfileSummary(&m.User),
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Title:      m.Title,
		Data:       m.Data,
		CreatedAt:  m.CreatedAt,
		Sender:     toProfileSummary(&m.Sender),
	}
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:         e.ID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Title:      e.Title,
		Data:       e.Data,
		CreatedAt:  e.CreatedAt,
	}
}
