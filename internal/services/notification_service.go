package services

import (
	"fmt"

	"github.com/google/uuid"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

type NotificationServiceInterface interface {
	Notifications() []models.Notification
	Notify(kind string, from models.Author, postID string) models.Notification
	MarkRead(id string) bool
}

type NotificationService struct {
	notifications *storage.Collection[models.Notification]
}

func NewNotificationService(notifications *storage.Collection[models.Notification]) NotificationServiceInterface {
	return &NotificationService{notifications: notifications}
}

func (ns *NotificationService) Notifications() []models.Notification {
	return ns.notifications.All()
}

// Notify records a like/comment/follow notification, newest first.
func (ns *NotificationService) Notify(kind string, from models.Author, postID string) models.Notification {
	var message string
	switch kind {
	case models.NotificationLike:
		message = fmt.Sprintf("%s liked your post", from.Username)
	case models.NotificationComment:
		message = fmt.Sprintf("%s commented on your post", from.Username)
	case models.NotificationFollow:
		message = fmt.Sprintf("%s started following you", from.Username)
	default:
		message = fmt.Sprintf("%s interacted with you", from.Username)
	}

	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		FromUser:  from,
		Message:   message,
		CreatedAt: models.NewTimestamp(),
		PostID:    postID,
	}
	ns.notifications.Prepend(n)
	return n
}

func (ns *NotificationService) MarkRead(id string) bool {
	found := false
	ns.notifications.Update(func(items []models.Notification) []models.Notification {
		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
				found = true
				break
			}
		}
		return items
	})
	return found
}
