package services

import (
	"socialnino/internal/models"
	"socialnino/internal/storage"
)

// Collection constructors, one per persisted key, shared across services
// through the injector.

func NewPostCollection(store *storage.Store, reg *storage.Registry) *storage.Collection[models.Post] {
	return storage.NewCollection[models.Post](store, storage.KeyPosts, "posts", reg)
}

func NewPersonCollection(store *storage.Store, reg *storage.Registry) *storage.Collection[models.Person] {
	return storage.NewCollection[models.Person](store, storage.KeyPeople, "people", reg)
}

func NewStoryCollection(store *storage.Store, reg *storage.Registry) *storage.Collection[models.Story] {
	return storage.NewCollection[models.Story](store, storage.KeyStories, "stories", reg)
}

func NewNotificationCollection(store *storage.Store, reg *storage.Registry) *storage.Collection[models.Notification] {
	return storage.NewCollection[models.Notification](store, storage.KeyNotifications, "notifications", reg)
}
