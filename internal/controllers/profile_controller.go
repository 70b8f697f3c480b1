package controllers

import (
	"net/http"

	"socialnino/internal/models"
	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type ProfileController struct {
	logger        providers.Logger
	profile       services.ProfileServiceInterface
	stories       services.StoryServiceInterface
	notifications services.NotificationServiceInterface
}

func NewProfileController(logger providers.Logger, profile services.ProfileServiceInterface, stories services.StoryServiceInterface, notifications services.NotificationServiceInterface) *ProfileController {
	return &ProfileController{
		logger:        logger,
		profile:       profile,
		stories:       stories,
		notifications: notifications,
	}
}

func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.profile.Get())
}

func (pc *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload models.UserProfile
	if !decodeBody(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, pc.profile.Update(payload))
}

func (pc *ProfileController) GetStories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.stories.Stories())
}

type createStoryRequest struct {
	Avatar string       `json:"avatar"`
	Media  models.Media `json:"media"`
}

func (pc *ProfileController) CreateStory(w http.ResponseWriter, r *http.Request) {
	var payload createStoryRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)
	writeJSON(w, http.StatusCreated, pc.stories.Create(user, payload.Avatar, payload.Media))
}

func (pc *ProfileController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.notifications.Notifications())
}

type markNotificationRequest struct {
	ID string `json:"id"`
}

func (pc *ProfileController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	var payload markNotificationRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if !pc.notifications.MarkRead(payload.ID) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
