package controllers

import (
	"errors"
	"net/http"

	"github.com/spf13/cast"

	"socialnino/internal/models"
	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type PostsController struct {
	logger        providers.Logger
	posts         services.PostServiceInterface
	engagement    services.EngagementServiceInterface
	points        services.PointsServiceInterface
	notifications services.NotificationServiceInterface
	cache         providers.CacheProviderInterface
}

func NewPostsController(logger providers.Logger, posts services.PostServiceInterface, engagement services.EngagementServiceInterface, points services.PointsServiceInterface, notifications services.NotificationServiceInterface, cache providers.CacheProviderInterface) *PostsController {
	return &PostsController{
		logger:        logger,
		posts:         posts,
		engagement:    engagement,
		points:        points,
		notifications: notifications,
		cache:         cache,
	}
}

// invalidateFeed drops the cached feed views the mutating user could see.
func (pc *PostsController) invalidateFeed(user string) {
	pc.cache.Del(feedCacheKey(services.FeedModeAll, user))
	pc.cache.Del(feedCacheKey(services.FeedModeFollowing, user))
}

type createPostRequest struct {
	Author  models.Author `json:"author"`
	Caption string        `json:"caption"`
	Media   models.Media  `json:"media"`
}

func (pc *PostsController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var payload createPostRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)
	if payload.Author.Username == "" {
		payload.Author.Username = user
	}

	post := pc.posts.Create(payload.Author, payload.Caption, payload.Media)
	pc.points.Add("POST")
	pc.invalidateFeed(user)

	writeJSON(w, http.StatusCreated, post)
}

type postIDRequest struct {
	PostID string `json:"postId"`
}

func (pc *PostsController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var payload postIDRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	post, ok := pc.engagement.ToggleLike(payload.PostID)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if post.IsLiked {
		pc.points.Add("LIKE")
		pc.notifications.Notify(models.NotificationLike, models.Author{Username: user}, post.ID)
	}
	pc.invalidateFeed(user)

	writeJSON(w, http.StatusOK, post)
}

func (pc *PostsController) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	var payload postIDRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	post, ok := pc.engagement.ToggleBookmark(payload.PostID)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	pc.invalidateFeed(providers.CurrentUser(r))

	writeJSON(w, http.StatusOK, post)
}

type addCommentRequest struct {
	PostID          string `json:"postId"`
	ParentCommentID string `json:"parentCommentId"`
	Text            string `json:"text"`
}

func (pc *PostsController) AddComment(w http.ResponseWriter, r *http.Request) {
	var payload addCommentRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	comment, err := pc.posts.AddComment(payload.PostID, payload.ParentCommentID, user, payload.Text)
	if err != nil {
		if errors.Is(err, services.ErrReplyDepth) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
		} else {
			http.Error(w, "Not Found", http.StatusNotFound)
		}
		return
	}
	pc.points.Add("COMMENT")
	pc.notifications.Notify(models.NotificationComment, models.Author{Username: user}, payload.PostID)
	pc.invalidateFeed(user)

	writeJSON(w, http.StatusCreated, comment)
}

type toggleFollowRequest struct {
	PersonID any `json:"personId"`
}

func (pc *PostsController) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	var payload toggleFollowRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	started, ok := pc.engagement.ToggleFollow(cast.ToInt(payload.PersonID))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if started {
		pc.points.Add("FOLLOW")
		pc.notifications.Notify(models.NotificationFollow, models.Author{Username: user}, "")
	}
	pc.invalidateFeed(user)

	writeJSON(w, http.StatusOK, map[string]bool{"following": started})
}
