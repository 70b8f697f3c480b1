package controllers

import (
	"net/http"

	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type FeedController struct {
	logger providers.Logger
	feed   services.FeedServiceInterface
	cache  providers.CacheProviderInterface
}

func NewFeedController(logger providers.Logger, feed services.FeedServiceInterface, cache providers.CacheProviderInterface) *FeedController {
	return &FeedController{
		logger: logger,
		feed:   feed,
		cache:  cache,
	}
}

func feedCacheKey(mode, user string) string {
	return "feed:" + mode + ":" + user
}

func (fc *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = services.FeedModeAll
	}
	user := providers.CurrentUser(r)

	serveFromCacheOrCompute(w, fc.cache, feedCacheKey(mode, user), func() (any, error) {
		return fc.feed.Feed(mode, user), nil
	})
}

func (fc *FeedController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fc.feed.Timeline())
}
