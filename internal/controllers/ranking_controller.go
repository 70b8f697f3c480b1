package controllers

import (
	"net/http"

	"github.com/spf13/cast"

	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type RankingController struct {
	logger  providers.Logger
	ranking services.RankingServiceInterface
	points  services.PointsServiceInterface
	cache   providers.CacheProviderInterface
}

func NewRankingController(logger providers.Logger, ranking services.RankingServiceInterface, points services.PointsServiceInterface, cache providers.CacheProviderInterface) *RankingController {
	return &RankingController{
		logger:  logger,
		ranking: ranking,
		points:  points,
		cache:   cache,
	}
}

func (rc *RankingController) GetRanking(w http.ResponseWriter, r *http.Request) {
	bucket := rc.ranking.CurrentBucket()
	serveFromCacheOrCompute(w, rc.cache, "ranking:"+bucket, func() (any, error) {
		return rc.ranking.Load(bucket), nil
	})
}

type submitScoreRequest struct {
	Score any    `json:"score"`
	Game  string `json:"game"`
}

func (rc *RankingController) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var payload submitScoreRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)
	if user == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	bucket := rc.ranking.CurrentBucket()
	entries := rc.ranking.Submit(bucket, user, cast.ToInt(payload.Score))
	rc.cache.Del("ranking:" + bucket)

	// Mini-game completion feeds the points ledger alongside the ranking.
	switch payload.Game {
	case "challenge":
		rc.points.Add("CHALLENGE")
	case "quiz":
		rc.points.Add("QUIZ")
	}

	writeJSON(w, http.StatusOK, entries)
}
