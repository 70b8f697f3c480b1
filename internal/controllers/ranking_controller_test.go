package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/models"
	"socialnino/internal/services"
	"socialnino/internal/structures"
	"socialnino/internal/testutil"
)

func newRankingFixture(t *testing.T) (*RankingController, services.RankingServiceInterface, services.PointsServiceInterface, *testutil.MockCache) {
	t.Helper()
	store, reg := newTestStore(t)
	ranking := services.NewRankingService(&structures.Config{}, store)
	points := services.NewPointsService(store, reg, &testutil.MockLogger{})
	cache := testutil.NewMockCache()
	return NewRankingController(&testutil.MockLogger{}, ranking, points, cache), ranking, points, cache
}

func TestGetRanking_EmptyBucket(t *testing.T) {
	rc, _, _, _ := newRankingFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
	rr := httptest.NewRecorder()
	rc.GetRanking(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestSubmitScore_RequiresUser(t *testing.T) {
	rc, _, _, _ := newRankingFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/ranking", strings.NewReader(`{"score":100}`))
	rr := httptest.NewRecorder()
	rc.SubmitScore(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitScore_InsertsEntry(t *testing.T) {
	rc, ranking, _, _ := newRankingFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/ranking?user=nino", strings.NewReader(`{"score":100}`))
	rr := httptest.NewRecorder()
	rc.SubmitScore(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var entries []models.RankingEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "nino", entries[0].Username)
	assert.Equal(t, 100, entries[0].Score)

	stored := ranking.Load(ranking.CurrentBucket())
	assert.Equal(t, entries, stored)
}

func TestSubmitScore_StringifiedScore(t *testing.T) {
	rc, _, _, _ := newRankingFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/ranking?user=nino", strings.NewReader(`{"score":"250"}`))
	rr := httptest.NewRecorder()
	rc.SubmitScore(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var entries []models.RankingEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 250, entries[0].Score)
}

func TestSubmitScore_InvalidatesCache(t *testing.T) {
	rc, ranking, _, cache := newRankingFixture(t)
	key := "ranking:" + ranking.CurrentBucket()
	cache.Set(key, []byte("[]"))

	req := httptest.NewRequest(http.MethodPost, "/ranking?user=nino", strings.NewReader(`{"score":10}`))
	rr := httptest.NewRecorder()
	rc.SubmitScore(rr, req)

	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestSubmitScore_AwardsGamePoints(t *testing.T) {
	rc, _, points, _ := newRankingFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/ranking?user=nino", strings.NewReader(`{"score":10,"game":"challenge"}`))
	rr := httptest.NewRecorder()
	rc.SubmitScore(rr, req)
	assert.Equal(t, 10, points.Total())

	req = httptest.NewRequest(http.MethodPost, "/ranking?user=nino", strings.NewReader(`{"score":20,"game":"quiz"}`))
	rr = httptest.NewRecorder()
	rc.SubmitScore(rr, req)
	assert.Equal(t, 18, points.Total())
}

func TestGetRanking_ServesFromCache(t *testing.T) {
	rc, ranking, _, cache := newRankingFixture(t)
	cache.Set("ranking:"+ranking.CurrentBucket(), []byte(`[{"username":"cached","score":1}]`))

	req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
	rr := httptest.NewRecorder()
	rc.GetRanking(rr, req)

	assert.Contains(t, rr.Body.String(), "cached")
}
