package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/services"
	"socialnino/internal/testutil"
)

func newPointsFixture(t *testing.T) (*PointsController, services.PointsServiceInterface) {
	t.Helper()
	store, reg := newTestStore(t)
	points := services.NewPointsService(store, reg, &testutil.MockLogger{})
	return NewPointsController(&testutil.MockLogger{}, points), points
}

func decodePoints(t *testing.T, rr *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Total
}

func TestGetPoints_Empty(t *testing.T) {
	pc, _ := newPointsFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/points", nil)
	rr := httptest.NewRecorder()
	pc.GetPoints(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, decodePoints(t, rr))
}

func TestGetPoints_AfterAwards(t *testing.T) {
	pc, points := newPointsFixture(t)
	points.Add("POST")
	points.Add("LIKE")

	req := httptest.NewRequest(http.MethodGet, "/points", nil)
	rr := httptest.NewRecorder()
	pc.GetPoints(rr, req)

	assert.Equal(t, 6, decodePoints(t, rr))
}

func TestResetPoints(t *testing.T) {
	pc, points := newPointsFixture(t)
	points.Add("CHALLENGE")

	req := httptest.NewRequest(http.MethodPost, "/points/reset", nil)
	rr := httptest.NewRecorder()
	pc.ResetPoints(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, decodePoints(t, rr))
	assert.Equal(t, 0, points.Total())
}
