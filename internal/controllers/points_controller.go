package controllers

import (
	"net/http"

	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type PointsController struct {
	logger providers.Logger
	points services.PointsServiceInterface
}

func NewPointsController(logger providers.Logger, points services.PointsServiceInterface) *PointsController {
	return &PointsController{
		logger: logger,
		points: points,
	}
}

type pointsResponse struct {
	Total int `json:"total"`
}

func (pc *PointsController) GetPoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pointsResponse{Total: pc.points.Total()})
}

func (pc *PointsController) ResetPoints(w http.ResponseWriter, r *http.Request) {
	pc.points.Reset()
	writeJSON(w, http.StatusOK, pointsResponse{Total: 0})
}
