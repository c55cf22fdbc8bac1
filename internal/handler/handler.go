package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vaccineai-service/internal/usecase"
)

type Handler struct {
	forecastUC *usecase.ForecastUseCase
	dropoutUC  *usecase.DropoutUseCase
	clusterUC  *usecase.ClusterUseCase
}

func New(forecastUC *usecase.ForecastUseCase, dropoutUC *usecase.DropoutUseCase, clusterUC *usecase.ClusterUseCase) *Handler {
	return &Handler{forecastUC: forecastUC, dropoutUC: dropoutUC, clusterUC: clusterUC}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Forecasting
	api.POST("/forecast/predict", h.ForecastPredict)
	api.POST("/forecast/predict-all", h.ForecastPredictAll)

	// Dropout
	api.POST("/dropout/predict", h.DropoutPredict)
	api.GET("/dropout/model-info", h.DropoutModelInfo)

	// Cluster
	api.POST("/cluster/predict", h.ClusterPredict)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "VaccineAI Backend API"})
}
