package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"vaccineai-service/internal/domain"
	"vaccineai-service/internal/dto"
	"vaccineai-service/internal/middleware"
)

func (h *Handler) ForecastPredict(c *gin.Context) {
	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.forecastUC.Predict(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrCombinationNotSupported) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":                  fmt.Sprintf("No model available for %s - %s", req.District, req.VaccineType),
				"available_combinations": h.forecastUC.SupportedCombinations(),
			})
			return
		}
		middleware.Logger(c).WithError(err).WithFields(log.Fields{
			"district":     req.District,
			"vaccine_type": req.VaccineType,
		}).Error("forecast prediction failed")
		c.JSON(statusForError(err), gin.H{
			"error":        fmt.Sprintf("Prediction failed: %v", err),
			"district":     req.District,
			"vaccine_type": req.VaccineType,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(req, result))
}

func (h *Handler) ForecastPredictAll(c *gin.Context) {
	var req dto.ForecastAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.forecastUC.PredictAll(c.Request.Context(), domain.DemandSignals{
		Temperature: req.Temperature,
		Rainfall:    req.Rainfall,
		StockLeft:   req.StockLeft,
		Holiday:     req.Holiday,
	})

	c.JSON(http.StatusOK, dto.ToForecastAllResponse(results))
}
