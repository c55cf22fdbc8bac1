package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaccineai-service/internal/domain"
	"vaccineai-service/internal/dto"
	"vaccineai-service/internal/middleware"
)

func (h *Handler) DropoutPredict(c *gin.Context) {
	var req dto.DropoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.dropoutUC.Predict(c.Request.Context(), req.ToDomain())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("dropout prediction failed")
		c.JSON(statusForError(err), gin.H{
			"error":      fmt.Sprintf("Prediction failed: %v", err),
			"status":     "error",
			"input_data": dto.ToDropoutEcho(req),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToDropoutResponse(req, prediction))
}

func (h *Handler) DropoutModelInfo(c *gin.Context) {
	info, err := h.dropoutUC.ModelInfo(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMetadataUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "Model information not available",
				"status": "error",
			})
			return
		}
		middleware.Logger(c).WithError(err).Error("model info failed")
		c.JSON(statusForError(err), gin.H{
			"error":  fmt.Sprintf("Failed to get model info: %v", err),
			"status": "error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToModelInfoResponse(info))
}
