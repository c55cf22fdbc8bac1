package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaccineai-service/internal/dto"
	"vaccineai-service/internal/middleware"
)

func (h *Handler) ClusterPredict(c *gin.Context) {
	var req dto.ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.clusterUC.Profile(c.Request.Context(), req.ToDomain())
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("area_id", req.AreaID).Error("cluster profiling failed")
		c.JSON(statusForError(err), gin.H{
			"error":  fmt.Sprintf("Prediction failed: %v", err),
			"status": "error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToClusterResponse(req, profile))
}
