package handler

import (
	"context"
	"net/http"
	"time"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/middleware"
	"adaptrack/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AdaptationHandler serves the type-dispatched update route: one PUT that
// resolves to either an AnimeSeason or an AnimeAdaptation.
type AdaptationHandler struct {
	svc service.AdaptationService
}

func NewAdaptationHandler(svc service.AdaptationService) *AdaptationHandler {
	return &AdaptationHandler{svc: svc}
}

func (h *AdaptationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/:adaptation_id", middleware.RequireAdmin(), h.Update)
}

func (h *AdaptationHandler) Update(c *gin.Context) {
	var in dto.UpdateAdaptationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdateAdaptation(ctx, c.Param("adaptation_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
