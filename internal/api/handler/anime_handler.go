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

type AnimeHandler struct {
	svc service.AnimeService
}

func NewAnimeHandler(svc service.AnimeService) *AnimeHandler {
	return &AnimeHandler{svc: svc}
}

func (h *AnimeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListByLicense)
	rg.GET("/:anime_id", h.GetAdaptation)
	rg.GET("/:anime_id/links", h.GetMangaLinks)

	// Admin-only routes
	rg.POST("", middleware.RequireAdmin(), h.CreateAdaptation)
	rg.PUT("/:anime_id", middleware.RequireAdmin(), h.UpdateAdaptation)
	rg.DELETE("/:anime_id", middleware.RequireAdmin(), h.DeleteAdaptation)

	rg.POST("/season", middleware.RequireAdmin(), h.CreateSeason)
	rg.PUT("/season/:season_id", middleware.RequireAdmin(), h.UpdateSeason)
	rg.DELETE("/season/:season_id", middleware.RequireAdmin(), h.DeleteSeason)
	rg.POST("/link", middleware.RequireAdmin(), h.CreateMangaLink)
}

func (h *AnimeHandler) ListByLicense(c *gin.Context) {
	licenseID := c.Query("licenseId")
	if licenseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "licenseId query parameter is required"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListByLicense(ctx, licenseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AnimeHandler) GetMangaLinks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	links, err := h.svc.GetMangaLinks(ctx, c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *AnimeHandler) GetAdaptation(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	a, err := h.svc.GetAdaptation(ctx, c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AnimeHandler) CreateAdaptation(c *gin.Context) {
	var in dto.CreateAnimeAdaptationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreateAdaptation(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AnimeHandler) UpdateAdaptation(c *gin.Context) {
	var in dto.UpdateAnimeAdaptationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdateAdaptationFields(ctx, c.Param("anime_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AnimeHandler) DeleteAdaptation(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.DeleteAdaptation(ctx, c.Param("anime_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *AnimeHandler) CreateSeason(c *gin.Context) {
	var in dto.CreateAnimeSeasonDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreateSeason(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AnimeHandler) UpdateSeason(c *gin.Context) {
	var in dto.UpdateAnimeSeasonDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdateSeason(ctx, c.Param("season_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AnimeHandler) DeleteSeason(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.DeleteSeason(ctx, c.Param("season_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *AnimeHandler) CreateMangaLink(c *gin.Context) {
	var in dto.CreateMangaToAnimeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreateMangaLink(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
