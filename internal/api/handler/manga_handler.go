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

type MangaHandler struct {
	svc service.MangaService
}

func NewMangaHandler(svc service.MangaService) *MangaHandler {
	return &MangaHandler{svc: svc}
}

func (h *MangaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListByLicense)
	rg.GET("/:manga_id", h.GetWork)

	// Admin-only routes. Part routes are registered before the wildcard
	// ones resolve, gin matches literal segments first.
	rg.POST("", middleware.RequireAdmin(), h.CreateWork)
	rg.PUT("/:manga_id", middleware.RequireAdmin(), h.UpdateWork)
	rg.DELETE("/:manga_id", middleware.RequireAdmin(), h.DeleteWork)

	rg.POST("/part", middleware.RequireAdmin(), h.CreatePart)
	rg.PUT("/part/:part_id", middleware.RequireAdmin(), h.UpdatePart)
	rg.DELETE("/part/:part_id", middleware.RequireAdmin(), h.DeletePart)
	rg.POST("/part/link", middleware.RequireAdmin(), h.CreatePartLink)
}

func (h *MangaHandler) ListByLicense(c *gin.Context) {
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

func (h *MangaHandler) GetWork(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetWork(ctx, c.Param("manga_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MangaHandler) CreateWork(c *gin.Context) {
	var in dto.CreateMangaWorkDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreateWork(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MangaHandler) UpdateWork(c *gin.Context) {
	var in dto.UpdateMangaWorkDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdateWork(ctx, c.Param("manga_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MangaHandler) DeleteWork(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.DeleteWork(ctx, c.Param("manga_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *MangaHandler) CreatePart(c *gin.Context) {
	var in dto.CreateMangaPartDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreatePart(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MangaHandler) UpdatePart(c *gin.Context) {
	var in dto.UpdateMangaPartDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdatePart(ctx, c.Param("part_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MangaHandler) DeletePart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.DeletePart(ctx, c.Param("part_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *MangaHandler) CreatePartLink(c *gin.Context) {
	var in dto.CreateMangaPartToAnimeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	created, err := h.svc.CreatePartLink(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
