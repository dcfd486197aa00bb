package handlers

import (
	"net/http"
	"strconv"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService services.GalleryService
	httpHelper     *helper.HTTPHelper
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, httpHelper: &helper.HTTPHelper{}}
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var req models.GalleryUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.galleryService.AddImages(journalistID.(uint), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"images": saved, "count": len(saved)})
}

func (h *GalleryHandler) List(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	images, err := h.galleryService.ListActive(journalistID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *GalleryHandler) Remove(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	if err := h.galleryService.Remove(uint(id), journalistID.(uint)); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
}
