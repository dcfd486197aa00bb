package handlers

import (
	"net/http"
	"strconv"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService services.VideoService
	httpHelper   *helper.HTTPHelper
}

func NewVideoHandler(videoService services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService, httpHelper: &helper.HTTPHelper{}}
}

func (h *VideoHandler) Submit(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var req models.SubmitVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoService.Submit(journalistID.(uint), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	var req models.SubmitVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoService.Update(uint(id), journalistID.(uint), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) ListMine(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var params models.NewsListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeListParams(&params)

	videos, total, err := h.videoService.ListMine(journalistID.(uint), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":     videos,
		"total":      total,
		"pagination": h.httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *VideoHandler) ListPublic(c *gin.Context) {
	var params models.NewsListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeListParams(&params)

	videos, total, err := h.videoService.ListPublic(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":     videos,
		"total":      total,
		"pagination": h.httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *VideoHandler) GetPublic(c *gin.Context) {
	video, err := h.videoService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}
