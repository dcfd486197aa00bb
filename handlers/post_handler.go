package handlers

import (
	"net/http"
	"strconv"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	httpHelper  *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService, httpHelper: &helper.HTTPHelper{}}
}

func (h *PostHandler) Submit(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var req models.SubmitNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Submit(journalistID.(uint), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.SubmitNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Update(uint(id), journalistID.(uint), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListMine(c *gin.Context) {
	journalistID, _ := c.Get("journalist_id")

	var params models.NewsListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeListParams(&params)

	posts, total, err := h.postService.ListMine(journalistID.(uint), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"total":      total,
		"pagination": h.httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *PostHandler) ListPublic(c *gin.Context) {
	var params models.NewsListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	normalizeListParams(&params)

	posts, total, err := h.postService.ListPublic(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"total":      total,
		"pagination": h.httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *PostHandler) GetPublic(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func normalizeListParams(params *models.NewsListParams) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > 100 {
		params.Limit = 100
	}
}
