package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the editorial surface: moderation, account
// review, taxonomy, redirects and CSV reports.
type AdminHandler struct {
	accountService  services.AccountService
	postService     services.PostService
	videoService    services.VideoService
	taxonomyService services.TaxonomyService
	exportService   services.ExportService
	httpHelper      *helper.HTTPHelper
}

func NewAdminHandler(
	accountService services.AccountService,
	postService services.PostService,
	videoService services.VideoService,
	taxonomyService services.TaxonomyService,
	exportService services.ExportService,
) *AdminHandler {
	return &AdminHandler{
		accountService:  accountService,
		postService:     postService,
		videoService:    videoService,
		taxonomyService: taxonomyService,
		exportService:   exportService,
		httpHelper:      &helper.HTTPHelper{},
	}
}

func (h *AdminHandler) UpdateAccountStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	var req models.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	journalist, err := h.accountService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, journalist)
}

func (h *AdminHandler) ModeratePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.ModerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Moderate(uint(id), req.Status)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) ModerateVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	var req models.ModerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoService.Moderate(uint(id), req.Status)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *AdminHandler) CreateRedirect(c *gin.Context) {
	var req models.CreateRedirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirect, err := h.taxonomyService.CreateRedirect(req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, redirect)
}

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.taxonomyService.CreateCategory(req.Name, req.Order)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

type createSubCategoryRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Tag        string `json:"tag"`
	Order      int    `json:"order"`
}

func (h *AdminHandler) CreateSubCategory(c *gin.Context) {
	var req createSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subCategory, err := h.taxonomyService.CreateSubCategory(req.CategoryID, req.Name, req.Tag, req.Order)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, subCategory)
}

func (h *AdminHandler) ExportNewsCSV(c *gin.Context) {
	h.streamCSV(c, "news_report", h.exportService.StreamNewsCSV)
}

func (h *AdminHandler) ExportVideoCSV(c *gin.Context) {
	h.streamCSV(c, "video_report", h.exportService.StreamVideoCSV)
}

func (h *AdminHandler) streamCSV(c *gin.Context, name string, stream func(w io.Writer) error) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := stream(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
