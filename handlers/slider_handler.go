package handlers

import (
	"net/http"
	"strconv"

	"armust-news-cms/helper"
	"armust-news-cms/models"
	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

// SliderHandler serves the homepage carousel: a public listing plus
// staff CRUD behind the admin group.
type SliderHandler struct {
	sliderService services.SliderService
	httpHelper    *helper.HTTPHelper
}

func NewSliderHandler(sliderService services.SliderService) *SliderHandler {
	return &SliderHandler{
		sliderService: sliderService,
		httpHelper:    &helper.HTTPHelper{},
	}
}

// List serves the active slides in display order.
func (h *SliderHandler) List(c *gin.Context) {
	sliders, err := h.sliderService.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sliders": sliders})
}

func (h *SliderHandler) Create(c *gin.Context) {
	var req models.SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slider, err := h.sliderService.Create(c.GetUint("user_id"), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, slider)
}

func (h *SliderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slider ID"})
		return
	}

	var req models.SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slider, err := h.sliderService.Update(uint(id), req)
	if err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, slider)
}

func (h *SliderHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slider ID"})
		return
	}

	if err := h.sliderService.Deactivate(uint(id)); err != nil {
		h.httpHelper.SendErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "slider removed"})
}
