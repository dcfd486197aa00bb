package handlers

import (
	"net/http"
	"strconv"

	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	taxonomyService services.TaxonomyService
}

func NewCategoryHandler(taxonomyService services.TaxonomyService) *CategoryHandler {
	return &CategoryHandler{taxonomyService: taxonomyService}
}

// List serves the public navigation tree: active categories with their
// active sub-categories, in display order.
func (h *CategoryHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	categories, err := h.taxonomyService.ListCategories(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
