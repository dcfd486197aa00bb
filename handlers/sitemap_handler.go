package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"armust-news-cms/services"

	"github.com/gin-gonic/gin"
)

type SitemapHandler struct {
	sitemapService services.SitemapService
}

func NewSitemapHandler(sitemapService services.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService}
}

// sendXML writes a sitemap document with the XML prologue. Sitemaps are
// served uncached so crawlers always see fresh lastmod values.
func sendXML(c *gin.Context, doc interface{}) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.XML(http.StatusOK, doc)
}

func (h *SitemapHandler) Index(c *gin.Context) {
	index, err := h.sitemapService.Index()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	sendXML(c, index)
}

func (h *SitemapHandler) News(c *gin.Context) {
	set, err := h.sitemapService.News()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	sendXML(c, set)
}

func (h *SitemapHandler) ImageIndex(c *gin.Context) {
	h.sectionIndex(c, h.sitemapService.ImageIndex)
}

func (h *SitemapHandler) ImageMonth(c *gin.Context) {
	h.monthMap(c, h.sitemapService.ImageMonth)
}

func (h *SitemapHandler) VideoIndex(c *gin.Context) {
	h.sectionIndex(c, h.sitemapService.VideoIndex)
}

func (h *SitemapHandler) VideoMonth(c *gin.Context) {
	h.monthMap(c, h.sitemapService.VideoMonth)
}

func (h *SitemapHandler) ArticleIndex(c *gin.Context) {
	h.sectionIndex(c, h.sitemapService.ArticleIndex)
}

func (h *SitemapHandler) ArticleMonth(c *gin.Context) {
	h.monthMap(c, h.sitemapService.ArticleMonth)
}

func (h *SitemapHandler) ArchiveIndex(c *gin.Context) {
	h.sectionIndex(c, h.sitemapService.ArchiveIndex)
}

func (h *SitemapHandler) ArchiveMonth(c *gin.Context) {
	h.monthMap(c, h.sitemapService.ArchiveMonth)
}

func (h *SitemapHandler) sectionIndex(c *gin.Context, fn func() (*services.SitemapIndex, error)) {
	index, err := fn()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	sendXML(c, index)
}

// monthMap serves /sitemap/<section>/2026-08.xml style paths.
func (h *SitemapHandler) monthMap(c *gin.Context, fn func(int, time.Month) (*services.URLSet, error)) {
	year, month, ok := parseMonth(c.Param("month"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	set, err := fn(year, month)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	sendXML(c, set)
}

func parseMonth(segment string) (int, time.Month, bool) {
	name := strings.TrimSuffix(segment, ".xml")
	parts := strings.SplitN(name, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	year, yerr := strconv.Atoi(parts[0])
	month, merr := strconv.Atoi(parts[1])
	if yerr != nil || merr != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
