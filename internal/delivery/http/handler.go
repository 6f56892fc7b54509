package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stokradar/backend/internal/domain"
	"github.com/stokradar/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService  *usecase.SearchService
	catalogService *usecase.CatalogService
	maxFileBytes   int64
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService, catalogService *usecase.CatalogService, maxFileBytes int64) *Handler {
	return &Handler{
		searchService:  searchService,
		catalogService: catalogService,
		maxFileBytes:   maxFileBytes,
	}
}

// Root returns the service banner
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog Search API",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "stokradar-backend",
		"version": "1.0.0",
	})
}

// UploadCatalog replaces the catalog from an uploaded Excel workbook
func (h *Handler) UploadCatalog(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only Excel files are allowed"})
		return
	}

	if h.maxFileBytes > 0 && fileHeader.Size > h.maxFileBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.catalogService.ReplaceCatalogFromWorkbook(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFile),
			errors.Is(err, domain.ErrMissingColumns),
			errors.Is(err, domain.ErrEmptyWorkbook):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchCatalog runs a free-text query over the catalog
func (h *Handler) SearchCatalog(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	response, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// CountProducts returns the number of products in the catalog
func (h *Handler) CountProducts(c *gin.Context) {
	count, err := h.catalogService.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ClearCatalog removes every product from the catalog
func (h *Handler) ClearCatalog(c *gin.Context) {
	deleted, err := h.catalogService.Clear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "catalog cleared", "deleted": deleted})
}
