package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/repository/mongodb"
	"github.com/godhanfeeds/godhan/internal/service/catalog"
)

// CatalogHandler serves the product catalog and the blog content hub.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

// ListProducts returns the catalog, localized by the lang query parameter.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.svc.Products(c.Request.Context(), c.Query("lang"))
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListPosts returns all blog posts, newest first.
func (h *CatalogHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.Posts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns one blog post by ID.
func (h *CatalogHandler) GetPost(c *gin.Context) {
	post, err := h.svc.Post(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.logger.Error("failed loading post", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}
