package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/service/leads"
)

// DietLogHandler handles diet-log creation and history listing.
type DietLogHandler struct {
	svc    *leads.Service
	logger *zap.Logger
}

// NewDietLogHandler constructs the HTTP handler adapter.
func NewDietLogHandler(svc *leads.Service, logger *zap.Logger) *DietLogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DietLogHandler{svc: svc, logger: logger}
}

// Create persists one diet-log entry from the intake form.
func (h *DietLogHandler) Create(c *gin.Context) {
	var req models.CreateDietLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid diet-log payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.svc.CreateDietLog(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, leads.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed creating diet log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save diet log"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List returns the inquiry history, most recent first.
func (h *DietLogHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.svc.ListDietLogs(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed listing diet logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load diet logs"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
