package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
)

// dietChartFormPath is where the no-data response sends the user back to.
const dietChartFormPath = "/diet-chart"

// DietChartHandler serves the diet-chart result view and the intake form's
// option lists.
type DietChartHandler struct {
	svc    *dietchart.Service
	logger *zap.Logger
}

// NewDietChartHandler constructs the HTTP handler adapter.
func NewDietChartHandler(svc *dietchart.Service, logger *zap.Logger) *DietChartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DietChartHandler{svc: svc, logger: logger}
}

// Get computes the diet chart for the profile carried in the query string.
// An incomplete or unrecognized profile yields the explicit no-data state;
// there is no partial-ration response.
func (h *DietChartHandler) Get(c *gin.Context) {
	profile, err := models.ParseAnimalProfile(c.Request.URL.Query())
	if err != nil {
		h.logger.Debug("incomplete diet-chart request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    err.Error(),
			"formPath": dietChartFormPath,
		})
		return
	}

	if !dietchart.KnownWeightClass(profile.Species, profile.WeightCategory) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "unrecognized weightCategory for " + string(profile.Species),
			"formPath": dietChartFormPath,
		})
		return
	}

	c.JSON(http.StatusOK, h.svc.Compute(profile))
}

// Options returns the per-species breed and weight-band lists, the health
// states and the supported languages, all from one source of truth.
func (h *DietChartHandler) Options(c *gin.Context) {
	species, healthStates := h.svc.Options()
	c.JSON(http.StatusOK, gin.H{
		"species":        species,
		"healthStatuses": healthStates,
		"languages":      models.SupportedLanguages,
	})
}
