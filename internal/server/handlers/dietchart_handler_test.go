package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/server/handlers"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
)

func newDietChartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewDietChartHandler(dietchart.NewService(nil), nil)

	r := gin.New()
	r.GET("/api/diet-chart", h.Get)
	r.GET("/api/diet-chart/options", h.Options)
	return r
}

func chartQuery() url.Values {
	return url.Values{
		"cattleType":     {"Cow"},
		"breed":          {"Gir"},
		"weightCategory": {"0-300kg"},
		"age":            {"4"},
		"healthStatus":   {"Healthy"},
		"tagged":         {"Yes"},
		"name":           {"Ramesh"},
		"contact":        {"9876543210"},
	}
}

func TestGetDietChart(t *testing.T) {
	r := newDietChartRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/diet-chart?"+chartQuery().Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var chart models.DietChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chart))
	assert.Equal(t, 6.83, chart.Ration.ConcentrateKg)
	assert.Equal(t, models.SpeciesCow, chart.Profile.Species)
	assert.Equal(t, "Gujarat", chart.RegionHint)
	assert.Len(t, chart.Schedule, 3)
}

func TestGetDietChartMissingHealthStatus(t *testing.T) {
	query := chartQuery()
	query.Del("healthStatus")

	r := newDietChartRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/diet-chart?"+query.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error    string `json:"error"`
		FormPath string `json:"formPath"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "healthStatus")
	assert.Equal(t, "/diet-chart", body.FormPath)
}

func TestGetDietChartUnknownWeightCategory(t *testing.T) {
	query := chartQuery()
	query.Set("weightCategory", "900kg+")

	r := newDietChartRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/diet-chart?"+query.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetDietChartUnknownBreedFallsBack(t *testing.T) {
	query := chartQuery()
	query.Set("breed", "NonexistentBreed")

	r := newDietChartRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/diet-chart?"+query.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Unknown breed is a documented fallback, not an error.
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetOptions(t *testing.T) {
	r := newDietChartRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/diet-chart/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Species []struct {
			CattleType       string   `json:"cattleType"`
			Breeds           []string `json:"breeds"`
			WeightCategories []string `json:"weightCategories"`
		} `json:"species"`
		HealthStatuses []string          `json:"healthStatuses"`
		Languages      map[string]string `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Species, 3)
	assert.Len(t, body.HealthStatuses, 3)
	assert.Len(t, body.Languages, 23)
	for _, s := range body.Species {
		assert.Contains(t, s.Breeds, "Other")
		assert.NotEmpty(t, s.WeightCategories)
	}
}
