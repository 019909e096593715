package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/server/handlers"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
	"github.com/godhanfeeds/godhan/internal/service/leads"
)

func newOrderRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := leads.NewService(store, nil, dietchart.NewService(nil), nil)
	h := handlers.NewOrderHandler(svc, nil)

	r := gin.New()
	r.POST("/api/orders", h.Create)
	return r
}

func TestCreateOrder(t *testing.T) {
	store := newFakeStore()
	r := newOrderRouter(store)

	payload := `{
		"productId": "mineral-mixture-5kg",
		"customerName": "Ramesh Patel",
		"phone": "9876543210",
		"address": "Village Khandha, Anand, Gujarat",
		"amount": 65000
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, int64(65000), order.Amount)
	require.Len(t, store.orders, 1)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	r := newOrderRouter(newFakeStore())

	payload := `{
		"productId": "no-such-product",
		"customerName": "Ramesh Patel",
		"phone": "9876543210",
		"address": "Anand, Gujarat",
		"amount": 1000
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "productId")
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	r := newOrderRouter(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"productId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
