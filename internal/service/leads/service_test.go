package leads_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/repository/mongodb"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
	"github.com/godhanfeeds/godhan/internal/service/leads"
)

type memStore struct {
	dietLogs []models.DietLogEntry
	orders   []models.Order
	products map[string]models.Product
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]models.Product{
			"cattle-feed-pellets-50kg": {ID: "cattle-feed-pellets-50kg", Price: 145000},
		},
	}
}

func (m *memStore) InsertDietLog(_ context.Context, entry models.DietLogEntry) (models.DietLogEntry, error) {
	entry.ID = "log-1"
	m.dietLogs = append(m.dietLogs, entry)
	return entry, nil
}

func (m *memStore) ListDietLogs(context.Context, int64) ([]models.DietLogEntry, error) {
	return m.dietLogs, nil
}

func (m *memStore) InsertOrder(_ context.Context, order models.Order) (models.Order, error) {
	order.ID = "order-1"
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *memStore) GetProduct(_ context.Context, id string) (models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return models.Product{}, mongodb.ErrNotFound
	}
	return product, nil
}

// recordingSink captures exported lead rows.
type recordingSink struct {
	rows chan []interface{}
}

func (r *recordingSink) WriteRow(_ context.Context, _ string, values []interface{}) error {
	r.rows <- values
	return nil
}

func newService(store *memStore, sink *recordingSink) *leads.Service {
	var svc *leads.Service
	if sink != nil {
		svc = leads.NewService(store, sink, dietchart.NewService(nil), nil)
	} else {
		svc = leads.NewService(store, nil, dietchart.NewService(nil), nil)
	}
	return svc
}

func validRequest() models.CreateDietLogRequest {
	return models.CreateDietLogRequest{
		Date:           "2026-08-20",
		CattleType:     "Cow",
		Breed:          "Gir",
		WeightCategory: "0-300kg",
		Age:            4,
		HealthStatus:   "Healthy",
		Tagged:         "No",
	}
}

func TestCreateDietLogGeneratesSummary(t *testing.T) {
	store := newMemStore()
	svc := newService(store, nil)

	entry, err := svc.CreateDietLog(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "log-1", entry.ID)
	assert.Contains(t, entry.DietPlanResult, "Concentrate 6.83 kg")
	assert.Equal(t, time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestCreateDietLogKeepsClientSummary(t *testing.T) {
	svc := newService(newMemStore(), nil)

	req := validRequest()
	req.DietPlanResult = "client-computed summary"
	entry, err := svc.CreateDietLog(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "client-computed summary", entry.DietPlanResult)
}

func TestCreateDietLogValidation(t *testing.T) {
	svc := newService(newMemStore(), nil)

	tests := []struct {
		name   string
		mutate func(*models.CreateDietLogRequest)
	}{
		{"unknown species", func(r *models.CreateDietLogRequest) { r.CattleType = "Camel" }},
		{"breed from another species", func(r *models.CreateDietLogRequest) { r.Breed = "Jamunapari" }},
		{"weight band from another species", func(r *models.CreateDietLogRequest) { r.WeightCategory = "20-50kg" }},
		{"unknown health state", func(r *models.CreateDietLogRequest) { r.HealthStatus = "Tired" }},
		{"malformed date", func(r *models.CreateDietLogRequest) { r.Date = "20/08/2026" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.CreateDietLog(context.Background(), req)
			require.ErrorIs(t, err, leads.ErrValidation)
		})
	}
}

func TestCreateDietLogExportsLead(t *testing.T) {
	sink := &recordingSink{rows: make(chan []interface{}, 1)}
	svc := newService(newMemStore(), sink)

	_, err := svc.CreateDietLog(context.Background(), validRequest())
	require.NoError(t, err)

	select {
	case row := <-sink.rows:
		assert.Equal(t, "2026-08-20", row[0])
		assert.Equal(t, "Cow", row[1])
		assert.Equal(t, "Gir", row[2])
	case <-time.After(2 * time.Second):
		t.Fatal("lead row was never exported")
	}
}

func TestCreateOrder(t *testing.T) {
	store := newMemStore()
	svc := newService(store, nil)

	order, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		ProductID:    "cattle-feed-pellets-50kg",
		CustomerName: "Ramesh Patel",
		Phone:        "9876543210",
		Address:      "Anand, Gujarat",
		Amount:       145000,
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	require.Len(t, store.orders, 1)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc := newService(newMemStore(), nil)

	_, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		ProductID:    "no-such-product",
		CustomerName: "Ramesh Patel",
		Phone:        "9876543210",
		Address:      "Anand, Gujarat",
		Amount:       1000,
	})
	require.ErrorIs(t, err, leads.ErrValidation)
}
