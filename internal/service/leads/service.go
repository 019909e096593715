package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	"github.com/godhanfeeds/godhan/internal/repository/mongodb"
	sheetsrepo "github.com/godhanfeeds/godhan/internal/repository/sheets"
	"github.com/godhanfeeds/godhan/internal/service/dietchart"
)

// ErrValidation indicates a request failed the intake schema check. The
// handler maps it to a 400 with the wrapped message.
var ErrValidation = errors.New("validation failed")

const (
	dietLogLeadsRange = "DietLogs!A:I"
	orderLeadsRange   = "Orders!A:H"
	dateLayout        = "2006-01-02"
	exportTimeout     = 10 * time.Second
)

// Store defines the persistence operations the lead flows need.
type Store interface {
	InsertDietLog(ctx context.Context, entry models.DietLogEntry) (models.DietLogEntry, error)
	ListDietLogs(ctx context.Context, limit int64) ([]models.DietLogEntry, error)
	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
}

// Service owns the two lead-generating flows of the site: diet-chart
// inquiries and product order inquiries. Created records are optionally
// mirrored to the sales team's spreadsheet; that export is fire-and-forget
// and never surfaces to the caller.
type Service struct {
	store  Store
	sheets sheetsrepo.Repository
	charts *dietchart.Service
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a leads service. sheets may be nil when export is not
// configured.
func NewService(store Store, sheets sheetsrepo.Repository, charts *dietchart.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		sheets: sheets,
		charts: charts,
		logger: logger,
		now:    time.Now,
	}
}

// CreateDietLog validates the intake payload against the engine's
// enumerations, fills in the diet summary when the client did not send one,
// and persists the entry.
func (s *Service) CreateDietLog(ctx context.Context, req models.CreateDietLogRequest) (models.DietLogEntry, error) {
	species, ok := models.ParseSpecies(req.CattleType)
	if !ok {
		return models.DietLogEntry{}, fmt.Errorf("%w: unknown cattleType %q", ErrValidation, req.CattleType)
	}
	health, ok := models.ParseHealthState(req.HealthStatus)
	if !ok {
		return models.DietLogEntry{}, fmt.Errorf("%w: unknown healthStatus %q", ErrValidation, req.HealthStatus)
	}

	profile := models.AnimalProfile{
		Species:        species,
		Breed:          req.Breed,
		WeightCategory: req.WeightCategory,
		AgeYears:       req.Age,
		HealthState:    health,
		Tagged:         req.Tagged == "Yes",
	}
	if err := s.charts.ValidateProfile(profile); err != nil {
		return models.DietLogEntry{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	date := s.now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return models.DietLogEntry{}, fmt.Errorf("%w: date must use %s", ErrValidation, dateLayout)
		}
		date = parsed
	}

	result := req.DietPlanResult
	if result == "" {
		result = dietchart.Summary(s.charts.Compute(profile))
	}

	entry := models.DietLogEntry{
		Date:           date,
		CattleType:     species,
		Breed:          req.Breed,
		WeightCategory: req.WeightCategory,
		AgeYears:       req.Age,
		HealthStatus:   health,
		Tagged:         profile.Tagged,
		DietPlanResult: result,
		CreatedAt:      s.now().UTC(),
	}

	created, err := s.store.InsertDietLog(ctx, entry)
	if err != nil {
		return models.DietLogEntry{}, err
	}

	s.exportLead(dietLogLeadsRange, []interface{}{
		created.Date.Format(dateLayout), string(created.CattleType), created.Breed,
		created.WeightCategory, created.AgeYears, string(created.HealthStatus),
		created.Tagged, created.DietPlanResult, created.ID,
	})

	return created, nil
}

// ListDietLogs returns the inquiry history, newest first.
func (s *Service) ListDietLogs(ctx context.Context, limit int64) ([]models.DietLogEntry, error) {
	return s.store.ListDietLogs(ctx, limit)
}

// CreateOrder validates and persists a product order inquiry.
func (s *Service) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	if _, err := s.store.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return models.Order{}, fmt.Errorf("%w: unknown productId %q", ErrValidation, req.ProductID)
		}
		return models.Order{}, err
	}

	order := models.Order{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Amount:       req.Amount,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.store.InsertOrder(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	s.exportLead(orderLeadsRange, []interface{}{
		created.CreatedAt.Format(dateLayout), created.ProductID, created.CustomerName,
		created.Phone, created.Email, created.Address, created.Amount, created.ID,
	})

	return created, nil
}

// exportLead mirrors a created record to the leads spreadsheet in the
// background. The record is already persisted; export failure is only
// logged.
func (s *Service) exportLead(sheetRange string, values []interface{}) {
	if s.sheets == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		if err := s.sheets.WriteRow(ctx, sheetRange, values); err != nil {
			s.logger.Warn("lead export failed", zap.String("range", sheetRange), zap.Error(err))
		}
	}()
}
