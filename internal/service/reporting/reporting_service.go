package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/domain/models"
	sheetsrepo "github.com/godhanfeeds/godhan/internal/repository/sheets"
)

const (
	dateLayout       = "2006-01-02"
	reportSheetRange = "Reports!A:F"
)

// Store defines the counting and persistence operations the daily report
// needs.
type Store interface {
	CountDietLogsBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountDietLogsBySpeciesBetween(ctx context.Context, start, end time.Time) (map[string]int64, error)
	CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error)
	InsertDailyReport(ctx context.Context, report models.DailyActivityReport) error
}

// Service produces the daily site-activity digest the sales team works
// from: inquiry counts per day, broken down by species.
type Service struct {
	store  Store
	sheets sheetsrepo.Repository
	logger *zap.Logger
}

// NewService wires a new reporting service instance. sheets may be nil.
func NewService(store Store, sheets sheetsrepo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, sheets: sheets, logger: logger}
}

// GenerateDailyReport aggregates activity for the calendar day containing
// day (UTC), persists the report and optionally mirrors a summary row to
// the spreadsheet.
func (s *Service) GenerateDailyReport(ctx context.Context, day time.Time) (models.DailyActivityReport, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	dietLogs, err := s.store.CountDietLogsBetween(ctx, start, end)
	if err != nil {
		return models.DailyActivityReport{}, fmt.Errorf("count diet logs: %w", err)
	}

	bySpecies, err := s.store.CountDietLogsBySpeciesBetween(ctx, start, end)
	if err != nil {
		return models.DailyActivityReport{}, fmt.Errorf("count diet logs by species: %w", err)
	}

	orders, err := s.store.CountOrdersBetween(ctx, start, end)
	if err != nil {
		return models.DailyActivityReport{}, fmt.Errorf("count orders: %w", err)
	}

	report := models.DailyActivityReport{
		Date:          start,
		DietLogCount:  dietLogs,
		OrderCount:    orders,
		LogsBySpecies: bySpecies,
		Summary: fmt.Sprintf("Activity %s: %d diet-chart inquiries, %d order inquiries.",
			start.Format(dateLayout), dietLogs, orders),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.InsertDailyReport(ctx, report); err != nil {
		return models.DailyActivityReport{}, fmt.Errorf("save daily report: %w", err)
	}

	if s.sheets != nil {
		row := []interface{}{
			start.Format(dateLayout), dietLogs, orders,
			bySpecies[string(models.SpeciesCow)],
			bySpecies[string(models.SpeciesBuffalo)],
			bySpecies[string(models.SpeciesGoat)],
		}
		if err := s.sheets.WriteRow(ctx, reportSheetRange, row); err != nil {
			s.logger.Warn("report export failed", zap.Error(err))
		}
	}

	s.logger.Info("daily activity report generated",
		zap.String("date", start.Format(dateLayout)),
		zap.Int64("diet_logs", dietLogs),
		zap.Int64("orders", orders))

	return report, nil
}
