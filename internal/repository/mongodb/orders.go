package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// InsertOrder persists an order inquiry and returns it with its ID set.
func (r *Repository) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID().Hex()
	if _, err := r.collection(ordersCollection).InsertOne(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return order, nil
}

// CountOrdersBetween counts orders created within [start, end).
func (r *Repository) CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	count, err := r.collection(ordersCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// InsertDailyReport saves one day's activity report.
func (r *Repository) InsertDailyReport(ctx context.Context, report models.DailyActivityReport) error {
	if _, err := r.collection(reportsCollection).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert daily report: %w", err)
	}
	return nil
}
