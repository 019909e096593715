package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/godhanfeeds/godhan/internal/domain/models"
)

// InsertDietLog persists a diet-log entry and returns it with its ID set.
func (r *Repository) InsertDietLog(ctx context.Context, entry models.DietLogEntry) (models.DietLogEntry, error) {
	entry.ID = primitive.NewObjectID().Hex()
	if _, err := r.collection(dietLogsCollection).InsertOne(ctx, entry); err != nil {
		return models.DietLogEntry{}, fmt.Errorf("failed to insert diet log: %w", err)
	}
	return entry, nil
}

// ListDietLogs returns entries ordered most recent first. A limit of zero
// means no limit.
func (r *Repository) ListDietLogs(ctx context.Context, limit int64) ([]models.DietLogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection(dietLogsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet logs: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.DietLogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode diet logs: %w", err)
	}
	return entries, nil
}

// CountDietLogsBetween counts entries created within [start, end).
func (r *Repository) CountDietLogsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	count, err := r.collection(dietLogsCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count diet logs: %w", err)
	}
	return count, nil
}

// CountDietLogsBySpeciesBetween breaks the period's entries down by species.
func (r *Repository) CountDietLogsBySpeciesBetween(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	counts := make(map[string]int64, len(models.AllSpecies))
	for _, species := range models.AllSpecies {
		filter := bson.M{
			"cattle_type": species,
			"created_at":  bson.M{"$gte": start, "$lt": end},
		}
		count, err := r.collection(dietLogsCollection).CountDocuments(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count diet logs for %s: %w", species, err)
		}
		counts[string(species)] = count
	}
	return counts, nil
}
