package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure resultRepository implements repositories.ResultRepository
var _ repositories.ResultRepository = (*resultRepository)(nil)

type resultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new repository for draw result sheets
func NewResultRepository(db *mongo.Database) repositories.ResultRepository {
	return &resultRepository{
		collection: db.Collection(resultsCollection),
	}
}

// Get finds the result sheet of one draw
func (r *resultRepository) Get(ctx context.Context, date string, slot models.DrawSlot) (*models.WinningResult, error) {
	var result models.WinningResult
	err := r.collection.FindOne(ctx, bson.M{"date": date, "slot": slot}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find result %s %s: %w", date, slot, err)
	}
	return &result, nil
}

// Save replaces the prizes of the result's draw, creating it when missing
func (r *resultRepository) Save(ctx context.Context, result *models.WinningResult) error {
	now := time.Now()
	result.SlotOrder = result.Slot.Order()
	result.UpdatedAt = now

	filter := bson.M{"date": result.Date, "slot": result.Slot}
	update := bson.M{
		"$set": bson.M{
			"slotOrder": result.SlotOrder,
			"prizes":    result.Prizes,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save result %s %s: %w", result.Date, result.Slot, err)
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = now
	}
	return nil
}

// ListByDate finds the result sheets of a day in slot order
func (r *resultRepository) ListByDate(ctx context.Context, date string) ([]*models.WinningResult, error) {
	opts := options.Find().SetSort(bson.M{"slotOrder": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*models.WinningResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []*models.WinningResult{}
	}
	return results, nil
}

// ListDates returns the distinct result dates, newest first
func (r *resultRepository) ListDates(ctx context.Context) ([]string, error) {
	return distinctDates(ctx, r.collection)
}

// Delete removes the result sheet of one draw
func (r *resultRepository) Delete(ctx context.Context, date string, slot models.DrawSlot) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"date": date, "slot": slot})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
