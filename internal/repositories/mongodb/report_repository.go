package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure reportRepository implements repositories.ReportRepository
var _ repositories.ReportRepository = (*reportRepository)(nil)

type reportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates a new repository for saved draw reports
func NewReportRepository(db *mongo.Database) repositories.ReportRepository {
	return &reportRepository{
		collection: db.Collection(reportsCollection),
	}
}

// newestFirst orders draws by date then by slot within the day
var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "slotOrder", Value: -1}}

// Get finds the report of one draw
func (r *reportRepository) Get(ctx context.Context, date string, slot models.DrawSlot) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"date": date, "slot": slot}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report %s %s: %w", date, slot, err)
	}
	return &report, nil
}

// Save replaces the rows of the report's draw, creating it when missing
func (r *reportRepository) Save(ctx context.Context, report *models.Report) error {
	now := time.Now()
	report.SlotOrder = report.Slot.Order()
	report.UpdatedAt = now

	filter := bson.M{"date": report.Date, "slot": report.Slot}
	update := bson.M{
		"$set": bson.M{
			"slotOrder": report.SlotOrder,
			"rows":      report.Rows,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save report %s %s: %w", report.Date, report.Slot, err)
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	return nil
}

// List finds reports newest first, optionally restricted to one date
func (r *reportRepository) List(ctx context.Context, date string) ([]*models.Report, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*models.Report{}
	}
	return reports, nil
}

// ListDates returns the distinct report dates, newest first
func (r *reportRepository) ListDates(ctx context.Context) ([]string, error) {
	return distinctDates(ctx, r.collection)
}

// Latest finds the most recent report
func (r *reportRepository) Latest(ctx context.Context) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(newestFirst)).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// DeleteAll removes every report
func (r *reportRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

func distinctDates(ctx context.Context, collection *mongo.Collection) ([]string, error) {
	values, err := collection.Distinct(ctx, "date", bson.M{})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			dates = append(dates, s)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}
