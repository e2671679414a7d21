package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	reportsCollection     = "customer_reports"
	resultsCollection     = "lottery_results"
	rostersCollection     = "daily_customers"
	cropRegionsCollection = "crop_regions"
	operatorsCollection   = "operators"
)

// EnsureIndexes creates the unique keys every collection is addressed by
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		reportsCollection:     {Keys: bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}}, Options: unique},
		resultsCollection:     {Keys: bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}}, Options: unique},
		rostersCollection:     {Keys: bson.D{{Key: "date", Value: 1}}, Options: unique},
		cropRegionsCollection: {Keys: bson.D{{Key: "boxId", Value: 1}}, Options: unique},
		operatorsCollection:   {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	for name, model := range indexes {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}
	return nil
}
