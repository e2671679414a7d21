package mongodb

import (
	"context"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.CropRegionRepository = (*cropRegionRepository)(nil)

type cropRegionRepository struct {
	collection *mongo.Collection
}

// NewCropRegionRepository creates a new repository for OCR crop regions
func NewCropRegionRepository(db *mongo.Database) repositories.CropRegionRepository {
	return &cropRegionRepository{
		collection: db.Collection(cropRegionsCollection),
	}
}

// FindAll returns the stored regions ordered by box id
func (r *cropRegionRepository) FindAll(ctx context.Context) ([]models.CropRegion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"boxId": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	regions := []models.CropRegion{}
	if err := cursor.All(ctx, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Upsert stores region under its box id
func (r *cropRegionRepository) Upsert(ctx context.Context, region models.CropRegion) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"boxId": region.BoxID}, region, options.Replace().SetUpsert(true))
	return err
}
