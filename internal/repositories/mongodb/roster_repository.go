package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.RosterRepository = (*rosterRepository)(nil)

type rosterRepository struct {
	collection *mongo.Collection
}

// NewRosterRepository creates a new repository for daily customer rosters
func NewRosterRepository(db *mongo.Database) repositories.RosterRepository {
	return &rosterRepository{
		collection: db.Collection(rostersCollection),
	}
}

func (r *rosterRepository) Get(ctx context.Context, date string) (*models.Roster, error) {
	var roster models.Roster
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&roster)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepository) Save(ctx context.Context, roster *models.Roster) error {
	roster.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"date": roster.Date}, roster, options.Replace().SetUpsert(true))
	return err
}

func (r *rosterRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
