package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tennis-cup/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoCollection = "tournaments"

type mongoTournamentRepository struct {
	collection *mongo.Collection
}

// NewMongoTournamentRepository stores one document per tournament, with the
// tournament key as _id.
func NewMongoTournamentRepository(db *mongo.Database) TournamentRepository {
	return &mongoTournamentRepository{collection: db.Collection(mongoCollection)}
}

func (r *mongoTournamentRepository) Load(ctx context.Context, key string) (*models.Tournament, error) {
	var t models.Tournament
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %q: %w", key, err)
	}
	return &t, nil
}

func (r *mongoTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	prev := previousVersion(t.Version)
	if prev == 0 {
		if _, err := r.collection.InsertOne(ctx, t); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrVersionConflict
			}
			return fmt.Errorf("failed to insert tournament %q: %w", t.Key, err)
		}
		return nil
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.Key, "version": prev}, t)
	if err != nil {
		return fmt.Errorf("failed to replace tournament %q: %w", t.Key, err)
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *mongoTournamentRepository) Delete(ctx context.Context, key string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("failed to delete tournament %q: %w", key, err)
	}
	if result.DeletedCount == 0 {
		return ErrTournamentNotFound
	}
	return nil
}
