package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tum-backend/internal/models"
)

// UniqueIndex describes a single-field unique constraint.
type UniqueIndex struct {
	Collection models.CollectionName
	Field      string
	Name       string
}

// UniqueIndexes are enforced by every Store implementation.
var UniqueIndexes = []UniqueIndex{
	{Collection: models.Admins, Field: "email", Name: "email_unique"},
}

func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, idx := range UniqueIndexes {
		model := mongo.IndexModel{
			Keys: bson.D{{Key: idx.Field, Value: 1}},
			Options: options.Index().
				SetName(idx.Name).
				SetUnique(true),
		}

		log.Printf("EnsureIndexes: creating %s index on %s", idx.Name, idx.Collection)
		if _, err := db.Collection(string(idx.Collection)).Indexes().CreateOne(ctx, model); err != nil {
			log.Printf("EnsureIndexes: %s index error: %v", idx.Name, err)
			return err
		}
		log.Printf("EnsureIndexes: %s index created", idx.Name)
	}
	return nil
}
