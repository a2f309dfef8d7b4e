package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tum-backend/internal/models"
)

var (
	// ErrNotFound is returned by FindOne when no document matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is one logical database holding the API's collections.
type Store interface {
	Collection(name models.CollectionName) Collection
	Ping(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}

// Collection is a handle over one named collection of schemaless documents.
// Each call is an independent unit; calls are never combined into transactions.
type Collection interface {
	// Insert stores doc under a freshly assigned identifier and returns it.
	Insert(ctx context.Context, doc models.Document) (primitive.ObjectID, error)
	// FindOne returns the first document whose fields equal filter, or ErrNotFound.
	FindOne(ctx context.Context, filter models.Document) (models.Document, error)
	// FindAll returns every document in insertion order. The result is never nil.
	FindAll(ctx context.Context) ([]models.Document, error)
	// UpdateFields sets the given fields on the document with id, leaving others
	// untouched, and reports how many documents matched.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, error)
	// DeleteOne removes the document with id and reports how many were deleted.
	DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error)
}
