package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tum-backend/internal/models"
)

// Connect opens a client against uri using the stable v1 server API and
// checks that the primary answers.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("mongo connection uri is empty")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Println("Connected to MongoDB successfully")
	return client, nil
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps db as a Store.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Collection(name models.CollectionName) Collection {
	return &mongoCollection{coll: s.db.Collection(string(name))}
}

func (s *mongoStore) Ping(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.db.Client().Ping(checkCtx, readpref.Primary())
}

func (s *mongoStore) EnsureIndexes(ctx context.Context) error {
	return ensureMongoIndexes(ctx, s.db)
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) Insert(ctx context.Context, doc models.Document) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	record := models.CloneDocument(doc)
	record[models.IDField] = id

	if _, err := c.coll.InsertOne(ctx, record); err != nil {
		return primitive.NilObjectID, wrapWriteError(c.coll.Name(), "insert", err)
	}
	return id, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter models.Document) (models.Document, error) {
	var doc models.Document
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: find one: %w", c.coll.Name(), err)
	}
	return doc, nil
}

func (c *mongoCollection) FindAll(ctx context.Context) ([]models.Document, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []models.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c *mongoCollection) UpdateFields(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, error) {
	result, err := c.coll.UpdateOne(ctx,
		bson.M{models.IDField: id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, wrapWriteError(c.coll.Name(), "update", err)
	}
	return result.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := c.coll.DeleteOne(ctx, bson.M{models.IDField: id})
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", c.coll.Name(), err)
	}
	return result.DeletedCount, nil
}

func wrapWriteError(collection, op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %s: %w", collection, op, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %s: %w", collection, op, err)
}
