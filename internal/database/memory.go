package database

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tum-backend/internal/models"
)

// MemoryStore keeps collections in process memory. It honors UniqueIndexes
// and is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[models.CollectionName][]models.Document
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[models.CollectionName][]models.Document)}
}

func (s *MemoryStore) Collection(name models.CollectionName) Collection {
	return &memoryCollection{store: s, name: name}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) EnsureIndexes(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }

type memoryCollection struct {
	store *MemoryStore
	name  models.CollectionName
}

func (c *memoryCollection) Insert(ctx context.Context, doc models.Document) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	record := models.CloneDocument(doc)
	record[models.IDField] = id

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.collections[c.name]
	if err := c.checkUnique(docs, record, -1); err != nil {
		return primitive.NilObjectID, err
	}
	c.store.collections[c.name] = append(docs, record)
	return id, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter models.Document) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			return models.CloneDocument(doc), nil
		}
	}
	return nil, ErrNotFound
}

func (c *memoryCollection) FindAll(ctx context.Context) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	docs := c.store.collections[c.name]
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.CloneDocument(doc))
	}
	return out, nil
}

func (c *memoryCollection) UpdateFields(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.collections[c.name]
	i := indexOf(docs, id)
	if i < 0 {
		return 0, nil
	}

	updated := models.CloneDocument(docs[i])
	for k, v := range fields {
		updated[k] = v
	}
	if err := c.checkUnique(docs, updated, i); err != nil {
		return 0, err
	}
	docs[i] = updated
	return 1, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.collections[c.name]
	i := indexOf(docs, id)
	if i < 0 {
		return 0, nil
	}
	c.store.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
	return 1, nil
}

// checkUnique must be called with the write lock held. skip is the position of
// the document being replaced, or -1 for inserts.
func (c *memoryCollection) checkUnique(docs []models.Document, candidate models.Document, skip int) error {
	for _, idx := range UniqueIndexes {
		if idx.Collection != c.name {
			continue
		}
		value, ok := candidate[idx.Field]
		if !ok {
			continue
		}
		for i, doc := range docs {
			if i == skip {
				continue
			}
			if existing, ok := doc[idx.Field]; ok && reflect.DeepEqual(existing, value) {
				return fmt.Errorf("%s: %s: %w", c.name, idx.Name, ErrDuplicateKey)
			}
		}
	}
	return nil
}

func indexOf(docs []models.Document, id primitive.ObjectID) int {
	for i, doc := range docs {
		if doc[models.IDField] == id {
			return i
		}
	}
	return -1
}

func matches(doc, filter models.Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
