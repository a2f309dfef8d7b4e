package database

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// OpenFunc establishes a new Store. It is called at most once per successful
// connection by Provider.
type OpenFunc func(ctx context.Context) (Store, error)

// Provider hands out a process-wide Store, opening it on first use.
// Concurrent first callers share a single open attempt. A failed attempt is not
// cached, so the next caller tries again.
type Provider struct {
	open  OpenFunc
	group singleflight.Group

	mu    sync.RWMutex
	store Store
}

// NewProvider returns a Provider that opens its Store with open.
func NewProvider(open OpenFunc) *Provider {
	return &Provider{open: open}
}

// MongoOpener returns an OpenFunc connecting to uri and selecting dbName.
// Indexes are ensured once per connection; failures there are logged only.
func MongoOpener(uri, dbName string) OpenFunc {
	return func(ctx context.Context) (Store, error) {
		client, err := Connect(ctx, uri)
		if err != nil {
			return nil, err
		}
		store := NewMongoStore(client.Database(dbName))
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Printf("[DB] [WARN] index warning: %v", err)
		}
		return store, nil
	}
}

// MemoryOpener returns an OpenFunc yielding store.
func MemoryOpener(store *MemoryStore) OpenFunc {
	return func(context.Context) (Store, error) {
		return store, nil
	}
}

// Store returns the cached Store, opening it if needed.
func (p *Provider) Store(ctx context.Context) (Store, error) {
	p.mu.RLock()
	store := p.store
	p.mu.RUnlock()
	if store != nil {
		return store, nil
	}

	// All waiters share one open, so it must outlive the first caller's context.
	v, err, _ := p.group.Do("store", func() (interface{}, error) {
		p.mu.RLock()
		cached := p.store
		p.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		opened, err := p.open(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.store = opened
		p.mu.Unlock()
		return opened, nil
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return v.(Store), nil
}

// Close releases the cached Store, if one was opened.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	store := p.store
	p.store = nil
	p.mu.Unlock()

	if store == nil {
		return nil
	}
	return store.Close(ctx)
}
