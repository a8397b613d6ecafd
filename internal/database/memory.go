package database

import (
	"context"
	"sort"
	"sync"

	"github.com/codefly-dev/base-service/internal/model"
)

// MemoryDB is an in-memory implementation of the Database interface
type MemoryDB struct {
	items map[string]*model.Item
	mu    sync.RWMutex
}

// NewMemoryDB creates a new instance of the in-memory database
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		items: make(map[string]*model.Item),
	}
}

// List retrieves items ordered by ID. Only items with an ID strictly greater
// than cursor are returned, so a deleted cursor still paginates correctly.
func (db *MemoryDB) List(ctx context.Context, cursor string, limit int) ([]*model.Item, string, error) {
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	all := make([]*model.Item, 0, len(db.items))
	for _, item := range db.items {
		if cursor != "" && item.ID <= cursor {
			continue
		}
		all = append(all, copyItem(item))
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	if len(all) <= limit {
		return all, "", nil
	}

	page := all[:limit]
	return page, page[len(page)-1].ID, nil
}

// GetByID retrieves a single item by its ID
func (db *MemoryDB) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	if item, exists := db.items[id]; exists {
		return copyItem(item), nil
	}

	return nil, ErrNotFound
}

// Create adds a new item to the database
func (db *MemoryDB) Create(ctx context.Context, item *model.Item) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if item == nil || item.ID == "" || item.Name == "" {
		return ErrInvalidInput
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.items[item.ID]; exists {
		return ErrAlreadyExists
	}

	db.items[item.ID] = copyItem(item)
	return nil
}

// Delete removes an item by its ID
func (db *MemoryDB) Delete(ctx context.Context, id string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.items[id]; !exists {
		return ErrNotFound
	}
	delete(db.items, id)
	return nil
}

// Close closes the database connection
// For an in-memory database, this is a no-op
func (db *MemoryDB) Close() error {
	return nil
}

func copyItem(item *model.Item) *model.Item {
	c := *item
	if item.Tags != nil {
		c.Tags = append([]string(nil), item.Tags...)
	}
	return &c
}
