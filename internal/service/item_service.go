package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codefly-dev/base-service/internal/database"
	"github.com/codefly-dev/base-service/internal/model"
)

const (
	defaultListLimit = 30
	dbTimeout        = 5 * time.Second
)

// itemServiceImpl implements the ItemService interface using our Database
type itemServiceImpl struct {
	db  database.Database
	now func() time.Time
}

// NewItemService creates a new item service with the provided database
//
//nolint:ireturn // Factory function intentionally returns interface for dependency injection
func NewItemService(db database.Database) ItemService {
	return &itemServiceImpl{
		db:  db,
		now: time.Now,
	}
}

// List returns items with cursor-based pagination
func (s *itemServiceImpl) List(ctx context.Context, cursor string, limit int) ([]model.Item, string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultListLimit
	}

	records, nextCursor, err := s.db.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	result := make([]model.Item, len(records))
	for i, record := range records {
		result[i] = *record
	}

	return result, nextCursor, nil
}

// GetByID retrieves a specific item by its ID
func (s *itemServiceImpl) GetByID(ctx context.Context, id string) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.db.GetByID(ctx, id)
}

// Create validates the request, assigns an ID and stores the item
func (s *itemServiceImpl) Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", database.ErrInvalidInput)
	}

	item := &model.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Tags:        normalizeTags(req.Tags),
		CreatedAt:   s.now().UTC(),
	}

	if err := s.db.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item by its ID
func (s *itemServiceImpl) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.db.Delete(ctx, id)
}

// normalizeTags trims tags and drops blanks and duplicates, keeping first occurrence order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
