package service

import (
	"context"

	"github.com/codefly-dev/base-service/internal/model"
)

// ItemService defines the interface for item operations
type ItemService interface {
	// List retrieves items with cursor-based pagination
	List(ctx context.Context, cursor string, limit int) ([]model.Item, string, error)
	// GetByID retrieves a single item
	GetByID(ctx context.Context, id string) (*model.Item, error)
	// Create validates and stores a new item
	Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error)
	// Delete removes an item
	Delete(ctx context.Context, id string) error
}
