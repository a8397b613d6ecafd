package database

import (
	"context"
	"errors"

	"github.com/codefly-dev/base-service/internal/model"
)

// Common database errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

// Database defines the interface for item storage
type Database interface {
	// List retrieves items ordered by ID, starting after cursor
	List(ctx context.Context, cursor string, limit int) ([]*model.Item, string, error)
	// GetByID retrieves a single item by its ID
	GetByID(ctx context.Context, id string) (*model.Item, error)
	// Create stores a new item
	Create(ctx context.Context, item *model.Item) error
	// Delete removes an item
	Delete(ctx context.Context, id string) error
	// Close closes the database connection
	Close() error
}

// DefaultLimit is used when List is called without a positive limit.
const DefaultLimit = 10
