package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codefly-dev/base-service/internal/model"
)

func seed(t *testing.T, db *MemoryDB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(context.Background(), &model.Item{
			ID:        fmt.Sprintf("00000000-0000-0000-0000-%012d", i),
			Name:      fmt.Sprintf("item-%d", i),
			CreatedAt: time.Unix(int64(i), 0).UTC(),
		}))
	}
}

func TestMemoryDB_ListPagination(t *testing.T) {
	db := NewMemoryDB()
	seed(t, db, 5)
	ctx := context.Background()

	page, next, err := db.List(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "item-0", page[0].Name)
	assert.Equal(t, page[1].ID, next)

	page, next, err = db.List(ctx, next, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "item-2", page[0].Name)

	page, next, err = db.List(ctx, next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "item-4", page[0].Name)
	assert.Empty(t, next)
}

func TestMemoryDB_ListDefaultLimit(t *testing.T) {
	db := NewMemoryDB()
	seed(t, db, DefaultLimit+1)

	page, next, err := db.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, page, DefaultLimit)
	assert.NotEmpty(t, next)
}

func TestMemoryDB_ListEmpty(t *testing.T) {
	page, next, err := NewMemoryDB().List(context.Background(), "", 10)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Empty(t, next)
}

func TestMemoryDB_CreateGetDelete(t *testing.T) {
	db := NewMemoryDB()
	ctx := context.Background()
	item := &model.Item{ID: "a", Name: "first", Tags: []string{"x"}}

	require.NoError(t, db.Create(ctx, item))
	assert.ErrorIs(t, db.Create(ctx, item), ErrAlreadyExists)
	assert.ErrorIs(t, db.Create(ctx, &model.Item{ID: "b"}), ErrInvalidInput)

	// Stored items are isolated from caller mutation.
	item.Tags[0] = "mutated"
	got, err := db.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)

	require.NoError(t, db.Delete(ctx, "a"))
	_, err = db.GetByID(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.Delete(ctx, "a"), ErrNotFound)
}

func TestMemoryDB_CancelledContext(t *testing.T) {
	db := NewMemoryDB()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := db.List(ctx, "", 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = db.GetByID(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, db.Create(ctx, &model.Item{ID: "a", Name: "a"}), context.Canceled)
	assert.ErrorIs(t, db.Delete(ctx, "a"), context.Canceled)
}
