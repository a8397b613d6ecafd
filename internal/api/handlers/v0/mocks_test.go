package v0_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/codefly-dev/base-service/internal/model"
)

// MockItemService is a mock implementation of the ItemService interface
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) List(_ context.Context, cursor string, limit int) ([]model.Item, string, error) {
	args := m.Called(cursor, limit)
	items, _ := args.Get(0).([]model.Item)
	return items, args.String(1), args.Error(2)
}

func (m *MockItemService) GetByID(_ context.Context, id string) (*model.Item, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*model.Item)
	return item, args.Error(1)
}

func (m *MockItemService) Create(_ context.Context, req model.CreateItemRequest) (*model.Item, error) {
	args := m.Called(req)
	item, _ := args.Get(0).(*model.Item)
	return item, args.Error(1)
}

func (m *MockItemService) Delete(_ context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}
