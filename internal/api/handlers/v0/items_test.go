package v0_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v0 "github.com/codefly-dev/base-service/internal/api/handlers/v0"
	"github.com/codefly-dev/base-service/internal/database"
	"github.com/codefly-dev/base-service/internal/model"
)

const (
	itemID1 = "550e8400-e29b-41d4-a716-446655440001"
	itemID2 = "550e8400-e29b-41d4-a716-446655440002"
)

func newItemsAPI(items *MockItemService) *http.ServeMux {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Test API", "1.0.0"))
	v0.RegisterItemsEndpoints(api, items)
	return mux
}

func TestListItems(t *testing.T) {
	created := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		query          string
		setupMocks     func(*MockItemService)
		expectedStatus int
		expectedItems  []model.Item
		expectedMeta   *v0.Metadata
	}{
		{
			name: "default parameters",
			setupMocks: func(m *MockItemService) {
				m.On("List", "", 30).Return([]model.Item{
					{ID: itemID1, Name: "first", CreatedAt: created},
				}, "", nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  []model.Item{{ID: itemID1, Name: "first", CreatedAt: created}},
		},
		{
			name:  "with cursor and next page",
			query: "?cursor=" + itemID1 + "&limit=1",
			setupMocks: func(m *MockItemService) {
				m.On("List", itemID1, 1).Return([]model.Item{
					{ID: itemID2, Name: "second", CreatedAt: created},
				}, itemID2, nil)
			},
			expectedStatus: http.StatusOK,
			expectedItems:  []model.Item{{ID: itemID2, Name: "second", CreatedAt: created}},
			expectedMeta:   &v0.Metadata{NextCursor: itemID2, Count: 1},
		},
		{
			name:           "invalid cursor",
			query:          "?cursor=not-a-uuid",
			setupMocks:     func(_ *MockItemService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "limit out of range",
			query:          "?limit=1000",
			setupMocks:     func(_ *MockItemService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "service error",
			setupMocks: func(m *MockItemService) {
				m.On("List", "", 30).Return(nil, "", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := new(MockItemService)
			tc.setupMocks(items)
			mux := newItemsAPI(items)

			req := httptest.NewRequest(http.MethodGet, "/v0/items"+tc.query, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				var body v0.ListItemsBody
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tc.expectedItems, body.Items)
				assert.Equal(t, tc.expectedMeta, body.Metadata)
			}
			items.AssertExpectations(t)
		})
	}
}

func TestGetItem(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockItemService)
		expectedStatus int
	}{
		{
			name: "found",
			setupMocks: func(m *MockItemService) {
				m.On("GetByID", itemID1).Return(&model.Item{ID: itemID1, Name: "first"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(m *MockItemService) {
				m.On("GetByID", itemID1).Return(nil, database.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "database failure",
			setupMocks: func(m *MockItemService) {
				m.On("GetByID", itemID1).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := new(MockItemService)
			tc.setupMocks(items)
			mux := newItemsAPI(items)

			req := httptest.NewRequest(http.MethodGet, "/v0/items/"+itemID1, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"name":"first"`)
			}
			items.AssertExpectations(t)
		})
	}
}

func TestCreateItem(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockItemService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name":"widget","tags":["a"]}`,
			setupMocks: func(m *MockItemService) {
				m.On("Create", model.CreateItemRequest{Name: "widget", Tags: []string{"a"}}).
					Return(&model.Item{ID: itemID1, Name: "widget", Tags: []string{"a"}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name fails schema validation",
			body:           `{"description":"nameless"}`,
			setupMocks:     func(_ *MockItemService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "blank name rejected by service",
			body: `{"name":" "}`,
			setupMocks: func(m *MockItemService) {
				m.On("Create", mock.Anything).Return(nil, database.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict",
			body: `{"name":"widget"}`,
			setupMocks: func(m *MockItemService) {
				m.On("Create", mock.Anything).Return(nil, database.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := new(MockItemService)
			tc.setupMocks(items)
			mux := newItemsAPI(items)

			req := httptest.NewRequest(http.MethodPost, "/v0/items", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			items.AssertExpectations(t)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	items := new(MockItemService)
	items.On("Delete", itemID1).Return(nil)
	items.On("Delete", itemID2).Return(database.ErrNotFound)
	mux := newItemsAPI(items)

	req := httptest.NewRequest(http.MethodDelete, "/v0/items/"+itemID1, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/v0/items/"+itemID2, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	items.AssertExpectations(t)
}
