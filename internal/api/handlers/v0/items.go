package v0

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/codefly-dev/base-service/internal/database"
	"github.com/codefly-dev/base-service/internal/model"
	"github.com/codefly-dev/base-service/internal/service"
)

// Metadata contains pagination metadata
type Metadata struct {
	NextCursor string `json:"next_cursor,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// ListItemsInput represents the input for listing items
type ListItemsInput struct {
	Cursor string `query:"cursor" doc:"Pagination cursor (UUID)" format:"uuid" required:"false"`
	Limit  int    `query:"limit" doc:"Number of items per page" default:"30" minimum:"1" maximum:"100"`
}

// ListItemsBody represents the paginated item list response body
type ListItemsBody struct {
	Items    []model.Item `json:"items" doc:"List of items"`
	Metadata *Metadata    `json:"metadata,omitempty" doc:"Pagination metadata"`
}

// ItemIDInput selects a single item
type ItemIDInput struct {
	ID string `path:"id" doc:"Item ID (UUID)" format:"uuid"`
}

// CreateItemInput represents the input for creating an item
type CreateItemInput struct {
	Body model.CreateItemRequest
}

// RegisterItemsEndpoints registers all item-related endpoints
func RegisterItemsEndpoints(api huma.API, items service.ItemService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/v0/items",
		Summary:     "List items",
		Description: "Get a paginated list of items",
		Tags:        []string{"items"},
	}, func(ctx context.Context, input *ListItemsInput) (*Response[ListItemsBody], error) {
		if input.Cursor != "" {
			if _, err := uuid.Parse(input.Cursor); err != nil {
				return nil, huma.Error400BadRequest("Invalid cursor parameter")
			}
		}

		list, nextCursor, err := items.List(ctx, input.Cursor, input.Limit)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list items", err)
		}

		body := ListItemsBody{
			Items: list,
		}
		if nextCursor != "" {
			body.Metadata = &Metadata{
				NextCursor: nextCursor,
				Count:      len(list),
			}
		}

		return &Response[ListItemsBody]{
			Body: body,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/v0/items/{id}",
		Summary:     "Get item",
		Description: "Get a single item by ID",
		Tags:        []string{"items"},
	}, func(ctx context.Context, input *ItemIDInput) (*Response[model.Item], error) {
		item, err := items.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, huma.Error404NotFound("Item not found")
			}
			return nil, huma.Error500InternalServerError("Failed to get item", err)
		}

		return &Response[model.Item]{
			Body: *item,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-item",
		Method:        http.MethodPost,
		Path:          "/v0/items",
		Summary:       "Create item",
		Description:   "Add a new item",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateItemInput) (*Response[model.Item], error) {
		item, err := items.Create(ctx, input.Body)
		if err != nil {
			switch {
			case errors.Is(err, database.ErrInvalidInput):
				return nil, huma.Error400BadRequest("Invalid item", err)
			case errors.Is(err, database.ErrAlreadyExists):
				return nil, huma.Error409Conflict("Item already exists", err)
			default:
				return nil, huma.Error500InternalServerError("Failed to create item", err)
			}
		}

		return &Response[model.Item]{
			Body: *item,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-item",
		Method:        http.MethodDelete,
		Path:          "/v0/items/{id}",
		Summary:       "Delete item",
		Description:   "Remove an item by ID",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ItemIDInput) (*struct{}, error) {
		if err := items.Delete(ctx, input.ID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, huma.Error404NotFound("Item not found")
			}
			return nil, huma.Error500InternalServerError("Failed to delete item", err)
		}
		return nil, nil
	})
}
