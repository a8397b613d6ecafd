package model

import "time"

// Item is a catalog entry stored by the service
type Item struct {
	ID          string    `json:"id" bson:"id" doc:"Item ID (UUID)" format:"uuid"`
	Name        string    `json:"name" bson:"name" doc:"Display name of the item" minLength:"1" maxLength:"200"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" doc:"Free-form description"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty" doc:"Labels attached to the item"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" doc:"Creation time (RFC 3339)"`
}

// CreateItemRequest represents a request to add an item
type CreateItemRequest struct {
	Name        string   `json:"name" doc:"Display name of the item" minLength:"1" maxLength:"200"`
	Description string   `json:"description,omitempty" doc:"Free-form description" maxLength:"2000"`
	Tags        []string `json:"tags,omitempty" doc:"Labels attached to the item" maxItems:"20"`
}
