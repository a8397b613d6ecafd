package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/codefly-dev/base-service/internal/model"
)

// MongoDB is an implementation of the Database interface using MongoDB
type MongoDB struct {
	client     *mongo.Client
	database   *mongo.Database
	collection *mongo.Collection
}

// NewMongoDB creates a new instance of the MongoDB database
func NewMongoDB(ctx context.Context, connectionURI, databaseName, collectionName string, logger *zap.Logger) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(connectionURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database(databaseName)
	collection := database.Collection(collectionName)

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "name", Value: 1}},
		},
	}

	_, err = collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		// Code 86 is IndexKeySpecsConflict: the indexes are already there.
		var commandError mongo.CommandError
		if !errors.As(err, &commandError) || commandError.Code != 86 {
			return nil, err
		}
		logger.Info("Indexes already exist, skipping", zap.String("collection", collectionName))
	}

	return &MongoDB{
		client:     client,
		database:   database,
		collection: collection,
	}, nil
}

// List retrieves items ordered by ID, starting after cursor
func (db *MongoDB) List(ctx context.Context, cursor string, limit int) ([]*model.Item, string, error) {
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	filter := bson.M{}
	if cursor != "" {
		if _, err := uuid.Parse(cursor); err != nil {
			return nil, "", fmt.Errorf("%w: invalid cursor format: %w", ErrInvalidInput, err)
		}
		filter["id"] = bson.M{"$gt": cursor}
	}

	// Fetch one extra document to know whether another page exists.
	findOptions := options.Find().
		SetSort(bson.D{bson.E{Key: "id", Value: 1}}).
		SetLimit(int64(limit + 1))

	mongoCursor, err := db.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, "", err
	}
	defer mongoCursor.Close(ctx)

	var items []*model.Item
	if err := mongoCursor.All(ctx, &items); err != nil {
		return nil, "", err
	}

	if len(items) <= limit {
		if items == nil {
			items = []*model.Item{}
		}
		return items, "", nil
	}

	page := items[:limit]
	return page, page[len(page)-1].ID, nil
}

// GetByID retrieves a single item by its ID
func (db *MongoDB) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var item model.Item
	err := db.collection.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving item: %w", err)
	}

	return &item, nil
}

// Create stores a new item
func (db *MongoDB) Create(ctx context.Context, item *model.Item) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if item == nil || item.ID == "" || item.Name == "" {
		return ErrInvalidInput
	}

	_, err := db.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("error inserting item: %w", err)
	}

	return nil
}

// Delete removes an item by its ID
func (db *MongoDB) Delete(ctx context.Context, id string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	result, err := db.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection
func (db *MongoDB) Close() error {
	return db.client.Disconnect(context.Background())
}
