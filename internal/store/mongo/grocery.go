package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GroceryRepository struct {
	collection *mongo.Collection
}

func NewGroceryRepository(db *mongo.Database) *GroceryRepository {
	return &GroceryRepository{
		collection: db.Collection("grocery_items"),
	}
}

func (r *GroceryRepository) DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{"plan_id": planID}); err != nil {
		return fmt.Errorf("failed to delete grocery items: %w", err)
	}

	return nil
}

func (r *GroceryRepository) InsertMany(ctx context.Context, items []domain.CachedGroceryItem) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		item.CreatedAt = now
		docs = append(docs, item)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert grocery items: %w", err)
	}

	return nil
}
