package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IngredientRepository struct {
	collection *mongo.Collection
}

func NewIngredientRepository(db *mongo.Database) *IngredientRepository {
	return &IngredientRepository{
		collection: db.Collection("ingredients"),
	}
}

func (r *IngredientRepository) GetAll(ctx context.Context) ([]domain.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer cursor.Close(ctx)

	var ingredients []domain.Ingredient
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}

	return ingredients, nil
}

func (r *IngredientRepository) UpsertMany(ctx context.Context, ingredients []domain.Ingredient) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if len(ingredients) == 0 {
		return nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredient.UpdatedAt = now
		if ingredient.CreatedAt.IsZero() {
			ingredient.CreatedAt = now
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": ingredient.ID}).
			SetReplacement(ingredient).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("failed to upsert ingredients: %w", err)
	}

	return nil
}
