package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecipeRepository struct {
	collection *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{
		collection: db.Collection("recipes"),
	}
}

// GetAll returns the whole catalog in insertion order. The catalog is small
// enough to fit in memory; planning reads it once per run as a snapshot.
func (r *RecipeRepository) GetAll(ctx context.Context) ([]domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer cursor.Close(ctx)

	var recipes []domain.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var recipe domain.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return &recipe, nil
}

func (r *RecipeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}
	defer cursor.Close(ctx)

	var recipes []domain.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepository) UpsertMany(ctx context.Context, recipes []domain.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if len(recipes) == 0 {
		return nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(recipes))
	for _, recipe := range recipes {
		recipe.UpdatedAt = now
		if recipe.CreatedAt.IsZero() {
			recipe.CreatedAt = now
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": recipe.ID}).
			SetReplacement(recipe).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("failed to upsert recipes: %w", err)
	}

	return nil
}
