package repo

import (
	"context"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

type RecipeRepository interface {
	GetAll(ctx context.Context) ([]domain.Recipe, error)
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error)
	UpsertMany(ctx context.Context, recipes []domain.Recipe) error
}

type IngredientRepository interface {
	GetAll(ctx context.Context) ([]domain.Ingredient, error)
	UpsertMany(ctx context.Context, ingredients []domain.Ingredient) error
}
