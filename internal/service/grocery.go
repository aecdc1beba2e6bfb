package service

import (
	"context"
	"fmt"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/planner"
	"github.com/HitsujiNeko/BulkCart/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type GroceryService struct {
	planRepo       repo.PlanRepository
	recipeRepo     repo.RecipeRepository
	ingredientRepo repo.IngredientRepository
	groceryRepo    repo.GroceryRepository
	logger         *zap.SugaredLogger
}

func NewGroceryService(
	planRepo repo.PlanRepository,
	recipeRepo repo.RecipeRepository,
	ingredientRepo repo.IngredientRepository,
	groceryRepo repo.GroceryRepository,
	logger *zap.SugaredLogger,
) *GroceryService {
	return &GroceryService{
		planRepo:       planRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		groceryRepo:    groceryRepo,
		logger:         logger,
	}
}

// BuildGroceryList aggregates the plan's recipes into a categorized shopping
// list and refreshes the persisted cache for the plan. The list is always
// recomputed from the plan; the cache rows only serve external readers.
func (s *GroceryService) BuildGroceryList(ctx context.Context, planID primitive.ObjectID) (*domain.GroceryList, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	list := &domain.GroceryList{
		PlanID:        planID,
		WeekStartDate: plan.WeekStartDate,
		Categories:    []domain.GroceryCategory{},
	}

	if len(plan.Items) == 0 {
		return list, nil
	}

	// each distinct recipe contributes its usages once, regardless of how
	// many slots it fills
	recipeIDs := make([]string, 0, len(plan.Items))
	seen := make(map[string]struct{})
	for _, item := range plan.Items {
		if _, ok := seen[item.RecipeID]; ok {
			continue
		}
		seen[item.RecipeID] = struct{}{}
		recipeIDs = append(recipeIDs, item.RecipeID)
	}

	recipes, err := s.recipeRepo.GetByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan recipes: %w", err)
	}

	ingredients, err := s.ingredientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	ingredientIndex := make(map[string]domain.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientIndex[ingredient.ID] = ingredient
	}

	var usages []domain.RecipeIngredient
	for _, recipe := range recipes {
		usages = append(usages, recipe.Ingredients...)
	}

	categories, totalPrice := planner.AggregateGrocery(usages, ingredientIndex)
	list.Categories = categories
	list.TotalEstimatedPrice = totalPrice

	s.saveCache(ctx, planID, categories)

	return list, nil
}

// saveCache replaces the cached rows for the plan. A failed delete is
// logged and the insert still runs; cache staleness is preferable to
// failing the request.
func (s *GroceryService) saveCache(ctx context.Context, planID primitive.ObjectID, categories []domain.GroceryCategory) {
	if err := s.groceryRepo.DeleteByPlanID(ctx, planID); err != nil {
		s.logger.Errorw("failed to delete old grocery items", "plan_id", planID.Hex(), "error", err)
	}

	var rows []domain.CachedGroceryItem
	for _, category := range categories {
		for _, item := range category.Items {
			rows = append(rows, domain.CachedGroceryItem{
				PlanID:         planID,
				IngredientID:   item.IngredientID,
				Amount:         item.Amount,
				Unit:           item.Unit,
				Category:       category.Category,
				EstimatedPrice: item.EstimatedPrice,
			})
		}
	}

	if err := s.groceryRepo.InsertMany(ctx, rows); err != nil {
		s.logger.Errorw("failed to insert grocery items", "plan_id", planID.Hex(), "error", err)
	}
}
