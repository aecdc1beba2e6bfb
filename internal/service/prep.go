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

// prepDay is fixed for now; a per-user setting is a possible follow-up.
const prepDay = "日曜日"

type PrepService struct {
	planRepo   repo.PlanRepository
	recipeRepo repo.RecipeRepository
	logger     *zap.SugaredLogger
}

func NewPrepService(
	planRepo repo.PlanRepository,
	recipeRepo repo.RecipeRepository,
	logger *zap.SugaredLogger,
) *PrepService {
	return &PrepService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

// BuildPrepTimeline sequences the plan's batch-cookable recipes into a
// weekly prep schedule. The timeline is recomputed fresh on every call and
// never persisted.
func (s *PrepService) BuildPrepTimeline(ctx context.Context, planID primitive.ObjectID) (*domain.PrepTimeline, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	recipeIDs := make([]string, 0, len(plan.Items))
	for _, item := range plan.Items {
		recipeIDs = append(recipeIDs, item.RecipeID)
	}

	recipes, err := s.recipeRepo.GetByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan recipes: %w", err)
	}

	// batchable recipes only, de-duplicated by name
	seen := make(map[string]struct{})
	batchable := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if !recipe.HasTag(domain.TagBatchable) {
			continue
		}
		if _, ok := seen[recipe.Name]; ok {
			continue
		}
		seen[recipe.Name] = struct{}{}
		batchable = append(batchable, recipe)
	}

	tasks, totalMinutes := planner.BuildPrepTasks(batchable)

	return &domain.PrepTimeline{
		PlanID:           planID,
		WeekStartDate:    plan.WeekStartDate,
		PrepDay:          prepDay,
		TotalTimeMinutes: totalMinutes,
		Tasks:            tasks,
	}, nil
}
