package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/planner"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
	"github.com/HitsujiNeko/BulkCart/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	// defaultHistoryWeeks is how many prior weekly plans feed the
	// diversity score.
	defaultHistoryWeeks = 3

	defaultWeekdayCookingTime = 30
	defaultWeekendCookingTime = 60
)

type PlanService struct {
	profileRepo    repo.ProfileRepository
	recipeRepo     repo.RecipeRepository
	ingredientRepo repo.IngredientRepository
	planRepo       repo.PlanRepository
	broker         queue.Broker
	logger         *zap.SugaredLogger
	historyWeeks   int
}

func NewPlanService(
	profileRepo repo.ProfileRepository,
	recipeRepo repo.RecipeRepository,
	ingredientRepo repo.IngredientRepository,
	planRepo repo.PlanRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *PlanService {
	return &PlanService{
		profileRepo:    profileRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		planRepo:       planRepo,
		broker:         broker,
		logger:         logger,
		historyWeeks:   defaultHistoryWeeks,
	}
}

// SetHistoryWeeks overrides how many prior plans feed the diversity score.
func (s *PlanService) SetHistoryWeeks(weeks int) {
	s.historyWeeks = weeks
}

// GeneratePlan assembles a 7-day, 2-meals-per-day plan for the user and
// persists it. The catalog and ingredient master are read once as snapshots;
// the 14 slots are then filled greedily, lunch and dinner per day in order,
// each slot taking the highest-scoring eligible recipe. On equal scores the
// recipe that appears first in the catalog wins, so the run is deterministic
// for a fixed catalog and history.
func (s *PlanService) GeneratePlan(ctx context.Context, userID, weekStartDate string) (*domain.Plan, error) {
	if !planner.IsMonday(weekStartDate) {
		return nil, fmt.Errorf("%w: week_start_date %q must be a Monday (YYYY-MM-DD)", domain.ErrValidation, weekStartDate)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	perMealTarget := planner.CalculatePerMealTarget(profile.Goal, profile.WeightKG)

	recipes, err := s.recipeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}

	ingredients, err := s.ingredientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	ingredientIndex := make(map[string]domain.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientIndex[ingredient.ID] = ingredient
	}

	constraints := planner.Constraints{
		Allergies: profile.Allergies,
		Dislikes:  profile.Dislikes,
	}

	eligible := planner.FilterByConstraints(recipes, constraints, ingredientIndex)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: no recipes satisfy the user's constraints", domain.ErrGenerationFailed)
	}

	recentRecipeIDs := s.recentRecipeIDs(ctx, userID, s.historyWeeks)

	weekdayTime := profile.CookingTimeWeekday
	if weekdayTime <= 0 {
		weekdayTime = defaultWeekdayCookingTime
	}
	weekendTime := profile.CookingTimeWeekend
	if weekendTime <= 0 {
		weekendTime = defaultWeekendCookingTime
	}

	selected := make([]domain.Recipe, 0, 14)
	items := make([]domain.PlanItem, 0, 14)

	for day := 0; day < 7; day++ {
		maxTime := weekendTime
		if day <= 4 {
			maxTime = weekdayTime
		}

		for _, slot := range []domain.MealSlot{domain.MealLunch, domain.MealDinner} {
			scoringCtx := planner.ScoringContext{
				Target:          perMealTarget,
				Goal:            profile.Goal,
				Selected:        selected,
				MaxTime:         maxTime,
				RecentRecipeIDs: recentRecipeIDs,
			}

			best, ok := pickBest(eligible, scoringCtx)
			if !ok {
				return nil, fmt.Errorf("%w: no candidate for day %d %s", domain.ErrGenerationFailed, day, slot)
			}

			selected = append(selected, best)
			items = append(items, domain.PlanItem{
				DayOfWeek: day,
				MealSlot:  slot,
				RecipeID:  best.ID,
			})
		}
	}

	totalProtein := 0.0
	totalCalories := 0
	for _, recipe := range selected {
		totalProtein += recipe.ProteinG
		totalCalories += recipe.Calories
	}

	plan := &domain.Plan{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		WeekStartDate: weekStartDate,
		Goal:          profile.Goal,
		Items:         items,
		TotalProteinG: math.Round(totalProtein*10) / 10,
		TotalCalories: totalCalories,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.logger.Infow("plan generated",
		"plan_id", plan.ID.Hex(),
		"user_id", userID,
		"week_start_date", weekStartDate,
		"total_protein_g", plan.TotalProteinG,
		"total_calories", plan.TotalCalories,
	)

	s.publishPlanGenerated(ctx, plan)

	return plan, nil
}

func (s *PlanService) GetPlan(ctx context.Context, planID primitive.ObjectID) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return plan, nil
}

// pickBest scores every eligible recipe and keeps the first one with the
// strictly highest score, preserving catalog order among ties.
func pickBest(eligible []domain.Recipe, ctx planner.ScoringContext) (domain.Recipe, bool) {
	if len(eligible) == 0 {
		return domain.Recipe{}, false
	}

	best := eligible[0]
	bestScore := planner.TotalScore(best, ctx)

	for _, candidate := range eligible[1:] {
		if score := planner.TotalScore(candidate, ctx); score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best, true
}

// recentRecipeIDs flattens the recipe ids of the user's most recent plans.
// History read failures are not fatal to generation, so there is no error
// return; a failed read just disables diversity scoring for the run.
func (s *PlanService) recentRecipeIDs(ctx context.Context, userID string, weeks int) []string {
	plans, err := s.planRepo.GetRecentByUserID(ctx, userID, weeks)
	if err != nil {
		s.logger.Warnw("failed to load plan history, diversity scoring disabled for this run",
			"user_id", userID, "error", err)
		return nil
	}

	var ids []string
	for _, plan := range plans {
		for _, item := range plan.Items {
			ids = append(ids, item.RecipeID)
		}
	}

	return ids
}

// publishPlanGenerated is best-effort: the grocery cache pre-warm is a
// convenience, losing the event never fails the generation.
func (s *PlanService) publishPlanGenerated(ctx context.Context, plan *domain.Plan) {
	if s.broker == nil {
		return
	}

	event := domain.PlanGeneratedEvent{
		EventType:     domain.EventPlanGenerated,
		PlanID:        plan.ID.Hex(),
		UserID:        plan.UserID,
		WeekStartDate: plan.WeekStartDate,
		Timestamp:     time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal plan event", "plan_id", plan.ID.Hex(), "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueuePlanEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish plan event", "plan_id", plan.ID.Hex(), "error", err)
	}
}
