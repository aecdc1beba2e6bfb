package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testCatalog() ([]domain.Recipe, []domain.Ingredient) {
	recipes := []domain.Recipe{
		{
			ID: "r-chicken-rice", Name: "鶏むね丼",
			ProteinG: 45, FatG: 8, CarbG: 90, Calories: 620,
			CookingTime: 20, Difficulty: domain.DifficultyEasy,
			Tags: []string{"chicken", "batchable"},
			Ingredients: []domain.RecipeIngredient{
				{IngredientID: "ing-chicken", Amount: 150, Unit: "g"},
				{IngredientID: "ing-rice", Amount: 200, Unit: "g"},
			},
		},
		{
			ID: "r-salmon", Name: "鮭の塩焼き定食",
			ProteinG: 38, FatG: 15, CarbG: 85, Calories: 640,
			CookingTime: 25, Difficulty: domain.DifficultyMedium,
			Tags: []string{"fish"},
			Ingredients: []domain.RecipeIngredient{
				{IngredientID: "ing-salmon", Amount: 100, Unit: "g"},
				{IngredientID: "ing-rice", Amount: 200, Unit: "g"},
			},
		},
		{
			ID: "r-omelette", Name: "オムレツ定食",
			ProteinG: 30, FatG: 20, CarbG: 70, Calories: 580,
			CookingTime: 15, Difficulty: domain.DifficultyEasy,
			Tags: []string{"egg"},
			Ingredients: []domain.RecipeIngredient{
				{IngredientID: "ing-egg", Amount: 3, Unit: "個"},
			},
		},
		{
			ID: "r-beef-stew", Name: "ビーフシチュー",
			ProteinG: 35, FatG: 25, CarbG: 60, Calories: 700,
			CookingTime: 60, Difficulty: domain.DifficultyHard,
			Tags: []string{"beef"},
			Ingredients: []domain.RecipeIngredient{
				{IngredientID: "ing-beef", Amount: 200, Unit: "g"},
				{IngredientID: "ing-onion", Amount: 1, Unit: "個"},
			},
		},
	}

	ingredients := []domain.Ingredient{
		{ID: "ing-chicken", Name: "鶏むね肉", Category: domain.CategoryMeat},
		{ID: "ing-salmon", Name: "鮭", Category: domain.CategoryFish},
		{ID: "ing-egg", Name: "卵", Category: domain.CategoryEggDairy},
		{ID: "ing-beef", Name: "牛肉", Category: domain.CategoryMeat},
		{ID: "ing-rice", Name: "白米", Category: domain.CategoryGrain},
		{ID: "ing-onion", Name: "玉ねぎ", Category: domain.CategoryVegetable},
	}

	return recipes, ingredients
}

func newTestPlanService(profile *domain.UserProfile, planRepo *fakePlanRepo, broker queue.Broker) *PlanService {
	recipes, ingredients := testCatalog()

	return NewPlanService(
		&fakeProfileRepo{profiles: map[string]*domain.UserProfile{profile.ID: profile}},
		&fakeRecipeRepo{recipes: recipes},
		&fakeIngredientRepo{ingredients: ingredients},
		planRepo,
		broker,
		zap.NewNop().Sugar(),
	)
}

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:                 "user-1",
		Goal:               domain.GoalBulk,
		WeightKG:           floatPtr(70),
		CookingTimeWeekday: 30,
		CookingTimeWeekend: 60,
	}
}

func TestGeneratePlan(t *testing.T) {
	planRepo := &fakePlanRepo{}
	broker := newFakeBroker()
	svc := newTestPlanService(testProfile(), planRepo, broker)

	plan, err := svc.GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, "user-1", plan.UserID)
	assert.Equal(t, "2026-08-24", plan.WeekStartDate)
	assert.Equal(t, domain.GoalBulk, plan.Goal)
	require.Len(t, plan.Items, 14)

	// every (day, lunch|dinner) pair is filled exactly once
	seen := make(map[string]bool)
	for _, item := range plan.Items {
		assert.GreaterOrEqual(t, item.DayOfWeek, 0)
		assert.LessOrEqual(t, item.DayOfWeek, 6)
		assert.Contains(t, []domain.MealSlot{domain.MealLunch, domain.MealDinner}, item.MealSlot)
		assert.NotEmpty(t, item.RecipeID)

		key := string(rune('0'+item.DayOfWeek)) + string(item.MealSlot)
		assert.False(t, seen[key], "slot filled twice: day %d %s", item.DayOfWeek, item.MealSlot)
		seen[key] = true
	}
	assert.Len(t, seen, 14)

	// totals are the sums over the selected recipes
	recipes, _ := testCatalog()
	byID := make(map[string]domain.Recipe)
	for _, r := range recipes {
		byID[r.ID] = r
	}
	wantProtein := 0.0
	wantCalories := 0
	for _, item := range plan.Items {
		r := byID[item.RecipeID]
		wantProtein += r.ProteinG
		wantCalories += r.Calories
	}
	assert.InDelta(t, wantProtein, plan.TotalProteinG, 0.05)
	assert.Equal(t, wantCalories, plan.TotalCalories)

	// persisted exactly once
	require.Len(t, planRepo.created, 1)
	assert.Equal(t, plan, planRepo.created[0])
}

func TestGeneratePlanIsDeterministic(t *testing.T) {
	first, err := newTestPlanService(testProfile(), &fakePlanRepo{}, nil).
		GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)

	second, err := newTestPlanService(testProfile(), &fakePlanRepo{}, nil).
		GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)

	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].RecipeID, second.Items[i].RecipeID)
	}
}

func TestGeneratePlanPublishesEvent(t *testing.T) {
	broker := newFakeBroker()
	svc := newTestPlanService(testProfile(), &fakePlanRepo{}, broker)

	plan, err := svc.GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)

	require.Len(t, broker.published[queue.QueuePlanEvents], 1)

	var event domain.PlanGeneratedEvent
	require.NoError(t, json.Unmarshal(broker.published[queue.QueuePlanEvents][0], &event))
	assert.Equal(t, domain.EventPlanGenerated, event.EventType)
	assert.Equal(t, plan.ID.Hex(), event.PlanID)
	assert.Equal(t, "user-1", event.UserID)
}

func TestGeneratePlanNilBroker(t *testing.T) {
	svc := newTestPlanService(testProfile(), &fakePlanRepo{}, nil)

	_, err := svc.GeneratePlan(context.Background(), "user-1", "2026-08-24")
	assert.NoError(t, err)
}

func TestGeneratePlanRejectsNonMondayWeekStart(t *testing.T) {
	planRepo := &fakePlanRepo{}
	svc := newTestPlanService(testProfile(), planRepo, nil)

	for _, date := range []string{"2026-08-30", "2026-08-25", "not-a-date", ""} {
		_, err := svc.GeneratePlan(context.Background(), "user-1", date)

		require.Error(t, err, "date %q", date)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Empty(t, planRepo.created)
}

func TestGeneratePlanConstraintsExcludeEverything(t *testing.T) {
	profile := testProfile()
	profile.Dislikes = []string{"鶏むね肉", "鮭", "卵", "牛肉"}

	planRepo := &fakePlanRepo{}
	broker := newFakeBroker()
	svc := newTestPlanService(profile, planRepo, broker)

	_, err := svc.GeneratePlan(context.Background(), "user-1", "2026-08-24")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGenerationFailed))
	assert.Empty(t, planRepo.created)
	assert.Empty(t, broker.published)
}

func TestGeneratePlanProfileNotFound(t *testing.T) {
	svc := newTestPlanService(testProfile(), &fakePlanRepo{}, nil)

	_, err := svc.GeneratePlan(context.Background(), "user-missing", "2026-08-24")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGeneratePlanHistoryFailureIsNotFatal(t *testing.T) {
	planRepo := &fakePlanRepo{recentErr: errors.New("mongo timeout")}
	svc := newTestPlanService(testProfile(), planRepo, nil)

	plan, err := svc.GeneratePlan(context.Background(), "user-1", "2026-08-24")

	require.NoError(t, err)
	assert.Len(t, plan.Items, 14)
}

func TestGeneratePlanHistoryLowersRepeatSelection(t *testing.T) {
	// without history the bulk profile favours the chicken rice bowl; three
	// recent uses cost it the full diversity score
	baseline, err := newTestPlanService(testProfile(), &fakePlanRepo{}, nil).
		GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)

	uses := 0
	for _, item := range baseline.Items {
		if item.RecipeID == "r-chicken-rice" {
			uses++
		}
	}
	require.Greater(t, uses, 0)

	planRepo := &fakePlanRepo{recent: []domain.Plan{{
		Items: []domain.PlanItem{
			{RecipeID: "r-chicken-rice"},
			{RecipeID: "r-chicken-rice"},
			{RecipeID: "r-chicken-rice"},
			{RecipeID: "r-chicken-rice"},
		},
	}}}
	withHistory, err := newTestPlanService(testProfile(), planRepo, nil).
		GeneratePlan(context.Background(), "user-1", "2026-08-24")
	require.NoError(t, err)

	historyUses := 0
	for _, item := range withHistory.Items {
		if item.RecipeID == "r-chicken-rice" {
			historyUses++
		}
	}
	assert.LessOrEqual(t, historyUses, uses)
}
