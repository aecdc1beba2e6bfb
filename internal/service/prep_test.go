package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

func TestBuildPrepTimeline(t *testing.T) {
	recipes := []domain.Recipe{
		{
			ID: "r-chicken", Name: "鶏むねの塩麹焼き", CookingTime: 20,
			Tags: []string{"chicken", "batchable"},
		},
		{
			ID: "r-eggs", Name: "ゆで卵", CookingTime: 12,
			Tags: []string{"egg", "batchable"},
		},
		{
			ID: "r-fresh-salad", Name: "サラダ", CookingTime: 5,
			Tags: []string{"vegetable"},
		},
	}

	planID := primitive.NewObjectID()
	plan := &domain.Plan{
		ID:            planID,
		WeekStartDate: "2026-08-24",
		Items: []domain.PlanItem{
			{DayOfWeek: 0, MealSlot: domain.MealLunch, RecipeID: "r-chicken"},
			{DayOfWeek: 0, MealSlot: domain.MealDinner, RecipeID: "r-eggs"},
			{DayOfWeek: 1, MealSlot: domain.MealLunch, RecipeID: "r-chicken"},
			{DayOfWeek: 1, MealSlot: domain.MealDinner, RecipeID: "r-fresh-salad"},
		},
	}

	svc := NewPrepService(
		&fakePlanRepo{created: []*domain.Plan{plan}},
		&fakeRecipeRepo{recipes: recipes},
		zap.NewNop().Sugar(),
	)

	timeline, err := svc.BuildPrepTimeline(context.Background(), planID)
	require.NoError(t, err)

	assert.Equal(t, planID, timeline.PlanID)
	assert.Equal(t, "2026-08-24", timeline.WeekStartDate)
	assert.Equal(t, "日曜日", timeline.PrepDay)
	require.NotEmpty(t, timeline.Tasks)

	// fresh salad is not batchable, so the chicken tasks only reference the
	// chicken recipe once despite its two slots
	for _, task := range timeline.Tasks {
		assert.NotContains(t, task.Recipes, "r-fresh-salad")
	}

	sum := 0
	for _, task := range timeline.Tasks {
		sum += task.DurationMinutes
	}
	assert.Equal(t, timeline.TotalTimeMinutes, sum)
	assert.Equal(t, "00:00", timeline.Tasks[0].Time)
}

func TestBuildPrepTimelineNoBatchableRecipes(t *testing.T) {
	planID := primitive.NewObjectID()
	plan := &domain.Plan{
		ID:            planID,
		WeekStartDate: "2026-08-24",
		Items: []domain.PlanItem{
			{DayOfWeek: 0, MealSlot: domain.MealLunch, RecipeID: "r-fresh"},
		},
	}

	svc := NewPrepService(
		&fakePlanRepo{created: []*domain.Plan{plan}},
		&fakeRecipeRepo{recipes: []domain.Recipe{
			{ID: "r-fresh", Name: "サラダ", Tags: []string{"vegetable"}},
		}},
		zap.NewNop().Sugar(),
	)

	timeline, err := svc.BuildPrepTimeline(context.Background(), planID)
	require.NoError(t, err)

	assert.Empty(t, timeline.Tasks)
	assert.Zero(t, timeline.TotalTimeMinutes)
}

func TestBuildPrepTimelinePlanNotFound(t *testing.T) {
	svc := NewPrepService(
		&fakePlanRepo{},
		&fakeRecipeRepo{},
		zap.NewNop().Sugar(),
	)

	_, err := svc.BuildPrepTimeline(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
