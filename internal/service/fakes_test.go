package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
)

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, userID string) (*domain.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *domain.UserProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

type fakeRecipeRepo struct {
	recipes []domain.Recipe
}

func (f *fakeRecipeRepo) GetAll(_ context.Context) ([]domain.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRecipeRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Recipe, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var out []domain.Recipe
	for _, recipe := range f.recipes {
		if _, ok := want[recipe.ID]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) UpsertMany(_ context.Context, recipes []domain.Recipe) error {
	f.recipes = recipes
	return nil
}

type fakeIngredientRepo struct {
	ingredients []domain.Ingredient
}

func (f *fakeIngredientRepo) GetAll(_ context.Context) ([]domain.Ingredient, error) {
	return f.ingredients, nil
}

func (f *fakeIngredientRepo) UpsertMany(_ context.Context, ingredients []domain.Ingredient) error {
	f.ingredients = ingredients
	return nil
}

type fakePlanRepo struct {
	created   []*domain.Plan
	recent    []domain.Plan
	recentErr error
}

func (f *fakePlanRepo) Create(_ context.Context, plan *domain.Plan) error {
	f.created = append(f.created, plan)
	return nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	for _, plan := range f.created {
		if plan.ID == id {
			return plan, nil
		}
	}
	return nil, fmt.Errorf("plan %s: %w", id.Hex(), domain.ErrNotFound)
}

func (f *fakePlanRepo) GetRecentByUserID(_ context.Context, _ string, _ int) ([]domain.Plan, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

type fakeGroceryRepo struct {
	deleted  []primitive.ObjectID
	inserted []domain.CachedGroceryItem
}

func (f *fakeGroceryRepo) DeleteByPlanID(_ context.Context, planID primitive.ObjectID) error {
	f.deleted = append(f.deleted, planID)
	return nil
}

func (f *fakeGroceryRepo) InsertMany(_ context.Context, items []domain.CachedGroceryItem) error {
	f.inserted = append(f.inserted, items...)
	return nil
}

type fakeImportTaskRepo struct {
	tasks map[primitive.ObjectID]*domain.ImportTask
}

func newFakeImportTaskRepo() *fakeImportTaskRepo {
	return &fakeImportTaskRepo{tasks: make(map[primitive.ObjectID]*domain.ImportTask)}
}

func (f *fakeImportTaskRepo) Create(_ context.Context, task *domain.ImportTask) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeImportTaskRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return task, nil
}

func (f *fakeImportTaskRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	task, ok := f.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	task.Status = status
	if errorMsg != "" {
		task.ErrorMessage = errorMsg
	}
	return nil
}

func (f *fakeImportTaskRepo) UpdateWithCounts(_ context.Context, id primitive.ObjectID, recipeCount, ingredientCount int, status domain.ImportTaskStatus) error {
	task, ok := f.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	task.RecipeCount = recipeCount
	task.IngredientCount = ingredientCount
	task.Status = status
	return nil
}

func (f *fakeImportTaskRepo) IncrementRetryCount(_ context.Context, id primitive.ObjectID) error {
	task, ok := f.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	task.RetryCount++
	return nil
}

type fakeBroker struct {
	published map[string][][]byte
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][][]byte)}
}

func (f *fakeBroker) Publish(_ context.Context, queueName string, message []byte) error {
	f.published[queueName] = append(f.published[queueName], message)
	return nil
}

func (f *fakeBroker) Subscribe(_ context.Context, _ string, _ queue.MessageHandler) error {
	return nil
}

func (f *fakeBroker) Close() error {
	return nil
}
