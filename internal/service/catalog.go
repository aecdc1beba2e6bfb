package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/parser"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
	"github.com/HitsujiNeko/BulkCart/internal/repo"
	"github.com/HitsujiNeko/BulkCart/internal/store/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CatalogService struct {
	importTaskRepo repo.ImportTaskRepository
	recipeRepo     repo.RecipeRepository
	ingredientRepo repo.IngredientRepository
	parser         *parser.GoogleSheetsCatalogParser
	broker         queue.Broker
	storage        *mongo.Storage
	logger         *zap.SugaredLogger
}

func NewCatalogService(
	importTaskRepo repo.ImportTaskRepository,
	recipeRepo repo.RecipeRepository,
	ingredientRepo repo.IngredientRepository,
	parser *parser.GoogleSheetsCatalogParser,
	broker queue.Broker,
	storage *mongo.Storage,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		importTaskRepo: importTaskRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		parser:         parser,
		broker:         broker,
		storage:        storage,
		logger:         logger,
	}
}

func (s *CatalogService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

func (s *CatalogService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// CreateImportTask records the task and queues it for the import worker.
// Rejected up front when no parser is configured, so no task can be queued
// that the worker cannot process.
func (s *CatalogService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	if s.parser == nil {
		return primitive.NilObjectID, fmt.Errorf("%w: importer is not configured", domain.ErrImportUnavailable)
	}

	task := &domain.ImportTask{
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
		RetryCount:    0,
	}

	if err := s.importTaskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.CatalogImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueCatalogImport, messageBytes); err != nil {
		_ = s.importTaskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("catalog import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

// RecordRetry bumps the task's retry counter before the broker redelivers
// the message, so operators can see how many attempts a stuck import took.
func (s *CatalogService) RecordRetry(ctx context.Context, taskID primitive.ObjectID) {
	if err := s.importTaskRepo.IncrementRetryCount(ctx, taskID); err != nil {
		s.logger.Errorw("failed to record retry", "task_id", taskID.Hex(), "error", err)
	}
}

func (s *CatalogService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.importTaskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask parses the spreadsheet and upserts ingredients and
// recipes inside one transaction, so the catalog never exposes recipes
// referencing ingredients that failed to land.
func (s *CatalogService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	// queued tasks can outlive a credentials change, so the worker path
	// guards too instead of trusting CreateImportTask
	if s.parser == nil {
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "importer is not configured")
		return fmt.Errorf("%w: importer is not configured", domain.ErrImportUnavailable)
	}

	task, err := s.importTaskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing catalog import", "task_id", taskID.Hex())

	ingredients, recipes, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	session, err := s.storage.StartSession()
	if err != nil {
		s.logger.Errorw("failed to start session", "task_id", taskID.Hex(), "error", err)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	err = session.StartTransaction()
	if err != nil {
		s.logger.Errorw("failed to start transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "failed to start transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := s.ingredientRepo.UpsertMany(ctx, ingredients); err != nil {
		s.logger.Errorw("failed to upsert ingredients", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to upsert ingredients: %w", err)
	}

	if err := s.recipeRepo.UpsertMany(ctx, recipes); err != nil {
		s.logger.Errorw("failed to upsert recipes", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to upsert recipes: %w", err)
	}

	if err := s.importTaskRepo.UpdateWithCounts(ctx, taskID, len(recipes), len(ingredients), domain.StatusCompleted); err != nil {
		s.logger.Errorw("failed to update task", "task_id", taskID.Hex(), "error", err)
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to update task: %w", err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		s.logger.Errorw("failed to commit transaction", "task_id", taskID.Hex(), "error", err)
		_ = s.importTaskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Infow("catalog import completed",
		"task_id", taskID.Hex(),
		"recipes", len(recipes),
		"ingredients", len(ingredients),
	)

	return nil
}
