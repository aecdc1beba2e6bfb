package repo

import (
	"context"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	UpdateWithCounts(ctx context.Context, id primitive.ObjectID, recipeCount, ingredientCount int, status domain.ImportTaskStatus) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
