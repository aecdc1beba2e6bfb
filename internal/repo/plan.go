package repo

import (
	"context"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error)
	// GetRecentByUserID returns up to limit plans for the user, most recent
	// week_start_date first.
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Plan, error)
}

type GroceryRepository interface {
	DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error
	InsertMany(ctx context.Context, items []domain.CachedGroceryItem) error
}
