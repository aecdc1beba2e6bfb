package repo

import (
	"context"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}
