package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection("user_profiles"),
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile domain.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	profile.UpdatedAt = now

	// created_at is set only on insert, so $set lists fields explicitly
	update := bson.M{
		"$set": bson.M{
			"goal":                   profile.Goal,
			"weight_kg":              profile.WeightKG,
			"training_days_per_week": profile.TrainingDaysPerWeek,
			"cooking_time_weekday":   profile.CookingTimeWeekday,
			"cooking_time_weekend":   profile.CookingTimeWeekend,
			"allergies":              profile.Allergies,
			"dislikes":               profile.Dislikes,
			"updated_at":             profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.ID}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
