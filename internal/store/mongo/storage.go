package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

func (s *Storage) StartSession() (mongo.Session, error) {
	return s.client.StartSession()
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// plans: recent-plan lookups per user, newest week first
	planIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "week_start_date", Value: -1}},
		},
	}
	if _, err := s.database.Collection("plans").Indexes().CreateMany(ctx, planIndexes); err != nil {
		return fmt.Errorf("failed to create plans indexes: %w", err)
	}

	// recipes: tag filters for catalog search
	recipeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
	}
	if _, err := s.database.Collection("recipes").Indexes().CreateMany(ctx, recipeIndexes); err != nil {
		return fmt.Errorf("failed to create recipes indexes: %w", err)
	}

	// grocery_items: cache rows replaced wholesale per plan
	groceryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "plan_id", Value: 1}},
		},
	}
	if _, err := s.database.Collection("grocery_items").Indexes().CreateMany(ctx, groceryIndexes); err != nil {
		return fmt.Errorf("failed to create grocery_items indexes: %w", err)
	}

	// import_tasks: worker scans by status, operators by age
	taskIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}
	if _, err := s.database.Collection("import_tasks").Indexes().CreateMany(ctx, taskIndexes); err != nil {
		return fmt.Errorf("failed to create import_tasks indexes: %w", err)
	}

	return nil
}
