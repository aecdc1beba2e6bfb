package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HitsujiNeko/BulkCart/docs"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
	"github.com/HitsujiNeko/BulkCart/internal/ratelimiter"
	"github.com/HitsujiNeko/BulkCart/internal/repo"
	"github.com/HitsujiNeko/BulkCart/internal/service"
	"github.com/HitsujiNeko/BulkCart/internal/store/mongo"
	"github.com/HitsujiNeko/BulkCart/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config           config
	logger           *zap.SugaredLogger
	rateLimiter      ratelimiter.Limiter
	storage          *mongo.Storage
	broker           queue.Broker
	profileRepo      repo.ProfileRepository
	planService      *service.PlanService
	groceryService   *service.GroceryService
	prepService      *service.PrepService
	catalogService   *service.CatalogService
	importWorker     *worker.CatalogImportWorker
	planEventsWorker *worker.PlanEventsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/plans", app.generatePlanHandler)
		r.Get("/plans/{plan_id}", app.getPlanHandler)
		r.Get("/plans/{plan_id}/grocery", app.getGroceryListHandler)
		r.Get("/plans/{plan_id}/prep", app.getPrepTimelineHandler)

		r.Get("/recipes", app.listRecipesHandler)
		r.Get("/recipes/{recipe_id}", app.getRecipeHandler)

		r.Get("/profiles/{user_id}", app.getProfileHandler)
		r.Put("/profiles/{user_id}", app.updateProfileHandler)
		r.Get("/profiles/{user_id}/targets", app.getTargetsHandler)

		r.Post("/import", app.createImportTaskHandler)
		r.Get("/import/{task_id}", app.getImportTaskHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "BulkCart"
	docs.SwaggerInfo.Description = "Weekly meal plan generation API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start catalog import worker: %w", err)
		}
	}
	if app.planEventsWorker != nil {
		if err := app.planEventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start plan events worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.importWorker != nil {
			app.importWorker.Stop()
		}
		if app.planEventsWorker != nil {
			app.planEventsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
