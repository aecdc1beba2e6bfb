package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
	"github.com/HitsujiNeko/BulkCart/internal/queue"
	"github.com/HitsujiNeko/BulkCart/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PlanEventsWorker pre-warms the grocery cache whenever a plan is generated,
// so the first grocery request after generation hits fresh cache rows.
type PlanEventsWorker struct {
	groceryService *service.GroceryService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewPlanEventsWorker(
	groceryService *service.GroceryService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *PlanEventsWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &PlanEventsWorker{
		groceryService: groceryService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *PlanEventsWorker) Start() error {
	w.logger.Info("starting plan events worker")

	return w.broker.Subscribe(w.ctx, queue.QueuePlanEvents, w.handleMessage)
}

func (w *PlanEventsWorker) Stop() {
	w.logger.Info("stopping plan events worker")
	w.cancel()
}

func (w *PlanEventsWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.PlanGeneratedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.EventType != domain.EventPlanGenerated {
		w.logger.Warnw("ignoring unknown event type", "event_type", event.EventType)
		return nil
	}

	planID, err := primitive.ObjectIDFromHex(event.PlanID)
	if err != nil {
		w.logger.Errorw("invalid plan ID", "plan_id", event.PlanID, "error", err)
		return fmt.Errorf("invalid plan ID: %w", err)
	}

	w.logger.Infow("pre-warming grocery cache", "plan_id", event.PlanID)

	if _, err := w.groceryService.BuildGroceryList(ctx, planID); err != nil {
		w.logger.Errorw("failed to build grocery list", "plan_id", event.PlanID, "error", err)
		return err
	}

	return nil
}
