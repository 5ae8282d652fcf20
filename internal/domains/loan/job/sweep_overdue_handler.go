package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"library-backend/internal/domains/loan/service"
	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

// SweepOverdueHandler runs the scheduled overdue sweep.
type SweepOverdueHandler struct {
	service service.ServiceInterface
}

// NewSweepOverdueHandler creates a new sweep task handler.
func NewSweepOverdueHandler(service service.ServiceInterface) *SweepOverdueHandler {
	return &SweepOverdueHandler{
		service: service,
	}
}

// ProcessTask implements asynq.Handler for shared.TypeSweepOverdueLoans.
// The sweep is idempotent, so retries after a transient failure are safe.
func (h *SweepOverdueHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.SweepOverdueLoansPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal sweep payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	result, err := h.service.SweepOverdue(ctx)
	if err != nil {
		logger.Error("Scheduled overdue sweep failed", err)
		return fmt.Errorf("sweep overdue loans: %w", err)
	}

	logger.Info("Scheduled overdue sweep finished", map[string]interface{}{
		"promoted_count": result.PromotedCount,
		"as_of":          result.AsOf,
	})

	return nil
}
