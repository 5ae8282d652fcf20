package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
	}
}

// RegisterLoanJobs registers all scheduled loan maintenance jobs.
func (s *Scheduler) RegisterLoanJobs() error {
	return s.registerSweepOverdueLoansJob()
}

// Sweep Overdue Loans (hourly). The sweep is idempotent and overdue is
// a date-granularity notion, so hourly is plenty; the first run after
// midnight UTC catches loans that became overdue that day.
func (s *Scheduler) registerSweepOverdueLoansJob() error {
	payload, err := json.Marshal(shared.SweepOverdueLoansPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSweepOverdueLoans, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // Hourly at minute 0
		task,
		asynq.Queue(shared.QueueLoans),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepOverdueLoans job", err)
		return err
	}

	logger.Info("Registered SweepOverdueLoans: hourly", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
