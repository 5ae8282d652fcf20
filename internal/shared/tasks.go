package shared

import "time"

// Asynq task types.
const (
	TypeSweepOverdueLoans = "loan:sweep_overdue"
)

// Asynq queue names.
const (
	QueueDefault = "default"
	QueueLoans   = "loans"
)

// SweepOverdueLoansPayload carries an optional reference date for the
// overdue sweep. Zero means "now" at processing time.
type SweepOverdueLoansPayload struct {
	Date time.Time `json:"date,omitempty"`
}
