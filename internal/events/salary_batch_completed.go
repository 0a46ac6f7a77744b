package events

import "time"

const SalaryBatchCompletedTopic = "hr.salary.batch.completed.v1"

// SalaryBatchCompletedEvent is emitted after a monthly generation run
// finishes, whether or not every employee succeeded. Errors carries one
// entry per failed employee so downstream consumers can reconcile.
type SalaryBatchCompletedEvent struct {
	EventType      string    `json:"event_type"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	GeneratedCount int       `json:"generated_count"`
	SkippedCount   int       `json:"skipped_count"`
	Errors         []string  `json:"errors,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
