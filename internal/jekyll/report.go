package jekyll

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one conversion run.
type Report struct {
	RunID     string
	Processed int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

// NewReport creates a report with a fresh run identifier.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}
