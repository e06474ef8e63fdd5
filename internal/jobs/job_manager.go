package jobs

import (
	"fmt"
	"log/slog"

	"servicerequest/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statusGaugeJob *StatusGaugeJob
}

func NewJobManager(
	summaryHandler statusSummaryHandler,
	m *metrics.Metrics,
	statusGaugeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusGaugeJob: NewStatusGaugeJob(summaryHandler, m, statusGaugeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusGaugeJob.Start(); err != nil {
		return fmt.Errorf("failed to start status gauge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusGaugeJob.Stop()
}
