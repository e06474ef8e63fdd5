package jobs

import (
	"context"
	"log/slog"

	"servicerequest/internal/core/application/usecases/queries"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultStatusGaugeSchedule runs the refresh every fifteen seconds.
const DefaultStatusGaugeSchedule = "*/15 * * * * *"

type statusSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error)
}

// StatusGaugeJob copies the status summary into the requests-per-status gauge.
type StatusGaugeJob struct {
	handler  statusSummaryHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatusGaugeJob(
	handler statusSummaryHandler,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *StatusGaugeJob {
	if schedule == "" {
		schedule = DefaultStatusGaugeSchedule
	}
	return &StatusGaugeJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_gauge_job"),
	}
}

func (j *StatusGaugeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status gauge job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single refresh.
func (j *StatusGaugeJob) RunOnce(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status gauge refresh failed", "error", err)
		return err
	}

	statuses := request.Statuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	j.metrics.SetStatusCounts(names, summary)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *StatusGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status gauge job stopped")
}
