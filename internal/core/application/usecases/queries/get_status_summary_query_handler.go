package queries

import (
	"context"

	"servicerequest/internal/core/domain/model/request"

	"gorm.io/gorm"
)

type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

func (h GetStatusSummaryQueryHandler) Handle(ctx context.Context, query GetStatusSummaryQuery) (StatusSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make(StatusSummary, len(request.Statuses()))
	for _, s := range request.Statuses() {
		summary[s.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM requests
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
