package queries

import (
	"context"

	"servicerequest/internal/core/domain/model/request"

	"gorm.io/gorm"
)

type ListOpenRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListOpenRequestsQueryHandler(db *gorm.DB) ListOpenRequestsQueryHandler {
	return ListOpenRequestsQueryHandler{db: db}
}

func (h ListOpenRequestsQueryHandler) Handle(ctx context.Context, query ListOpenRequestsQuery) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("requests").
		Select(requestViewColumns).
		Where("status NOT IN ?", []string{request.Closed.String(), request.Rejected.String()})
	if query.status != request.Unknown {
		tx = tx.Where("status = ?", query.status.String())
	}
	if query.applicant != nil {
		tx = tx.Where("applicant_id = ?", query.applicant.String())
	}

	rows, err := tx.Order("created_at, id").Limit(query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]RequestView, 0)
	for rows.Next() {
		view, scanErr := scanRequestView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
