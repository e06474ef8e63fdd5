package queries

import (
	"context"
	"database/sql"
	"errors"

	"servicerequest/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError if the request does not exist.
func (h GetRequestQueryHandler) Handle(ctx context.Context, query GetRequestQuery) (RequestView, error) {
	if err := query.Validate(); err != nil {
		return RequestView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+requestViewColumns+`
		FROM requests
		WHERE id = ?
	`, query.RequestID().Bytes()).Row()
	if err := row.Err(); err != nil {
		return RequestView{}, err
	}

	view, err := scanRequestView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RequestView{}, errs.NewObjectNotFoundError("request", query.RequestID().String())
	}
	return view, err
}
