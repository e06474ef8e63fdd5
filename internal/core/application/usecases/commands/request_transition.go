package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"
)

// applyTransition loads a request, applies transition and saves the result in
// one unit of work. A failed transition leaves storage untouched.
func applyTransition(
	ctx context.Context,
	uowFactory RequestUoWFactory,
	requestID kernel.UUID,
	transition func(*request.Request) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	req, err := requestRepo.Get(ctx, requestID)
	if err != nil {
		return err
	}

	if err = transition(req); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
