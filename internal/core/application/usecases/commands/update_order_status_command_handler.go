package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/status"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves orders between statuses.
//
// The outcome is one of order.NotFound, order.InvalidStatus, order.NoChange
// or order.Updated; an error is returned only for store faults,
// cancellation or a command that was not constructed. Only the Updated path
// writes. Concurrent transitions of the same order are not serialised: the
// last commit wins.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, status.ByName(status.Completed))
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err
//	case result == order.NotFound:
//	    return echo.ErrNotFound
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(uowFactory StatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (order.StatusUpdateResult, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.NotFound, nil
	}
	if err != nil {
		return 0, err
	}

	target, err := cmd.Target().Resolve(ctx, uow.StatusRepository())
	if errors.Is(err, status.ErrStatusNotFound) || errors.Is(err, status.ErrEmptyRef) {
		return order.InvalidStatus, nil
	}
	if err != nil {
		return 0, err
	}

	changed, err := current.ChangeStatus(target.ID(), h.now())
	if err != nil {
		return 0, err
	}
	if !changed {
		return order.NoChange, nil
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return order.Updated, nil
}
