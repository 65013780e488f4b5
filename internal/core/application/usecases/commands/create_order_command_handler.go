package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/status"
)

// InitialStatusName is the status assigned to externally created orders.
const InitialStatusName = status.Created

// CreateOrderCommandHandler prices and stores new orders.
//
// Every product is resolved to its owning service before anything is
// written. One unknown product aborts the whole command with
// *catalog.ProductNotFoundError and the store is left untouched.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle creates the order and returns its new identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	serviceIDs, err := uow.CatalogRepository().ServiceIDsByProductIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return kernel.UUID{}, err
	}

	initial, err := uow.StatusRepository().GetByName(ctx, cmd.StatusName())
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("initial status %q: %w", cmd.StatusName(), err)
	}

	items := cmd.Items()
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, order.Line{
			ProductID: item.ProductID,
			ServiceID: serviceIDs[item.ProductID],
			Quantity:  item.Quantity,
		})
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.ResellerID(),
		cmd.CustomerID(),
		initial.ID(),
		h.now(),
		lines,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
