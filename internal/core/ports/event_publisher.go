package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// EventPublisher announces committed order changes to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
