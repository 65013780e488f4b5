package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

// Event is something that happened to an order and is announced to other
// systems once the change is committed.
type Event interface {
	Name() string
	OrderID() kernel.UUID
	OccurredAt() time.Time
}

type CreatedEvent struct {
	orderID    kernel.UUID
	resellerID kernel.UUID
	customerID kernel.UUID
	statusID   kernel.UUID
	itemCount  int
	occurredAt time.Time
}

func (e CreatedEvent) Name() string            { return EventOrderCreated }
func (e CreatedEvent) OrderID() kernel.UUID    { return e.orderID }
func (e CreatedEvent) OccurredAt() time.Time   { return e.occurredAt }
func (e CreatedEvent) ResellerID() kernel.UUID { return e.resellerID }
func (e CreatedEvent) CustomerID() kernel.UUID { return e.customerID }
func (e CreatedEvent) StatusID() kernel.UUID   { return e.statusID }
func (e CreatedEvent) ItemCount() int          { return e.itemCount }

type StatusChangedEvent struct {
	orderID    kernel.UUID
	fromID     kernel.UUID
	toID       kernel.UUID
	occurredAt time.Time
}

func (e StatusChangedEvent) Name() string              { return EventOrderStatusChanged }
func (e StatusChangedEvent) OrderID() kernel.UUID      { return e.orderID }
func (e StatusChangedEvent) OccurredAt() time.Time     { return e.occurredAt }
func (e StatusChangedEvent) FromStatusID() kernel.UUID { return e.fromID }
func (e StatusChangedEvent) ToStatusID() kernel.UUID   { return e.toID }
