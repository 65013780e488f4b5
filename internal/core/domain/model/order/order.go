package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("order items")
)

// Line describes one item to be placed on a new order: the product, the
// service it belonged to when the order was priced, and the quantity.
type Line struct {
	ProductID kernel.UUID
	ServiceID kernel.UUID
	Quantity  int
}

// Order is the aggregate root of the order domain.
//
// An order groups one or more line items under a single status. The header
// and its items are written together and the items never change afterwards;
// the status identifier is the only field that moves, and only through
// ChangeStatus.
//
// Invariants:
//   - ID, reseller, customer and status identifiers are valid UUIDs
//   - the order has at least one item, each with a positive quantity
//   - createdAt is held in UTC
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), resellerID, customerID, createdID, time.Now(),
//	    []order.Line{{ProductID: p.ID(), ServiceID: p.ServiceID(), Quantity: 2}})
//	if err != nil {
//	    return err
//	}
//	changed, err := o.ChangeStatus(completedID, time.Now()) // false when already there
type Order struct {
	id         kernel.UUID
	resellerID kernel.UUID
	customerID kernel.UUID
	statusID   kernel.UUID
	createdAt  time.Time
	items      []Item

	events []Event

	isConstructed bool
}

// NewOrder builds a new order and assigns a fresh identifier to every item.
// It records an OrderCreated event.
func NewOrder(
	id kernel.UUID,
	resellerID kernel.UUID,
	customerID kernel.UUID,
	statusID kernel.UUID,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setResellerID(resellerID),
		o.setCustomerID(customerID),
		o.setStatusID(statusID),
	); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrOrderHasNoItems
	}

	items := make([]Item, 0, len(lines))
	var itemErrs []error
	for _, line := range lines {
		item, err := NewItem(kernel.NewUUID(), id, line.ProductID, line.ServiceID, line.Quantity)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}
	o.items = items

	o.raise(CreatedEvent{
		orderID:    o.id,
		resellerID: o.resellerID,
		customerID: o.customerID,
		statusID:   o.statusID,
		itemCount:  len(o.items),
		occurredAt: o.createdAt,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from storage without raising events.
func RestoreOrder(
	id kernel.UUID,
	resellerID kernel.UUID,
	customerID kernel.UUID,
	statusID kernel.UUID,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setResellerID(resellerID),
		o.setCustomerID(customerID),
		o.setStatusID(statusID),
	); err != nil {
		return nil, err
	}

	o.items = append([]Item(nil), items...)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ResellerID() kernel.UUID {
	return o.resellerID
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) StatusID() kernel.UUID {
	return o.statusID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the line items in creation order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ChangeStatus moves the order to statusID. It reports false, and records
// nothing, when the order already holds that status.
func (o *Order) ChangeStatus(statusID kernel.UUID, at time.Time) (bool, error) {
	if err := statusID.Validate(); err != nil {
		return false, err
	}
	if o.statusID.IsEqual(statusID) {
		return false, nil
	}

	previous := o.statusID
	o.statusID = statusID
	o.raise(StatusChangedEvent{
		orderID:    o.id,
		fromID:     previous,
		toID:       statusID,
		occurredAt: at.UTC(),
	})
	return true, nil
}

// DomainEvents returns the events recorded since the order was built or
// last cleared.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e Event) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setResellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reseller id", err)
	}
	o.resellerID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("status id", err)
	}
	o.statusID = id
	return nil
}
