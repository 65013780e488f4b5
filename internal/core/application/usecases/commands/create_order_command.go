package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line: a product and how many of it.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand is a validated request to place a new order. Orders
// placed this way always start in the "Created" status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(resellerID, customerID, []CreateOrderItem{
//	    {ProductID: mailboxID, Quantity: 2},
//	})
//	var verr errs.ValidationErrors
//	if errors.As(err, &verr) {
//	    return verr.ByField()
//	}
type CreateOrderCommand struct {
	resellerID kernel.UUID
	customerID kernel.UUID
	items      []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the request shape and returns every problem
// found as errs.ValidationErrors: a missing or empty item list, nil
// reseller/customer/product ids and quantities outside 1..250.
func NewCreateOrderCommand(
	resellerID kernel.UUID,
	customerID kernel.UUID,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	var verr errs.ValidationErrors

	if len(items) == 0 {
		verr.Add("Items", "Order items are null or empty")
	}
	if customerID.IsZero() {
		verr.Add("CustomerId", "Customer id is empty")
	}
	if resellerID.IsZero() {
		verr.Add("ResellerId", "Reseller id is empty")
	}
	for _, item := range items {
		if item.ProductID.IsZero() {
			verr.Add("ProductId", "Product id is empty")
		}
		if item.Quantity <= 0 {
			verr.Add("Quantity", "Quantity must be greater than zero")
		}
		if item.Quantity > order.MaxItemQuantity {
			verr.Add("Quantity", "Quantity must be less than or equal to 250")
		}
	}

	if err := verr.OrNil(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		resellerID: resellerID,
		customerID: customerID,
		items:      append([]CreateOrderItem(nil), items...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ResellerID() kernel.UUID {
	return c.resellerID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Items() []CreateOrderItem {
	return append([]CreateOrderItem(nil), c.items...)
}

// StatusName is the status every new order starts in.
func (c CreateOrderCommand) StatusName() string {
	return InitialStatusName
}

// ProductIDs lists the product of every item, duplicates included, in
// request order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
