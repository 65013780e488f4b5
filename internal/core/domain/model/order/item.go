package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// MaxItemQuantity is the largest quantity a single line item may carry.
const MaxItemQuantity = 250

// Item is one line of an order: a quantity of a product together with the
// service that owned the product when the order was created. The service
// identifier is a snapshot; later catalog changes do not move it.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	serviceID kernel.UUID
	quantity  int
}

func NewItem(id, orderID, productID, serviceID kernel.UUID, quantity int) (Item, error) {
	var verr []error
	for _, v := range []struct {
		name string
		id   kernel.UUID
	}{
		{"item id", id},
		{"order id", orderID},
		{"product id", productID},
		{"service id", serviceID},
	} {
		if err := v.id.Validate(); err != nil {
			verr = append(verr, errs.NewValueIsRequiredErrorWithCause(v.name, err))
		}
	}
	if quantity <= 0 {
		verr = append(verr, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(verr...); err != nil {
		return Item{}, err
	}

	return Item{
		id:        id,
		orderID:   orderID,
		productID: productID,
		serviceID: serviceID,
		quantity:  quantity,
	}, nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) ServiceID() kernel.UUID {
	return i.serviceID
}

func (i Item) Quantity() int {
	return i.quantity
}
