package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrProductNotFound         = errors.New("product not found")
)

// Product is a sellable catalog entry. Every product belongs to exactly one
// service, and its unit cost and unit price are non-negative amounts in the
// single currency the service works in.
type Product struct {
	id        kernel.UUID
	name      string
	unitCost  decimal.Decimal
	unitPrice decimal.Decimal
	serviceID kernel.UUID

	isConstructed bool
}

// NewProduct validates and builds a product. All field failures are
// reported together.
func NewProduct(
	id kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	unitPrice decimal.Decimal,
	serviceID kernel.UUID,
) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitCost(unitCost),
		p.setUnitPrice(unitPrice),
		p.setServiceID(serviceID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) UnitCost() decimal.Decimal {
	return p.unitCost
}

func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// ServiceID is the owning service. Line items copy it at creation time.
func (p *Product) ServiceID() kernel.UUID {
	return p.serviceID
}

// CostOf returns quantity × unit cost.
func (p *Product) CostOf(quantity int) decimal.Decimal {
	return p.unitCost.Mul(decimal.NewFromInt(int64(quantity)))
}

// PriceOf returns quantity × unit price.
func (p *Product) PriceOf(quantity int) decimal.Decimal {
	return p.unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit cost", fmt.Errorf("%s is negative", cost))
	}
	p.unitCost = cost
	return nil
}

func (p *Product) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", price))
	}
	p.unitPrice = price
	return nil
}

func (p *Product) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.serviceID = id
	return nil
}

// ProductNotFoundError aborts order creation when an item references a
// product the catalog does not know.
type ProductNotFoundError struct {
	ProductID kernel.UUID
}

func NewProductNotFoundError(productID kernel.UUID) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: productID}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// Unwrap lets callers match either ErrProductNotFound or the generic
// errs.ErrObjectNotFound.
func (e *ProductNotFoundError) Unwrap() []error {
	return []error{ErrProductNotFound, errs.ErrObjectNotFound}
}
