// Package orderrepo persists the Order aggregate: one row in orders plus one
// row per line item in order_items.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/statusrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status only declares the foreign key to
// order_statuses and is never written through the order.
type OrderDTO struct {
	ID         uuid.UUID            `gorm:"type:uuid;primaryKey"`
	ResellerID uuid.UUID            `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID            `gorm:"type:uuid;not null;index"`
	StatusID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Status     statusrepo.StatusDTO `gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time            `gorm:"type:timestamptz;not null;index"`
	Items      []OrderItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is an order_items row. Position keeps the order in which the
// items were requested. Catalog rows cannot be removed while an item
// references them.
type OrderItemDTO struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Product   catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ServiceID uuid.UUID              `gorm:"type:uuid;not null"`
	Service   catalogrepo.ServiceDTO `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
	Quantity  int                    `gorm:"not null"`
	Position  int                    `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtoItems := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtoItems = append(dtoItems, OrderItemDTO{
			ID:        item.ID().Value(),
			OrderID:   o.ID().Value(),
			ProductID: item.ProductID().Value(),
			ServiceID: item.ServiceID().Value(),
			Quantity:  item.Quantity(),
			Position:  i,
		})
	}

	return OrderDTO{
		ID:         o.ID().Value(),
		ResellerID: o.ResellerID().Value(),
		CustomerID: o.CustomerID().Value(),
		StatusID:   o.StatusID().Value(),
		CreatedAt:  o.CreatedAt(),
		Items:      dtoItems,
	}
}

// toDomain expects dto.Items to be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	resellerID, err := kernel.UUIDFromBytes(dto.ResellerID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, resellerID, customerID, statusID, dto.CreatedAt, items)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(id, orderID, productID, serviceID, dto.Quantity)
}
