// Package catalogrepo reads the product and service catalog.
package catalogrepo

import (
	"orders/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceDTO is an order_services row.
type ServiceDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "order_services"
}

// ProductDTO is an order_products row. Money columns are fixed-point with
// two decimals.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Service   ServiceDTO      `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
}

func (ProductDTO) TableName() string {
	return "order_products"
}

func ServiceFromDomain(s *catalog.Service) ServiceDTO {
	return ServiceDTO{ID: s.ID().Value(), Name: s.Name()}
}

func ProductFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Value(),
		Name:      p.Name(),
		UnitCost:  p.UnitCost(),
		UnitPrice: p.UnitPrice(),
		ServiceID: p.ServiceID().Value(),
	}
}
