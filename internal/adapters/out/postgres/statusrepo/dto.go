// Package statusrepo reads the status directory.
package statusrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO is an order_statuses row. Names are unique.
type StatusDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

func FromDomain(s *status.Status) StatusDTO {
	return StatusDTO{ID: s.ID().Value(), Name: s.Name()}
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return status.NewStatus(id, dto.Name)
}
