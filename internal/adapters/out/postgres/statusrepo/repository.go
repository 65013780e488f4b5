package statusrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"

	"gorm.io/gorm"
)

// GormStatusRepository implements ports.StatusRepository. Name lookups are
// exact and case-sensitive.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

func (r *GormStatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	return r.first(ctx, name, "name = ?", name)
}

func (r *GormStatusRepository) GetByID(ctx context.Context, id kernel.UUID) (*status.Status, error) {
	if err := id.Validate(); err != nil {
		return nil, status.NewStatusNotFoundError(id.String())
	}
	return r.first(ctx, id.String(), "id = ?", id.Value())
}

func (r *GormStatusRepository) first(ctx context.Context, key string, query string, arg any) (*status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.NewStatusNotFoundError(key)
		}
		return nil, err
	}
	return toDomain(dto)
}
