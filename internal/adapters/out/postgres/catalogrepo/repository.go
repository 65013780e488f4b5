package catalogrepo

import (
	"context"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

type productService struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
}

// ServiceIDsByProductIDs resolves every product in one round trip. The
// first id, in input order, that has no catalog row is reported as
// *catalog.ProductNotFoundError.
func (r *GormCatalogRepository) ServiceIDsByProductIDs(
	ctx context.Context,
	productIDs []kernel.UUID,
) (map[kernel.UUID]kernel.UUID, error) {
	result := make(map[kernel.UUID]kernel.UUID, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, id.String())
	}

	var rows []productService
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Select("id, service_id").
		Where("id = ANY(?::uuid[])", pq.Array(keys)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, row := range rows {
		found[row.ID] = row.ServiceID
	}

	for _, id := range productIDs {
		serviceID, ok := found[id.Value()]
		if !ok {
			return nil, catalog.NewProductNotFoundError(id)
		}
		sid, err := kernel.UUIDFromBytes(serviceID[:])
		if err != nil {
			return nil, err
		}
		result[id] = sid
	}

	return result, nil
}
