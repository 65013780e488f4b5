package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// CatalogRepository is the Catalog Resolver used while pricing new orders.
type CatalogRepository interface {
	// ServiceIDsByProductIDs maps every given product to its owning service.
	// Duplicate product ids are allowed and map to the same service.
	// The first unknown product, in input order, fails the whole call with
	// *catalog.ProductNotFoundError and nothing else is returned.
	ServiceIDsByProductIDs(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]kernel.UUID, error)
}
