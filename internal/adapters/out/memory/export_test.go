package memory

import "orders/internal/core/domain/model/catalog"

// SetProduct inserts or replaces a catalog product. Totals of existing
// orders follow the new prices on the next read.
func (s *Store) SetProduct(p *catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if sameID(existing.ID(), p.ID()) {
			s.products[i] = p
			return
		}
	}
	s.products = append(s.products, p)
}
