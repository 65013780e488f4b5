// Package memory is an in-process order store. It backs the service when
// no database is configured and serves as a fast test double; behaviour
// matches the postgres adapter. Identifiers are compared byte by byte
// because no query engine is available to push equality down.
package memory

import (
	"bytes"
	"sync"
	"time"

	"orders/internal/adapters/out/seed"
	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/status"
)

// orderRecord is the stored form of an order. Aggregates handed out by
// repositories are rebuilt from it so callers never alias store state.
type orderRecord struct {
	id         kernel.UUID
	resellerID kernel.UUID
	customerID kernel.UUID
	statusID   kernel.UUID
	createdAt  time.Time
	items      []order.Item
}

func recordOf(o *order.Order) orderRecord {
	return orderRecord{
		id:         o.ID(),
		resellerID: o.ResellerID(),
		customerID: o.CustomerID(),
		statusID:   o.StatusID(),
		createdAt:  o.CreatedAt(),
		items:      o.Items(),
	}
}

func (r orderRecord) restore() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.resellerID, r.customerID, r.statusID, r.createdAt, r.items)
}

// Store holds orders and reference data behind one RWMutex.
type Store struct {
	mu sync.RWMutex

	orders   []orderRecord
	statuses []*status.Status
	services []*catalog.Service
	products []*catalog.Product
}

// NewStore returns a store preloaded with reference data.
func NewStore(data seed.Data) *Store {
	return &Store{
		statuses: append([]*status.Status(nil), data.Statuses...),
		services: append([]*catalog.Service(nil), data.Services...),
		products: append([]*catalog.Product(nil), data.Products...),
	}
}

// apply runs writes under the write lock, all or nothing.
func (s *Store) apply(ops []writeOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []kernel.UUID
	for _, op := range ops {
		if !op.update {
			added = append(added, op.record.id)
			continue
		}
		if s.findOrder(op.record.id) < 0 && !containsID(added, op.record.id) {
			return errNotFound(op.record.id)
		}
	}

	for _, op := range ops {
		if op.update {
			s.orders[s.findOrder(op.record.id)].statusID = op.record.statusID
			continue
		}
		s.orders = append(s.orders, op.record)
	}
	return nil
}

// findOrder returns the index of the order or -1. Callers hold the lock.
func (s *Store) findOrder(id kernel.UUID) int {
	for i := range s.orders {
		if sameID(s.orders[i].id, id) {
			return i
		}
	}
	return -1
}

func (s *Store) findProduct(id kernel.UUID) *catalog.Product {
	for _, p := range s.products {
		if sameID(p.ID(), id) {
			return p
		}
	}
	return nil
}

func (s *Store) findService(id kernel.UUID) *catalog.Service {
	for _, svc := range s.services {
		if sameID(svc.ID(), id) {
			return svc
		}
	}
	return nil
}

func (s *Store) findStatus(match func(*status.Status) bool) *status.Status {
	for _, st := range s.statuses {
		if match(st) {
			return st
		}
	}
	return nil
}

func sameID(a, b kernel.UUID) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if sameID(candidate, id) {
			return true
		}
	}
	return false
}
