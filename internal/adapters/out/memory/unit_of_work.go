package memory

import (
	"context"
	"errors"
	"log/slog"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/status"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback when Begin was not
// called or the unit of work has already finished.
var ErrNoTransaction = errors.New("memory: no active transaction")

type writeOp struct {
	record orderRecord
	update bool
}

func errNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("order", id.String())
}

type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory binds units of work to store. A nil publisher
// disables event publishing.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store, publisher: f.publisher, logger: f.logger}
}

// UnitOfWork buffers writes between Begin and Commit and applies them to
// the store atomically. Reads through its repositories see the buffered
// writes; other units of work do not until Commit.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	active  bool
	pending []writeOp
	tracked []*order.Order
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false

	ops, tracked := uow.pending, uow.tracked
	uow.pending, uow.tracked = nil, nil

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := uow.store.apply(ops); err != nil {
		return err
	}

	uow.publish(ctx, tracked)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	uow.pending, uow.tracked = nil, nil
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: uow}
}

func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogRepository{store: uow.store}
}

func (uow *UnitOfWork) StatusRepository() ports.StatusRepository {
	return statusRepository{store: uow.store}
}

// write buffers op inside a transaction and applies it at once otherwise.
func (uow *UnitOfWork) write(ctx context.Context, op writeOp, aggregate *order.Order) error {
	if !uow.active {
		if err := uow.store.apply([]writeOp{op}); err != nil {
			return err
		}
		uow.publish(ctx, []*order.Order{aggregate})
		return nil
	}
	uow.pending = append(uow.pending, op)
	uow.tracked = append(uow.tracked, aggregate)
	return nil
}

// lookup returns the order as this unit of work sees it.
func (uow *UnitOfWork) lookup(id kernel.UUID) (orderRecord, bool) {
	var (
		record orderRecord
		found  bool
	)

	uow.store.mu.RLock()
	if i := uow.store.findOrder(id); i >= 0 {
		record, found = uow.store.orders[i], true
	}
	uow.store.mu.RUnlock()

	for _, op := range uow.pending {
		if !sameID(op.record.id, id) {
			continue
		}
		if op.update {
			record.statusID = op.record.statusID
			continue
		}
		record, found = op.record, true
	}
	return record, found
}

func (uow *UnitOfWork) publish(ctx context.Context, aggregates []*order.Order) {
	var events []order.Event
	for _, a := range aggregates {
		events = append(events, a.DomainEvents()...)
		a.ClearDomainEvents()
	}
	if len(events) == 0 || uow.publisher == nil {
		return
	}
	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, writeOp{record: recordOf(aggregate)}, aggregate)
}

func (r orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.lookup(aggregate.ID()); !ok {
		return errNotFound(aggregate.ID())
	}
	return r.uow.write(ctx, writeOp{record: recordOf(aggregate), update: true}, aggregate)
}

func (r orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	record, ok := r.uow.lookup(id)
	if !ok {
		return nil, errNotFound(id)
	}
	return record.restore()
}

type catalogRepository struct {
	store *Store
}

func (r catalogRepository) ServiceIDsByProductIDs(
	ctx context.Context,
	productIDs []kernel.UUID,
) (map[kernel.UUID]kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make(map[kernel.UUID]kernel.UUID, len(productIDs))
	for _, id := range productIDs {
		p := r.store.findProduct(id)
		if p == nil {
			return nil, catalog.NewProductNotFoundError(id)
		}
		result[id] = p.ServiceID()
	}
	return result, nil
}

type statusRepository struct {
	store *Store
}

func (r statusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	return r.find(ctx, name, func(s *status.Status) bool { return s.Name() == name })
}

func (r statusRepository) GetByID(ctx context.Context, id kernel.UUID) (*status.Status, error) {
	return r.find(ctx, id.String(), func(s *status.Status) bool { return sameID(s.ID(), id) })
}

func (r statusRepository) find(ctx context.Context, key string, match func(*status.Status) bool) (*status.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if s := r.store.findStatus(match); s != nil {
		return s, nil
	}
	return nil, status.NewStatusNotFoundError(key)
}
