package status

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Well-known status names seeded into every store.
const (
	Created    = "Created"
	InProgress = "In Progress"
	Completed  = "Completed"
)

var (
	ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")
	ErrStatusNotFound         = errors.New("status not found")
)

// Status is a named stage of the order lifecycle. Names are unique within
// a store; identifiers are assigned when the store is seeded.
type Status struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

func NewStatus(id kernel.UUID, name string) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("status name")
	}
	return &Status{id: id, name: name, isConstructed: true}, nil
}

func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

func (s *Status) ID() kernel.UUID {
	return s.id
}

func (s *Status) Name() string {
	return s.name
}

// NewStatusNotFoundError wraps ErrStatusNotFound with the lookup key.
func NewStatusNotFoundError(key any) error {
	return errors.Join(ErrStatusNotFound, errs.NewObjectNotFoundError("status", key))
}
