package catalog

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service groups products, e.g. "Email" or "Hosting".
type Service struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

func NewService(id kernel.UUID, name string) (*Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("service name")
	}
	return &Service{id: id, name: name, isConstructed: true}, nil
}

func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}
