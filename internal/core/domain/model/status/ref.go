package status

import (
	"context"
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
)

// ErrEmptyRef is returned when resolving a Ref that names no status.
var ErrEmptyRef = errors.New("status reference has neither name nor id")

type refKind int

const (
	refNone refKind = iota
	refByName
	refByID
)

// Ref points at a status either by name or by identifier.
//
//	status.ByName("Completed")
//	status.ByID(id)
//	status.NewRef(req.Name, req.ID) // name wins when both are present
type Ref struct {
	kind refKind
	name string
	id   kernel.UUID
}

func ByName(name string) Ref {
	return Ref{kind: refByName, name: name}
}

func ByID(id kernel.UUID) Ref {
	return Ref{kind: refByID, id: id}
}

// NewRef picks a non-blank name first, then a non-nil id. With neither the
// returned Ref is empty and resolves to ErrEmptyRef.
func NewRef(name string, id *kernel.UUID) Ref {
	if strings.TrimSpace(name) != "" {
		return ByName(name)
	}
	if id != nil {
		return ByID(*id)
	}
	return Ref{}
}

func (r Ref) IsEmpty() bool {
	return r.kind == refNone
}

func (r Ref) Name() (string, bool) {
	return r.name, r.kind == refByName
}

func (r Ref) ID() (kernel.UUID, bool) {
	return r.id, r.kind == refByID
}

func (r Ref) String() string {
	switch r.kind {
	case refByName:
		return "name:" + r.name
	case refByID:
		return "id:" + r.id.String()
	case refNone:
	}
	return "none"
}

// Directory looks statuses up by either key. Implementations return an
// error matching ErrStatusNotFound when nothing matches.
type Directory interface {
	GetByName(ctx context.Context, name string) (*Status, error)
	GetByID(ctx context.Context, id kernel.UUID) (*Status, error)
}

// Resolve runs the lookup the Ref selects against d.
func (r Ref) Resolve(ctx context.Context, d Directory) (*Status, error) {
	switch r.kind {
	case refByName:
		return d.GetByName(ctx, r.name)
	case refByID:
		return d.GetByID(ctx, r.id)
	case refNone:
	}
	return nil, ErrEmptyRef
}
