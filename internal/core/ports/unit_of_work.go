package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one store transaction. Repositories obtained after Begin
// read and write inside it; nothing becomes visible to other callers
// before Commit. Events recorded by aggregates written through the
// repositories are published after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CatalogRepository() CatalogRepository
	StatusRepository() StatusRepository
}
