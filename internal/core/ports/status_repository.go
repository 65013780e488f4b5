package ports

import "orders/internal/core/domain/model/status"

// StatusRepository is the Status Directory. Both lookups return an error
// matching status.ErrStatusNotFound when nothing matches.
type StatusRepository interface {
	status.Directory
}
