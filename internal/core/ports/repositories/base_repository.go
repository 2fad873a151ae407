package repositories

import "context"

// TxManager runs a function inside a database transaction. The transaction is
// carried in the context passed to fn, so repository calls made with that
// context join the same transaction. fn returning an error rolls back,
// returning nil commits.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
