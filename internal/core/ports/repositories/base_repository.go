package repositories

import "context"

// TransactionManager runs a unit of work atomically. Every repository call made
// with the context passed to fn joins the same underlying transaction, and any
// error returned by fn rolls all of them back. Nested calls join the outer unit.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
