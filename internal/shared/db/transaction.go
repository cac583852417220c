// Package db carries the transaction plumbing shared by use cases and
// repositories. Status transitions are read-modify-write on one subscription
// row, so the read and the version-checked update must see the same
// transaction.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs a function inside a database transaction and makes
// the transaction visible to repositories through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction. A non-nil error from fn
// rolls everything back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the ambient transaction when one is running,
// otherwise the default handle. Repositories call this instead of touching
// their *gorm.DB directly so they join whatever transaction the use case
// opened.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
