package xcontext

import (
	"context"

	"github.com/renewed-app/backend/config"
	"github.com/renewed-app/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey      struct{}
	txKey      struct{}
	loggerKey  struct{}
	configsKey struct{}
	userIDKey  struct{}
)

// dbTransaction keeps the transaction state mutable under an immutable
// context. Once committed or rolled back, DB() falls back to the root handle.
type dbTransaction struct {
	tx   *gorm.DB
	done bool
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If the context carries an open
// transaction, every query joins that transaction.
func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(txKey{}).(*dbTransaction); ok && !t.done {
		return t.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database handle in context")
	}

	return db
}

// WithDBTransaction begins a transaction scoped to the returned context. The
// caller pairs it with WithCommitDBTransaction and a deferred
// WithRollbackDBTransaction.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, &dbTransaction{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	if t, ok := ctx.Value(txKey{}).(*dbTransaction); ok && !t.done {
		t.tx.Commit()
		t.done = true
	}
}

// WithRollbackDBTransaction rollbacks the current transaction. It is a no-op
// after a commit, so it is safe to defer unconditionally.
func WithRollbackDBTransaction(ctx context.Context) {
	if t, ok := ctx.Value(txKey{}).(*dbTransaction); ok && !t.done {
		t.tx.Rollback()
		t.done = true
	}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.INFO)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, _ := ctx.Value(configsKey{}).(config.Configs)
	return cfg
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated user of this request, or an empty
// string before the auth middleware ran.
func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
