package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer DB stays open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Admins() store.Admins               { return &adminsRepo{q: t.tx} }
func (t *txStore) Doctors() store.Doctors             { return &doctorsRepo{q: t.tx} }
func (t *txStore) Patients() store.Patients           { return &patientsRepo{q: t.tx} }
func (t *txStore) Graphs() store.Graphs               { return &graphsRepo{q: t.tx} }
func (t *txStore) Appointments() store.Appointments   { return &appointmentsRepo{q: t.tx} }
func (t *txStore) RevokedTokens() store.RevokedTokens { return &revokedTokensRepo{q: t.tx} }

// ApplyMigrations is a no-op; migrations run before any transaction opens.
func (t *txStore) ApplyMigrations() error { return nil }
