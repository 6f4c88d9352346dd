package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// querier is satisfied by both *sql.DB and *sql.Tx so repositories run
// unchanged inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to ":memory:" is its own database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after Commit is a harmless sql.ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Admins() store.Admins               { return &adminsRepo{q: s.db} }
func (s *Store) Doctors() store.Doctors             { return &doctorsRepo{q: s.db} }
func (s *Store) Patients() store.Patients           { return &patientsRepo{q: s.db} }
func (s *Store) Graphs() store.Graphs               { return &graphsRepo{q: s.db} }
func (s *Store) Appointments() store.Appointments   { return &appointmentsRepo{q: s.db} }
func (s *Store) RevokedTokens() store.RevokedTokens { return &revokedTokensRepo{q: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns sqlite constraint failures into store sentinels.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return err
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return store.ErrAlreadyExists
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return store.ErrInvalidReference
	}

	// Extended result codes may be off; fall back to the message.
	if serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := serr.Error()
		switch {
		case strings.Contains(msg, "UNIQUE"):
			return store.ErrAlreadyExists
		case strings.Contains(msg, "FOREIGN KEY"):
			return store.ErrInvalidReference
		}
	}
	return err
}

// expectOne reports ErrNotFound when an update or delete touched nothing.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// where joins optional equality predicates.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column string, value string) {
	if value == "" {
		return
	}
	w.clauses = append(w.clauses, column+" = ?")
	w.args = append(w.args, value)
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}
