package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB // nil on a tx-bound store

	users      repository.UserRepository
	clubs      repository.ClubRepository
	createApps repository.CreateApplicationRepository
	joinApps   repository.JoinApplicationRepository
	activities repository.ActivityRepository
	attends    repository.AttendRepository
}

func NewStore(db *sql.DB) *Store {
	s := newStoreOn(db)
	s.db = db
	return s
}

func newStoreOn(db DBTX) *Store {
	return &Store{
		users:      NewUserRepository(db),
		clubs:      NewClubRepository(db),
		createApps: NewCreateApplicationRepository(db),
		joinApps:   NewJoinApplicationRepository(db),
		activities: NewActivityRepository(db),
		attends:    NewAttendRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository                           { return s.users }
func (s *Store) Clubs() repository.ClubRepository                           { return s.clubs }
func (s *Store) CreateApplications() repository.CreateApplicationRepository { return s.createApps }
func (s *Store) JoinApplications() repository.JoinApplicationRepository     { return s.joinApps }
func (s *Store) Activities() repository.ActivityRepository                  { return s.activities }
func (s *Store) Attends() repository.AttendRepository                       { return s.attends }

// RunInTx executes fn against a transaction-bound copy of the store. Any
// error from fn rolls the whole batch back, so a workflow transition either
// commits all of its writes or none of them. A tx-bound store runs fn on
// itself, joining the surrounding transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStorageUnavailable, err)
	}

	if err := fn(newStoreOn(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// mapGetErr converts sql.ErrNoRows into the domain's not-found error so
// services never see database/sql sentinels.
func mapGetErr(err error) error {
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

// checkAffected turns a zero-row conditional status update into
// domain.ErrInvalidState: the record was loaded by the caller beforehand, so
// no match here means its status already moved on.
func checkAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInvalidState
	}
	return nil
}
