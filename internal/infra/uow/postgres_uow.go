package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra/db"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/infra/readstore"
	"branch-reservations/internal/infra/repository"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryable SQLSTATEs: serialization_failure, deadlock_detected, lock_not_available
var retryableCodes = map[string]bool{
	"40001": true,
	"40P01": true,
	"55P03": true,
}

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

// backoff doubles per attempt with up to 20% jitter so competing counters do not retry in lockstep.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgsql.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: retryPolicy{maxRetries: 3, base: 100 * time.Millisecond},
	}
}

// Within runs fn in a read-committed transaction. Row locks taken by
// ReservationForUpdate serialize concurrent transitions of the same reservation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == u.retry.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly gives listing queries one snapshot across statements.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.attempt(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, tx.DB())
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// attempt owns one transaction from begin to commit or rollback.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryableCodes[pgErr.Code]
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	reservationRepo  shared.ReservationRepository
	archiveRepo      shared.ArchiveRepository
	productRepo      shared.ProductRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Archive() shared.ArchiveRepository {
	if t.archiveRepo == nil {
		t.archiveRepo = repository.NewArchiveRepository(t.uow.q, t.dbtx)
	}
	return t.archiveRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.uow.q, t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx db.DBTX

	reservationStore *readstore.ReservationReadStore
	productStore     *readstore.ProductReadStore
	userStore        *readstore.UserReadStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) ReservationByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	snap, err := r.reservations().SnapshotByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return reservation.FromSnapshot(snap), nil
}

// Outside Within the lock is released at statement end, so it only serializes inside a transaction.
func (r *commandReads) ReservationForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	snap, err := r.reservations().SnapshotForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return reservation.FromSnapshot(snap), nil
}

func (r *commandReads) ProductByCode(ctx context.Context, code string) (*product.Product, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.uow.q, r.dbtx)
	}
	return r.productStore.FindProduct(ctx, code)
}

func (r *commandReads) CredentialsByUsername(ctx context.Context, username string) (*shared.Credentials, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore.FindCredentials(ctx, username)
}
