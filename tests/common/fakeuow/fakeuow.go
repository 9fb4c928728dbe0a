//go:build unit || e2e

// Package fakeuow is an in-memory shared.UnitOfWork for use-case tests.
// A failing Within restores the state it started from.
package fakeuow

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/db"
	"branch-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type state struct {
	reservations map[int64]reservation.Snapshot
	archived     map[int64]shared.ArchivedSnapshot
	products     map[string]product.Product
	users        map[string]shared.Credentials
	jobs         map[uuid.UUID]shared.NotificationJob
	nextID       int64
}

func (s state) clone() state {
	c := state{
		reservations: make(map[int64]reservation.Snapshot, len(s.reservations)),
		archived:     make(map[int64]shared.ArchivedSnapshot, len(s.archived)),
		products:     make(map[string]product.Product, len(s.products)),
		users:        make(map[string]shared.Credentials, len(s.users)),
		jobs:         make(map[uuid.UUID]shared.NotificationJob, len(s.jobs)),
		nextID:       s.nextID,
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.archived {
		c.archived[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	return c
}

type UoW struct {
	mu sync.Mutex
	st state

	// FailSave makes the next reservation Save report a version conflict.
	FailSave bool
	// FailMarkSent makes the nth MarkSent call fail, counting from 1.
	FailMarkSent int
	// Commits counts successful Within calls.
	Commits int

	markSentCalls int
}

func New() *UoW {
	return &UoW{st: state{
		reservations: map[int64]reservation.Snapshot{},
		archived:     map[int64]shared.ArchivedSnapshot{},
		products:     map[string]product.Product{},
		users:        map[string]shared.Credentials{},
		jobs:         map[uuid.UUID]shared.NotificationJob{},
		nextID:       1,
	}}
}

var _ shared.UnitOfWork = (*UoW)(nil)

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	saved := u.st.clone()
	if err := fn(ctx, &tx{u: u}); err != nil {
		u.st = saved
		return err
	}
	u.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{u: u}
}

// Seeding and inspection helpers.

func (u *UoW) PutProduct(code, description string, unitPrice decimal.Decimal) {
	u.st.products[code] = product.Product{Code: code, Description: description, UnitPrice: unitPrice}
}

func (u *UoW) Product(code string) (product.Product, bool) {
	p, ok := u.st.products[code]
	return p, ok
}

// PutReservation stores s as-is; a zero ID takes the next sequence value.
func (u *UoW) PutReservation(s reservation.Snapshot) int64 {
	if s.ID == 0 {
		s.ID = u.st.nextID
	}
	if s.ID >= u.st.nextID {
		u.st.nextID = s.ID + 1
	}
	u.st.reservations[s.ID] = s
	return s.ID
}

func (u *UoW) Reservation(id int64) (reservation.Snapshot, bool) {
	s, ok := u.st.reservations[id]
	return s, ok
}

func (u *UoW) Archived(id int64) (shared.ArchivedSnapshot, bool) {
	a, ok := u.st.archived[id]
	return a, ok
}

func (u *UoW) PutCredentials(c shared.Credentials) {
	u.st.users[c.Username] = c
}

func (u *UoW) Credentials(username string) (shared.Credentials, bool) {
	c, ok := u.st.users[username]
	return c, ok
}

func (u *UoW) PutJob(j shared.NotificationJob) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = shared.JobStatusQueued
	}
	u.st.jobs[j.ID] = j
}

func (u *UoW) Job(id uuid.UUID) (shared.NotificationJob, bool) {
	j, ok := u.st.jobs[id]
	return j, ok
}

// Jobs returns every outbox row ordered by run time.
func (u *UoW) Jobs() []shared.NotificationJob {
	out := make([]shared.NotificationJob, 0, len(u.st.jobs))
	for _, j := range u.st.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].RunAt.Before(out[k].RunAt) })
	return out
}

type tx struct {
	u *UoW
}

func (t *tx) Reservations() shared.ReservationRepository { return &reservationRepo{u: t.u} }

func (t *tx) Archive() shared.ArchiveRepository { return &archiveRepo{u: t.u} }

func (t *tx) Products() shared.ProductRepository { return &productRepo{u: t.u} }

func (t *tx) Notifications() shared.NotificationRepository { return &notificationRepo{u: t.u} }

func (t *tx) Users() shared.UserRepository { return &userRepo{u: t.u} }

func (t *tx) Reads() shared.CommandReads { return &reads{u: t.u} }

func (t *tx) DB() db.DBTX { return nil }

type reads struct {
	u *UoW
}

func (r *reads) ReservationByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	s, ok := r.u.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return reservation.FromSnapshot(s), nil
}

func (r *reads) ReservationForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return r.ReservationByID(ctx, id)
}

func (r *reads) ProductByCode(_ context.Context, code string) (*product.Product, error) {
	p, ok := r.u.st.products[code]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &p, nil
}

func (r *reads) CredentialsByUsername(_ context.Context, username string) (*shared.Credentials, error) {
	c, ok := r.u.st.users[username]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &c, nil
}

type reservationRepo struct {
	u *UoW
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	id := r.u.st.nextID
	r.u.st.nextID++
	s := res.Snapshot()
	s.ID = id
	r.u.st.reservations[id] = s
	return id, nil
}

func (r *reservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	cur, ok := r.u.st.reservations[res.ID()]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if r.u.FailSave || cur.Version != res.Version() {
		r.u.FailSave = false
		return infra.WrapRepoErr("reservation changed since it was read", nil, infra.KindConflict)
	}
	res.MarkSaved()
	r.u.st.reservations[res.ID()] = res.Snapshot()
	return nil
}

type archiveRepo struct {
	u *UoW
}

func (r *archiveRepo) Move(_ context.Context, id int64, archivedBy string, at time.Time) (*shared.ArchivedSnapshot, error) {
	s, ok := r.u.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	a := shared.ArchivedSnapshot{Reservation: s, ArchivedAt: at, ArchivedBy: archivedBy}
	r.u.st.archived[id] = a
	delete(r.u.st.reservations, id)
	return &a, nil
}

type productRepo struct {
	u *UoW
}

func (r *productRepo) UpdatePrice(_ context.Context, code string, price decimal.Decimal, at time.Time) (bool, error) {
	p, ok := r.u.st.products[code]
	if !ok {
		return false, nil
	}
	p.UnitPrice = price
	p.UpdatedAt = at
	r.u.st.products[code] = p
	return true, nil
}

type notificationRepo struct {
	u *UoW
}

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	r.u.st.jobs[id] = shared.NotificationJob{
		ID:      id,
		Kind:    kind,
		Topic:   topic,
		Payload: append([]byte(nil), payload...),
		RunAt:   runAt,
		Status:  shared.JobStatusQueued,
	}
	return id, nil
}

func (r *notificationRepo) ClaimDue(_ context.Context, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error) {
	var due []shared.NotificationJob
	for _, j := range r.u.Jobs() {
		if len(due) >= limit {
			break
		}
		switch j.Status {
		case shared.JobStatusQueued, shared.JobStatusFailed, shared.JobStatusSending:
		default:
			continue
		}
		if j.RunAt.After(now) {
			continue
		}
		j.Status = shared.JobStatusSending
		j.RunAt = leaseUntil
		r.u.st.jobs[j.ID] = j
		due = append(due, j)
	}
	return due, nil
}

func (r *notificationRepo) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	r.u.markSentCalls++
	if r.u.markSentCalls == r.u.FailMarkSent {
		return infra.WrapRepoErr("failed to update notification job", errors.New("connection reset by peer"))
	}
	return r.update(id, func(j *shared.NotificationJob) {
		j.Status = shared.JobStatusSent
		j.LastError = ""
	})
}

func (r *notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, attempts int32, nextRun time.Time, lastError string) error {
	return r.update(id, func(j *shared.NotificationJob) {
		j.Status = shared.JobStatusFailed
		j.Attempts = attempts
		j.RunAt = nextRun
		j.LastError = lastError
	})
}

func (r *notificationRepo) MarkDead(_ context.Context, id uuid.UUID, attempts int32, lastError string) error {
	return r.update(id, func(j *shared.NotificationJob) {
		j.Status = shared.JobStatusDead
		j.Attempts = attempts
		j.LastError = lastError
	})
}

func (r *notificationRepo) update(id uuid.UUID, fn func(*shared.NotificationJob)) error {
	j, ok := r.u.st.jobs[id]
	if !ok {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	fn(&j)
	r.u.st.jobs[id] = j
	return nil
}

type userRepo struct {
	u *UoW
}

func (r *userRepo) Upsert(_ context.Context, usr *user.User) (uuid.UUID, error) {
	name := usr.Username().Value()
	id := uuid.New()
	if cur, ok := r.u.st.users[name]; ok {
		id = cur.UserID
	}
	r.u.st.users[name] = shared.Credentials{
		UserID:       id,
		Username:     name,
		DisplayName:  usr.DisplayName(),
		PasswordHash: usr.PasswordHash(),
		Role:         usr.Role().String(),
		Branch:       usr.Branch().Name,
		IsActive:     usr.IsActive(),
	}
	return id, nil
}
