package commands

//go:generate go run go.uber.org/mock/mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/pkg/patch"
	"branch-reservations/internal/usecase/notify"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrProductNotFound     = errs.New("unknown product code")
	ErrInvalidTransition   = errs.New("invalid status transition")
	ErrConcurrentUpdate    = errs.New("reservation was modified concurrently")
	ErrForbidden           = errs.New("operation not allowed for this role")
	ErrDomainValidation    = errs.New("domain validation error")
)

type CreateReservationInput struct {
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProductCode        string
	ProductDescription string
	Quantity           int32
	// Total is computed from the catalog price when nil.
	Total              *decimal.Decimal
	OriginBranch       string
	DestinationBranch  string
	DestinationContact string
	Comment            string
}

// EditReservationInput leaves fields unchanged when nil.
type EditReservationInput struct {
	CustomerName       *string
	CustomerPhone      *string
	CustomerEmail      *string
	ProductCode        *string
	ProductDescription *string
	Quantity           *int32
	Total              *decimal.Decimal
	Comment            *string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateReservationInput) (*queries.ReservationView, error)
	Transition(ctx context.Context, actor access.Actor, id int64, status string) (*queries.ReservationView, error)
	Edit(ctx context.Context, actor access.Actor, id int64, in EditReservationInput) (*queries.ReservationView, error)
	SoftDelete(ctx context.Context, actor access.Actor, id int64) error
	Restore(ctx context.Context, actor access.Actor, id int64, status *string) (*queries.ReservationView, error)
	Archive(ctx context.Context, actor access.Actor, id int64) (*queries.ArchivedReservationView, error)
}

// ArchiveExporter copies archived snapshots to external storage after commit.
type ArchiveExporter interface {
	Export(ctx context.Context, view *queries.ArchivedReservationView) error
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	exporter   ArchiveExporter
	clock      clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, dispatcher notify.Dispatcher, exporter ArchiveExporter, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		exporter:   exporter,
		clock:      clk,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	customer, err := reservation.NewCustomer(in.CustomerName, in.CustomerPhone, in.CustomerEmail)
	if err != nil {
		return nil, invalid(err, ErrDomainValidation)
	}
	origin := strings.TrimSpace(in.OriginBranch)
	if origin == "" {
		origin = actor.Branch
	}
	route, err := reservation.NewRoute(origin, in.DestinationBranch, in.DestinationContact)
	if err != nil {
		return nil, invalid(err, ErrDomainValidation)
	}
	code, err := product.NormalizeCode(in.ProductCode)
	if err != nil {
		return nil, invalid(err, ErrDomainValidation)
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		catalog, err := uc.lookupProduct(ctx, tx, code)
		if err != nil {
			return err
		}

		description := in.ProductDescription
		if strings.TrimSpace(description) == "" {
			description = catalog.Description
		}
		total := catalog.LineTotal(in.Quantity)
		if in.Total != nil {
			total = *in.Total
		}
		line, err := reservation.NewProductLine(code, description, in.Quantity, total)
		if err != nil {
			return invalid(err, ErrDomainValidation)
		}

		res, err := reservation.NewReservation(reservation.NewParams{
			Customer:  customer,
			Product:   line,
			Route:     route,
			CreatedBy: actor.Agent(),
			Comment:   in.Comment,
		}, uc.clock.Now())
		if err != nil {
			return invalid(err, ErrDomainValidation)
		}

		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			return err
		}
		res.AssignID(id)
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	snap := created.Snapshot()
	slog.Info("reservation created",
		"reservation_id", snap.ID,
		"origin", snap.OriginBranch,
		"destination", snap.DestinationBranch,
		"created_by", snap.CreatedBy)

	if created.Customer().Deliverable() {
		uc.dispatcher.Dispatch(ctx, notify.Intent{Kind: notify.KindConfirmation, Reservation: snap})
	}
	return queries.ViewFromSnapshot(snap), nil
}

func (uc *reservationCommandsImpl) Transition(ctx context.Context, actor access.Actor, id int64, status string) (*queries.ReservationView, error) {
	target, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, invalid(err, ErrDomainValidation)
	}

	var (
		snap   reservation.Snapshot
		effect reservation.Effect
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.loadAccessible(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		effect, err = res.Transition(target, actor.Agent(), uc.clock.Now())
		if err != nil {
			return mapDomainErr(err)
		}
		if err := uc.save(ctx, tx, res); err != nil {
			return err
		}
		snap = res.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation status changed",
		"reservation_id", id,
		"status", snap.Status.String(),
		"effect", effect.String(),
		"agent", actor.Agent())

	if effect == reservation.EffectIntake {
		uc.dispatcher.Dispatch(ctx, notify.Intent{Kind: notify.KindPickupReady, Reservation: snap})
	}
	return queries.ViewFromSnapshot(snap), nil
}

func (uc *reservationCommandsImpl) Edit(ctx context.Context, actor access.Actor, id int64, in EditReservationInput) (*queries.ReservationView, error) {
	var snap reservation.Snapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.loadAccessible(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		cur := res.Customer()
		customer, err := reservation.NewCustomer(
			patch.Text(in.CustomerName, cur.Name()),
			patch.Text(in.CustomerPhone, cur.Phone()),
			patch.Text(in.CustomerEmail, cur.Email()),
		)
		if err != nil {
			return invalid(err, ErrDomainValidation)
		}

		line := res.Product()
		code := patch.Text(in.ProductCode, line.Code())
		if code != line.Code() {
			if _, err := uc.lookupProduct(ctx, tx, code); err != nil {
				return err
			}
		}
		newLine, err := reservation.NewProductLine(
			code,
			patch.Text(in.ProductDescription, line.Description()),
			patch.Coalesce(in.Quantity, line.Quantity()),
			patch.Coalesce(in.Total, line.Total()),
		)
		if err != nil {
			return invalid(err, ErrDomainValidation)
		}

		if err := res.Edit(reservation.EditParams{Customer: customer, Product: newLine, Comment: in.Comment}, actor.Agent(), uc.clock.Now()); err != nil {
			return mapDomainErr(err)
		}
		if err := uc.save(ctx, tx, res); err != nil {
			return err
		}
		snap = res.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ViewFromSnapshot(snap), nil
}

func (uc *reservationCommandsImpl) SoftDelete(ctx context.Context, actor access.Actor, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.loadAccessible(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		res.SoftDelete(uc.clock.Now())
		return uc.save(ctx, tx, res)
	})
	if err != nil {
		return err
	}
	slog.Info("reservation soft-deleted", "reservation_id", id, "agent", actor.Agent())
	return nil
}

func (uc *reservationCommandsImpl) Restore(ctx context.Context, actor access.Actor, id int64, status *string) (*queries.ReservationView, error) {
	if err := access.RequirePrivileged(actor); err != nil {
		return nil, errs.Mark(err, ErrForbidden)
	}

	var target *reservation.Status
	if status != nil && strings.TrimSpace(*status) != "" {
		s, err := reservation.ParseStatus(*status)
		if err != nil {
			return nil, invalid(err, ErrDomainValidation)
		}
		target = &s
	}

	var snap reservation.Snapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.loadAccessible(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := res.Restore(target, actor.Agent(), uc.clock.Now()); err != nil {
			return mapDomainErr(err)
		}
		if err := uc.save(ctx, tx, res); err != nil {
			return err
		}
		snap = res.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("reservation restored", "reservation_id", id, "status", snap.Status.String(), "agent", actor.Agent())
	return queries.ViewFromSnapshot(snap), nil
}

func (uc *reservationCommandsImpl) Archive(ctx context.Context, actor access.Actor, id int64) (*queries.ArchivedReservationView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, errs.Mark(err, ErrForbidden)
	}

	var moved *shared.ArchivedSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Archive().Move(ctx, id, actor.Agent(), uc.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		moved = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := &queries.ArchivedReservationView{
		ReservationView: *queries.ViewFromSnapshot(moved.Reservation),
		ArchivedAt:      moved.ArchivedAt,
		ArchivedBy:      moved.ArchivedBy,
	}
	slog.Info("reservation archived", "reservation_id", id, "agent", actor.Agent())

	if uc.exporter != nil {
		if err := uc.exporter.Export(context.WithoutCancel(ctx), view); err != nil {
			slog.Warn("archive export failed", "reservation_id", id, "error", err.Error())
		}
	}
	return view, nil
}

// loadAccessible locks the row and hides it from actors that could not list it.
func (uc *reservationCommandsImpl) loadAccessible(ctx context.Context, tx shared.Tx, actor access.Actor, id int64) (*reservation.Reservation, error) {
	res, err := tx.Reads().ReservationForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	rec := access.Record{
		OriginBranch:      res.Route().Origin(),
		DestinationBranch: res.Route().Destination(),
		Deleted:           res.Deleted(),
	}
	if !access.CanAccess(actor, rec) {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (uc *reservationCommandsImpl) lookupProduct(ctx context.Context, tx shared.Tx, code string) (*product.Product, error) {
	p, err := tx.Reads().ProductByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (uc *reservationCommandsImpl) save(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	err := tx.Reservations().Save(ctx, res)
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrConcurrentUpdate)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReservationNotFound
	}
	return err
}

func mapDomainErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return invalid(err, ErrDomainValidation)
	}
}
