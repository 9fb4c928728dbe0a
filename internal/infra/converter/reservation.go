package converter

import (
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) pgsql.CreateReservationParams {
	s := res.Snapshot()
	return pgsql.CreateReservationParams{
		CustomerName:       s.CustomerName,
		CustomerPhone:      s.CustomerPhone,
		CustomerEmail:      s.CustomerEmail,
		ProductCode:        s.ProductCode,
		ProductDescription: s.ProductDescription,
		Quantity:           s.Quantity,
		Total:              pgconv.DecimalToText(s.Total),
		OriginBranch:       s.OriginBranch,
		DestinationBranch:  s.DestinationBranch,
		DestinationContact: s.DestinationContact,
		CreatedBy:          s.CreatedBy,
		Comment:            s.Comment,
		Status:             s.Status.String(),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) pgsql.UpdateReservationParams {
	s := res.Snapshot()
	return pgsql.UpdateReservationParams{
		ID:                 s.ID,
		Version:            s.Version,
		CustomerName:       s.CustomerName,
		CustomerPhone:      s.CustomerPhone,
		CustomerEmail:      s.CustomerEmail,
		ProductCode:        s.ProductCode,
		ProductDescription: s.ProductDescription,
		Quantity:           s.Quantity,
		Total:              pgconv.DecimalToText(s.Total),
		ModifiedBy:         s.ModifiedBy,
		Comment:            s.Comment,
		Status:             s.Status.String(),
		Deleted:            s.Deleted,
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
		IntakeAt:           pgconv.TimePtrToPgtype(s.IntakeAt),
		ClosedAt:           pgconv.TimePtrToPgtype(s.ClosedAt),
		ReceivedBy:         s.ReceivedBy,
		ClosedBy:           s.ClosedBy,
	}
}

// SnapshotFromRow maps a stored row. Unknown status labels written by older clients are normalized.
func SnapshotFromRow(row pgsql.Reservations) (reservation.Snapshot, error) {
	total, err := pgconv.DecimalFromText(row.Total)
	if err != nil {
		return reservation.Snapshot{}, errs.Wrapf(err, "reservation %d total %q", row.ID, row.Total)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return reservation.Snapshot{}, errs.Wrapf(err, "reservation %d", row.ID)
	}

	return reservation.Snapshot{
		ID:                 row.ID,
		CustomerName:       row.CustomerName,
		CustomerPhone:      row.CustomerPhone,
		CustomerEmail:      row.CustomerEmail,
		ProductCode:        row.ProductCode,
		ProductDescription: row.ProductDescription,
		Quantity:           row.Quantity,
		Total:              total,
		OriginBranch:       row.OriginBranch,
		DestinationBranch:  row.DestinationBranch,
		DestinationContact: row.DestinationContact,
		CreatedBy:          row.CreatedBy,
		ModifiedBy:         row.ModifiedBy,
		Comment:            row.Comment,
		Status:             status,
		Deleted:            row.Deleted,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		IntakeAt:           pgconv.TimePtrFromPgtype(row.IntakeAt),
		ClosedAt:           pgconv.TimePtrFromPgtype(row.ClosedAt),
		ReceivedBy:         row.ReceivedBy,
		ClosedBy:           row.ClosedBy,
		Version:            row.Version,
	}, nil
}
