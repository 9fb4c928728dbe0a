//go:build unit || e2e

package builder

import (
	"time"

	domres "branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var FixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID                 int64
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProductCode        string
	ProductDescription string
	Quantity           int32
	Total              decimal.Decimal
	OriginBranch       string
	DestinationBranch  string
	DestinationContact string
	CreatedBy          string
	Comment            string
	Status             domres.Status
	Deleted            bool
	CreatedAt          time.Time
	Version            int32
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                 1,
		CustomerName:       "Juan Perez",
		CustomerPhone:      "1155550000",
		CustomerEmail:      "juan@example.com",
		ProductCode:        "X1",
		ProductDescription: "Taladro percutor",
		Quantity:           2,
		Total:              decimal.NewFromInt(500),
		OriginBranch:       "Centro",
		DestinationBranch:  "Norte",
		DestinationContact: "Mostrador Norte",
		CreatedBy:          "Laura",
		Comment:            "",
		Status:             domres.StatusInTransit,
		CreatedAt:          FixedNow,
		Version:            1,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through the creation rules, so ID/Status/Deleted are not applied.
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	customer, err := domres.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	product, err := domres.NewProductLine(b.ProductCode, b.ProductDescription, b.Quantity, b.Total)
	if err != nil {
		return nil, err
	}
	route, err := domres.NewRoute(b.OriginBranch, b.DestinationBranch, b.DestinationContact)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(domres.NewParams{
		Customer:  customer,
		Product:   product,
		Route:     route,
		CreatedBy: b.CreatedBy,
		Comment:   b.Comment,
	}, b.CreatedAt)
}

func (b *ReservationBuilder) BuildSnapshot() domres.Snapshot {
	return domres.Snapshot{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		ProductCode:        b.ProductCode,
		ProductDescription: b.ProductDescription,
		Quantity:           b.Quantity,
		Total:              b.Total,
		OriginBranch:       b.OriginBranch,
		DestinationBranch:  b.DestinationBranch,
		DestinationContact: b.DestinationContact,
		CreatedBy:          b.CreatedBy,
		Comment:            b.Comment,
		Status:             b.Status,
		Deleted:            b.Deleted,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
		Version:            b.Version,
	}
}

func (b *ReservationBuilder) BuildInfra() pgsql.Reservations {
	return pgsql.Reservations{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		ProductCode:        b.ProductCode,
		ProductDescription: b.ProductDescription,
		Quantity:           b.Quantity,
		Total:              pgconv.DecimalToText(b.Total),
		OriginBranch:       b.OriginBranch,
		DestinationBranch:  b.DestinationBranch,
		DestinationContact: b.DestinationContact,
		CreatedBy:          b.CreatedBy,
		Comment:            b.Comment,
		Status:             b.Status.String(),
		Deleted:            b.Deleted,
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
		Version:            b.Version,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ViewFromSnapshot(b.BuildSnapshot())
}

// BuildStored returns a reservation as if loaded from storage.
func (b *ReservationBuilder) BuildStored() *domres.Reservation {
	return domres.FromSnapshot(b.BuildSnapshot())
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithCustomerEmail(email string) *ReservationBuilder {
	b.CustomerEmail = email
	return b
}

func (b *ReservationBuilder) WithProduct(code string, qty int32, total decimal.Decimal) *ReservationBuilder {
	b.ProductCode = code
	b.Quantity = qty
	b.Total = total
	return b
}

func (b *ReservationBuilder) WithOrigin(branch string) *ReservationBuilder {
	b.OriginBranch = branch
	return b
}

func (b *ReservationBuilder) WithDestination(branch string) *ReservationBuilder {
	b.DestinationBranch = branch
	return b
}

func (b *ReservationBuilder) WithCreatedBy(name string) *ReservationBuilder {
	b.CreatedBy = name
	return b
}

func (b *ReservationBuilder) WithStatus(s domres.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) AsDeleted() *ReservationBuilder {
	b.Deleted = true
	return b
}
