package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAgentRequired     = errors.New("agent is required")
	ErrCreatorRequired   = errors.New("creator is required")
)

const (
	editedMarker   = " (edited)"
	restoredMarker = " (restored)"
)

type Reservation struct {
	id         int64
	customer   Customer
	product    ProductLine
	route      Route
	createdBy  string
	modifiedBy string
	comment    string
	status     Status
	deleted    bool
	createdAt  time.Time
	updatedAt  time.Time
	intakeAt   *time.Time
	closedAt   *time.Time
	receivedBy string
	closedBy   string
	version    int32
}

type NewParams struct {
	Customer  Customer
	Product   ProductLine
	Route     Route
	CreatedBy string
	Comment   string
}

func NewReservation(p NewParams, now time.Time) (*Reservation, error) {
	creator := strings.TrimSpace(p.CreatedBy)
	if creator == "" {
		return nil, ErrCreatorRequired
	}
	return &Reservation{
		customer:  p.Customer,
		product:   p.Product,
		route:     p.Route,
		createdBy: creator,
		comment:   strings.TrimSpace(p.Comment),
		status:    StatusInTransit,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// Snapshot is the flat form used by storage and by the cold store.
type Snapshot struct {
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
	ModifiedBy         string
	Comment            string
	Status             Status
	Deleted            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	IntakeAt           *time.Time
	ClosedAt           *time.Time
	ReceivedBy         string
	ClosedBy           string
	Version            int32
}

// FromSnapshot rebuilds a stored reservation without re-running creation rules.
func FromSnapshot(s Snapshot) *Reservation {
	return &Reservation{
		id:         s.ID,
		customer:   Customer{name: s.CustomerName, phone: s.CustomerPhone, email: s.CustomerEmail},
		product:    ProductLine{code: s.ProductCode, description: s.ProductDescription, quantity: s.Quantity, total: s.Total},
		route:      Route{origin: s.OriginBranch, destination: s.DestinationBranch, destinationContact: s.DestinationContact},
		createdBy:  s.CreatedBy,
		modifiedBy: s.ModifiedBy,
		comment:    s.Comment,
		status:     s.Status,
		deleted:    s.Deleted,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
		intakeAt:   s.IntakeAt,
		closedAt:   s.ClosedAt,
		receivedBy: s.ReceivedBy,
		closedBy:   s.ClosedBy,
		version:    s.Version,
	}
}

// Transition applies the status table and returns the effect that was applied.
func (r *Reservation) Transition(target Status, agent string, now time.Time) (Effect, error) {
	if !target.IsValid() {
		return EffectRejected, ErrInvalidStatus
	}
	effect := EffectOf(r.status, target)
	agent = strings.TrimSpace(agent)

	switch effect {
	case EffectIntake:
		if agent == "" {
			return EffectRejected, ErrAgentRequired
		}
		stamp := now
		r.intakeAt = &stamp
		r.receivedBy = agent
	case EffectClose:
		if agent == "" {
			return EffectRejected, ErrAgentRequired
		}
		stamp := now
		r.closedAt = &stamp
		r.closedBy = agent
	case EffectOverwrite:
	default:
		return EffectRejected, ErrInvalidTransition
	}

	r.status = target
	r.updatedAt = now
	return effect, nil
}

type EditParams struct {
	Customer Customer
	Product  ProductLine
	Comment  *string
}

func (r *Reservation) Edit(p EditParams, agent string, now time.Time) error {
	agent = strings.TrimSpace(agent)
	if agent == "" {
		return ErrAgentRequired
	}
	r.customer = p.Customer
	r.product = p.Product
	if p.Comment != nil {
		r.comment = strings.TrimSpace(*p.Comment)
	}
	r.modifiedBy = agent + editedMarker
	r.updatedAt = now
	return nil
}

func (r *Reservation) SoftDelete(now time.Time) {
	r.deleted = true
	r.updatedAt = now
}

// Restore clears the deleted flag and optionally forces a status without stamping intake or close fields.
func (r *Reservation) Restore(target *Status, agent string, now time.Time) error {
	agent = strings.TrimSpace(agent)
	if agent == "" {
		return ErrAgentRequired
	}
	if target != nil {
		if !target.IsValid() {
			return ErrInvalidStatus
		}
		r.status = *target
	}
	r.deleted = false
	r.modifiedBy = agent + restoredMarker
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsClosed() bool { return r.status.IsTerminal() }

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) Customer() Customer   { return r.customer }
func (r *Reservation) Product() ProductLine { return r.product }
func (r *Reservation) Route() Route         { return r.route }
func (r *Reservation) CreatedBy() string    { return r.createdBy }
func (r *Reservation) ModifiedBy() string   { return r.modifiedBy }
func (r *Reservation) Comment() string      { return r.comment }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Deleted() bool        { return r.deleted }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
func (r *Reservation) IntakeAt() *time.Time { return r.intakeAt }
func (r *Reservation) ClosedAt() *time.Time { return r.closedAt }
func (r *Reservation) ReceivedBy() string   { return r.receivedBy }
func (r *Reservation) ClosedBy() string     { return r.closedBy }
func (r *Reservation) Version() int32       { return r.version }

// AssignID is called once by the store after insert.
func (r *Reservation) AssignID(id int64) {
	if r.id == 0 {
		r.id = id
	}
}

// MarkSaved advances the version after the store accepted a write.
func (r *Reservation) MarkSaved() {
	r.version++
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:                 r.id,
		CustomerName:       r.customer.name,
		CustomerPhone:      r.customer.phone,
		CustomerEmail:      r.customer.email,
		ProductCode:        r.product.code,
		ProductDescription: r.product.description,
		Quantity:           r.product.quantity,
		Total:              r.product.total,
		OriginBranch:       r.route.origin,
		DestinationBranch:  r.route.destination,
		DestinationContact: r.route.destinationContact,
		CreatedBy:          r.createdBy,
		ModifiedBy:         r.modifiedBy,
		Comment:            r.comment,
		Status:             r.status,
		Deleted:            r.deleted,
		CreatedAt:          r.createdAt,
		UpdatedAt:          r.updatedAt,
		IntakeAt:           r.intakeAt,
		ClosedAt:           r.closedAt,
		ReceivedBy:         r.receivedBy,
		ClosedBy:           r.closedBy,
		Version:            r.version,
	}
}
