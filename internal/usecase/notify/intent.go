package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"branch-reservations/internal/domain/reservation"
)

type Kind string

const (
	KindConfirmation Kind = "reservation.confirmation"
	KindPickupReady  Kind = "reservation.pickup_ready"
)

func (k Kind) IsValid() bool {
	return k == KindConfirmation || k == KindPickupReady
}

// Intent is emitted by the lifecycle once the state change is committed.
type Intent struct {
	Kind        Kind
	Reservation reservation.Snapshot
}

// Dispatcher never reports failure to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent Intent)
}

// Payload is the job body stored in the outbox.
type Payload struct {
	ReservationID      int64     `json:"reservation_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	ProductCode        string    `json:"product_code"`
	ProductDescription string    `json:"product_description"`
	Quantity           int32     `json:"quantity"`
	Total              string    `json:"total"`
	OriginBranch       string    `json:"origin_branch"`
	DestinationBranch  string    `json:"destination_branch"`
	DestinationContact string    `json:"destination_contact"`
	Comment            string    `json:"comment,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func (i Intent) Payload() Payload {
	s := i.Reservation
	occurred := s.UpdatedAt
	if occurred.IsZero() {
		occurred = s.CreatedAt
	}
	return Payload{
		ReservationID:      s.ID,
		CustomerName:       s.CustomerName,
		CustomerEmail:      s.CustomerEmail,
		ProductCode:        s.ProductCode,
		ProductDescription: s.ProductDescription,
		Quantity:           s.Quantity,
		Total:              s.Total.StringFixed(2),
		OriginBranch:       s.OriginBranch,
		DestinationBranch:  s.DestinationBranch,
		DestinationContact: s.DestinationContact,
		Comment:            s.Comment,
		OccurredAt:         occurred,
	}
}

func (i Intent) Topic() string {
	return "reservation/" + strconv.FormatInt(i.Reservation.ID, 10)
}

func EncodePayload(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

func DecodePayload(b []byte) (Payload, error) {
	var p Payload
	err := json.Unmarshal(b, &p)
	return p, err
}
