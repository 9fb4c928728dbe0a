package queries

import (
	"time"

	"branch-reservations/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID                 int64           `json:"id"`
	CustomerName       string          `json:"customer_name"`
	CustomerPhone      string          `json:"customer_phone"`
	CustomerEmail      string          `json:"customer_email"`
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description"`
	Quantity           int32           `json:"quantity"`
	Total              decimal.Decimal `json:"total"`
	OriginBranch       string          `json:"origin_branch"`
	DestinationBranch  string          `json:"destination_branch"`
	DestinationContact string          `json:"destination_contact"`
	CreatedBy          string          `json:"created_by"`
	ModifiedBy         string          `json:"modified_by,omitempty"`
	Comment            string          `json:"comment,omitempty"`
	Status             string          `json:"status"`
	Deleted            bool            `json:"deleted"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	IntakeAt           *time.Time      `json:"intake_at,omitempty"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty"`
	ReceivedBy         string          `json:"received_by,omitempty"`
	ClosedBy           string          `json:"closed_by,omitempty"`
	Version            int32           `json:"version"`
}

// ArchivedReservationView is a cold store row
type ArchivedReservationView struct {
	ReservationView
	ArchivedAt time.Time `json:"archived_at"`
	ArchivedBy string    `json:"archived_by"`
}

// ProductView represents catalog data
type ProductView struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Branch      string    `json:"branch"`
	IsActive    bool      `json:"is_active"`
}

// BranchView is the contact data printed in pickup notices
type BranchView struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
	Phone   string `json:"phone"`
}

func ViewFromSnapshot(s reservation.Snapshot) *ReservationView {
	return &ReservationView{
		ID:                 s.ID,
		CustomerName:       s.CustomerName,
		CustomerPhone:      s.CustomerPhone,
		CustomerEmail:      s.CustomerEmail,
		ProductCode:        s.ProductCode,
		ProductDescription: s.ProductDescription,
		Quantity:           s.Quantity,
		Total:              s.Total,
		OriginBranch:       s.OriginBranch,
		DestinationBranch:  s.DestinationBranch,
		DestinationContact: s.DestinationContact,
		CreatedBy:          s.CreatedBy,
		ModifiedBy:         s.ModifiedBy,
		Comment:            s.Comment,
		Status:             s.Status.String(),
		Deleted:            s.Deleted,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		IntakeAt:           s.IntakeAt,
		ClosedAt:           s.ClosedAt,
		ReceivedBy:         s.ReceivedBy,
		ClosedBy:           s.ClosedBy,
		Version:            s.Version,
	}
}
