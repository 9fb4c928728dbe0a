package response

import (
	"time"

	"branch-reservations/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID                 int64           `json:"id"`
	CustomerName       string          `json:"customerName"`
	CustomerPhone      string          `json:"customerPhone"`
	CustomerEmail      string          `json:"customerEmail"`
	ProductCode        string          `json:"productCode"`
	ProductDescription string          `json:"productDescription"`
	Quantity           int32           `json:"quantity"`
	Total              decimal.Decimal `json:"total"`
	OriginBranch       string          `json:"originBranch"`
	DestinationBranch  string          `json:"destinationBranch"`
	DestinationContact string          `json:"destinationContact"`
	CreatedBy          string          `json:"createdBy"`
	ModifiedBy         string          `json:"modifiedBy,omitempty"`
	Comment            string          `json:"comment,omitempty"`
	Status             string          `json:"status"`
	Deleted            bool            `json:"deleted"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	IntakeAt           *time.Time      `json:"intakeAt,omitempty"`
	ClosedAt           *time.Time      `json:"closedAt,omitempty"`
	ReceivedBy         string          `json:"receivedBy,omitempty"`
	ClosedBy           string          `json:"closedBy,omitempty"`
	Version            int32           `json:"version"`
}

type ArchivedReservationResponse struct {
	ReservationResponse
	ArchivedAt time.Time `json:"archivedAt"`
	ArchivedBy string    `json:"archivedBy"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		CustomerName:       v.CustomerName,
		CustomerPhone:      v.CustomerPhone,
		CustomerEmail:      v.CustomerEmail,
		ProductCode:        v.ProductCode,
		ProductDescription: v.ProductDescription,
		Quantity:           v.Quantity,
		Total:              v.Total,
		OriginBranch:       v.OriginBranch,
		DestinationBranch:  v.DestinationBranch,
		DestinationContact: v.DestinationContact,
		CreatedBy:          v.CreatedBy,
		ModifiedBy:         v.ModifiedBy,
		Comment:            v.Comment,
		Status:             v.Status,
		Deleted:            v.Deleted,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		IntakeAt:           v.IntakeAt,
		ClosedAt:           v.ClosedAt,
		ReceivedBy:         v.ReceivedBy,
		ClosedBy:           v.ClosedBy,
		Version:            v.Version,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromArchivedView(v *queries.ArchivedReservationView) *ArchivedReservationResponse {
	return &ArchivedReservationResponse{
		ReservationResponse: *FromReservationView(&v.ReservationView),
		ArchivedAt:          v.ArchivedAt,
		ArchivedBy:          v.ArchivedBy,
	}
}
