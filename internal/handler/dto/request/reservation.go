package request

import (
	"strings"

	"branch-reservations/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	CustomerName       string           `json:"customerName" binding:"required"`
	CustomerPhone      string           `json:"customerPhone"`
	CustomerEmail      string           `json:"customerEmail"`
	ProductCode        string           `json:"productCode" binding:"required"`
	ProductDescription string           `json:"productDescription"`
	Quantity           int32            `json:"quantity" binding:"required,gt=0"`
	Total              *decimal.Decimal `json:"total,omitempty"`
	OriginBranch       string           `json:"originBranch"`
	DestinationBranch  string           `json:"destinationBranch" binding:"required"`
	DestinationContact string           `json:"destinationContact"`
	Comment            string           `json:"comment" binding:"max=1000"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CustomerName:       strings.TrimSpace(r.CustomerName),
		CustomerPhone:      strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:      strings.TrimSpace(r.CustomerEmail),
		ProductCode:        strings.TrimSpace(r.ProductCode),
		ProductDescription: strings.TrimSpace(r.ProductDescription),
		Quantity:           r.Quantity,
		Total:              r.Total,
		OriginBranch:       strings.TrimSpace(r.OriginBranch),
		DestinationBranch:  strings.TrimSpace(r.DestinationBranch),
		DestinationContact: strings.TrimSpace(r.DestinationContact),
		Comment:            r.Comment,
	}
}

// EditReservationRequest is a partial update; omitted fields stay as stored.
type EditReservationRequest struct {
	CustomerName       *string          `json:"customerName,omitempty"`
	CustomerPhone      *string          `json:"customerPhone,omitempty"`
	CustomerEmail      *string          `json:"customerEmail,omitempty"`
	ProductCode        *string          `json:"productCode,omitempty"`
	ProductDescription *string          `json:"productDescription,omitempty"`
	Quantity           *int32           `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	Total              *decimal.Decimal `json:"total,omitempty"`
	Comment            *string          `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

func (r EditReservationRequest) ToInput() commands.EditReservationInput {
	return commands.EditReservationInput{
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		ProductCode:        r.ProductCode,
		ProductDescription: r.ProductDescription,
		Quantity:           r.Quantity,
		Total:              r.Total,
		Comment:            r.Comment,
	}
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type RestoreRequest struct {
	Status *string `json:"status,omitempty"`
}
