package reservation

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusInTransit      Status = "in_transit"
	StatusAwaitingPickup Status = "awaiting_pickup"
	StatusPickedUp       Status = "picked_up"
	StatusCancelled      Status = "cancelled"
)

// labels written by the previous system, still present in imported rows
var legacyLabels = map[string]Status{
	"en tránsito":        StatusInTransit,
	"en transito":        StatusInTransit,
	"pendiente":          StatusAwaitingPickup,
	"listo para retirar": StatusAwaitingPickup,
	"en sucursal":        StatusAwaitingPickup,
	"retirado":           StatusPickedUp,
	"entregado":          StatusPickedUp,
	"cancelado":          StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInTransit, StatusAwaitingPickup, StatusPickedUp, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusPickedUp || s == StatusCancelled
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.TrimSpace(v))
	if s.IsValid() {
		return s, nil
	}
	if legacy, ok := legacyLabels[strings.ToLower(strings.TrimSpace(v))]; ok {
		return legacy, nil
	}
	return "", ErrInvalidStatus
}

func AllStatuses() []Status {
	return []Status{StatusInTransit, StatusAwaitingPickup, StatusPickedUp, StatusCancelled}
}
