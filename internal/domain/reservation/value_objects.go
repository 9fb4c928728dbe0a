package reservation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrProductCodeRequired  = errors.New("product code is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrNegativeTotal        = errors.New("total cannot be negative")
)

type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrCustomerNameRequired
	}
	return Customer{
		name:  name,
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

// Deliverable is false for addresses without "@" and for filler such as "---" typed at the counter.
func (c Customer) Deliverable() bool {
	return IsDeliverableEmail(c.email)
}

func IsDeliverableEmail(email string) bool {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	return strings.Trim(local, "-. ") != "" && strings.Trim(domain, "-. ") != ""
}

// ProductLine is a snapshot taken at creation; later catalog changes never rewrite it.
type ProductLine struct {
	code        string
	description string
	quantity    int32
	total       decimal.Decimal
}

func NewProductLine(code, description string, quantity int32, total decimal.Decimal) (ProductLine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ProductLine{}, ErrProductCodeRequired
	}
	if quantity <= 0 {
		return ProductLine{}, ErrInvalidQuantity
	}
	if total.IsNegative() {
		return ProductLine{}, ErrNegativeTotal
	}
	return ProductLine{
		code:        code,
		description: strings.TrimSpace(description),
		quantity:    quantity,
		total:       total.Round(2),
	}, nil
}

func (p ProductLine) Code() string           { return p.code }
func (p ProductLine) Description() string    { return p.description }
func (p ProductLine) Quantity() int32        { return p.quantity }
func (p ProductLine) Total() decimal.Decimal { return p.total }

// Route is where the goods travel from and to.
type Route struct {
	origin             string
	destination        string
	destinationContact string
}

var (
	ErrOriginRequired      = errors.New("origin branch is required")
	ErrDestinationRequired = errors.New("destination branch is required")
)

func NewRoute(origin, destination, contact string) (Route, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" {
		return Route{}, ErrOriginRequired
	}
	if destination == "" {
		return Route{}, ErrDestinationRequired
	}
	return Route{origin: origin, destination: destination, destinationContact: strings.TrimSpace(contact)}, nil
}

func (r Route) Origin() string             { return r.origin }
func (r Route) Destination() string        { return r.destination }
func (r Route) DestinationContact() string { return r.destinationContact }
