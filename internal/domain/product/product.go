package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrCodeRequired  = errors.New("product code is required")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNegativePrice = errors.New("price cannot be negative")
)

type Product struct {
	Code        string
	Description string
	UnitPrice   decimal.Decimal
	UpdatedAt   time.Time
}

func NormalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrCodeRequired
	}
	return code, nil
}

// LineTotal is the price of qty units rounded to cents.
func (p Product) LineTotal(qty int32) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt32(qty)).Round(2)
}

// ParsePrice reads prices typed with either locale convention: "1.234,50", "1,234.50", "$ 10,5", "12.00".
// When both separators appear the last one is decimal; a lone comma is decimal; a repeated separator groups thousands.
func ParsePrice(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	negative := false
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			negative = true
		}
	}
	s := b.String()
	if s == "" || strings.Trim(s, ".,") == "" {
		return decimal.Zero, ErrInvalidPrice
	}

	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	if strings.Count(s, ".") > 1 {
		return decimal.Zero, ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if negative && !d.IsZero() {
		return decimal.Zero, ErrNegativePrice
	}
	return d.Round(2), nil
}
