//go:build unit

package product_test

import (
	"testing"

	"branch-reservations/internal/domain/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "10,50", want: "10.50"},
		{in: "12.00", want: "12.00"},
		{in: "1.234,56", want: "1234.56"},
		{in: "1,234.56", want: "1234.56"},
		{in: "$ 1.234.567", want: "1234567.00"},
		{in: "1,234,567", want: "1234567.00"},
		{in: "ARS 99", want: "99.00"},
		{in: " 7 ", want: "7.00"},
		{in: "0,5", want: "0.50"},
		{in: "", wantErr: product.ErrInvalidPrice},
		{in: "gratis", wantErr: product.ErrInvalidPrice},
		{in: ",", wantErr: product.ErrInvalidPrice},
		{in: "-5", wantErr: product.ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := product.ParsePrice(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestLineTotal(t *testing.T) {
	p := product.Product{Code: "X1", UnitPrice: decimal.RequireFromString("250")}
	assert.Equal(t, "500.00", p.LineTotal(2).StringFixed(2))
}

func TestNormalizeCode(t *testing.T) {
	code, err := product.NormalizeCode("  A1 ")
	require.NoError(t, err)
	assert.Equal(t, "A1", code)

	_, err = product.NormalizeCode("   ")
	assert.ErrorIs(t, err, product.ErrCodeRequired)
}
