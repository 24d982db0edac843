package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "simple", value: "42.50", want: "R$ 42,50"},
		{name: "thousands grouping", value: "1234.56", want: "R$ 1.234,56"},
		{name: "millions grouping", value: "1234567.89", want: "R$ 1.234.567,89"},
		{name: "zero", value: "0", want: "R$ 0,00"},
		{name: "rounds to cents", value: "10.5", want: "R$ 10,50"},
		{name: "negative", value: "-99.90", want: "-R$ 99,90"},
		{name: "exactly one thousand", value: "1000", want: "R$ 1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.value)
			assert.Equal(t, tt.want, FormatBRL(v))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatDate(d))
}
