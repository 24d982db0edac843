package cli

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerodividas/zerodividas/internal/model"
)

// FormatBRL renders an amount in Brazilian real notation, with dots
// grouping thousands and a comma before the cents: "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	neg := v.IsNegative()
	fixed := v.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAmount renders a transaction amount with a sign and color
// according to its type.
func FormatAmount(t model.Transaction) string {
	if t.Type == model.TypeIncome {
		return IncomeStyle.Render("+" + FormatBRL(t.Amount))
	}
	return ExpenseStyle.Render("-" + FormatBRL(t.Amount))
}

// FormatDate renders a date as dd/mm/yyyy, the convention used
// throughout the interface.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// StatusLabel returns the display label for a transaction status.
func StatusLabel(s model.TransactionStatus) string {
	if s == model.StatusPaid {
		return IncomeStyle.Render("pago")
	}
	return WarningStyle.Render("pendente")
}
