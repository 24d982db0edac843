package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerodividas/zerodividas/internal/model"
)

func recurring(id string, date time.Time, typ model.TransactionType) model.Transaction {
	tx := txn(id, date, 100, typ, model.StatusPaid)
	tx.IsRecurring = true
	tx.Recurrence = model.RecurrenceMonthly
	return tx
}

func TestTransactionsOn_RecurringProjection(t *testing.T) {
	origin := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	salary := recurring("salary", origin, model.TypeIncome)

	transactions := []model.Transaction{salary}

	t.Run("origin day includes the literal transaction once", func(t *testing.T) {
		got := TransactionsOn(transactions, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
		require.Len(t, got, 1)
		assert.Equal(t, "salary", got[0].ID)
	})

	t.Run("later matching day yields a virtual occurrence", func(t *testing.T) {
		got := TransactionsOn(transactions, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC))
		require.Len(t, got, 1)
		assert.Equal(t, "salary", got[0].ID)
	})

	t.Run("day before origin yields nothing", func(t *testing.T) {
		got := TransactionsOn(transactions, time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC))
		assert.Empty(t, got)
	})

	t.Run("non-matching day of month yields nothing", func(t *testing.T) {
		got := TransactionsOn(transactions, time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC))
		assert.Empty(t, got)
	})
}

func TestTransactionsOn_YearlyRecurrenceNotProjected(t *testing.T) {
	// Only monthly recurrences project virtual occurrences onto the
	// calendar; yearly entries show up on their literal date alone.
	origin := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	tx := txn("iptu", origin, 900, model.TypeExpense, model.StatusPending)
	tx.IsRecurring = true
	tx.Recurrence = model.RecurrenceYearly

	assert.Empty(t, TransactionsOn([]model.Transaction{tx}, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)))
	assert.Len(t, TransactionsOn([]model.Transaction{tx}, origin), 1)
}

func TestTransactionsOn_MixesLiteralAndVirtual(t *testing.T) {
	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	salary := recurring("salary", time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), model.TypeIncome)
	groceries := txn("groceries", time.Date(2024, 4, 5, 15, 30, 0, 0, time.UTC), 80, model.TypeExpense, model.StatusPaid)
	other := txn("other", time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC), 10, model.TypeExpense, model.StatusPaid)

	got := TransactionsOn([]model.Transaction{salary, groceries, other}, day)
	require.Len(t, got, 2)

	ids := map[string]bool{}
	for _, g := range got {
		ids[g.ID] = true
	}
	assert.True(t, ids["salary"])
	assert.True(t, ids["groceries"])
}

func TestActivityOn(t *testing.T) {
	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	salary := recurring("salary", time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), model.TypeIncome)
	rent := recurring("rent", time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC), model.TypeExpense)

	a := ActivityOn([]model.Transaction{salary, rent}, day)
	assert.True(t, a.HasIncome)
	assert.True(t, a.HasExpense)

	quiet := ActivityOn([]model.Transaction{salary, rent}, time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC))
	assert.False(t, quiet.HasIncome)
	assert.False(t, quiet.HasExpense)
}
