package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerodividas/zerodividas/internal/auth"
	"github.com/zerodividas/zerodividas/internal/model"
)

type commitRecord struct {
	snap    Snapshot
	changed []string
}

// recordingPersister captures every commit so tests can assert on the
// changed-key reporting and the persisted snapshots.
type recordingPersister struct {
	err     error
	commits []commitRecord
}

func (p *recordingPersister) Persist(_ context.Context, snap Snapshot, changed []string) error {
	if p.err != nil {
		return p.err
	}
	p.commits = append(p.commits, commitRecord{snap: snap, changed: changed})
	return nil
}

func (p *recordingPersister) lastChanged() []string {
	if len(p.commits) == 0 {
		return nil
	}
	return p.commits[len(p.commits)-1].changed
}

var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func testSeeder(calls *int) SeedFunc {
	return func(now time.Time) Dataset {
		if calls != nil {
			*calls++
		}
		return Dataset{
			User: model.User{ID: "demo-user", Name: "Demo", Email: auth.DemoEmail},
			Accounts: []model.Account{
				{ID: "acc-1", BankName: "Nubank", Balance: decimal.NewFromInt(1000), Type: model.AccountTypeChecking},
			},
			Transactions: []model.Transaction{
				{ID: "tx-1", Description: "Salário", Amount: decimal.NewFromInt(3000), Date: now, Type: model.TypeIncome, Status: model.StatusPaid, CategoryID: "6", AccountID: "acc-1", IsRecurring: true, Recurrence: model.RecurrenceMonthly},
				{ID: "tx-2", Description: "Mercado", Amount: decimal.NewFromInt(200), Date: now, Type: model.TypeExpense, Status: model.StatusPending, CategoryID: "1", AccountID: "acc-1"},
			},
			Categories: testCategories(),
		}
	}
}

func testCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Alimentação", Color: "#FF5733", Type: model.CategoryTypeExpense},
		{ID: "6", Name: "Salário", Color: "#57FF33", Type: model.CategoryTypeIncome},
	}
}

func newTestStore(t *testing.T) (*Store, *recordingPersister, *int) {
	t.Helper()
	p := &recordingPersister{}
	calls := 0
	s := New(p,
		WithSeeder(testSeeder(&calls)),
		WithDefaultCategories(testCategories()),
		WithClock(func() time.Time { return testNow }),
	)
	return s, p, &calls
}

func TestLogin_DemoSeedsOnce(t *testing.T) {
	s, _, calls := newTestStore(t)

	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, auth.DemoEmail, s.User().Email)
	assert.Len(t, s.Accounts(), 1)
	assert.Len(t, s.Transactions(), 2)
	assert.Equal(t, 1, *calls)

	// Logging out and back in must not reseed.
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))
	assert.Equal(t, 1, *calls, "already-seeded demo identity must not reseed")
	assert.Len(t, s.Transactions(), 2)
}

func TestLogin_DemoWrongPasswordFails(t *testing.T) {
	s, p, calls := newTestStore(t)

	assert.False(t, s.Login(auth.DemoEmail, "wrong"))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, *calls)
	assert.Empty(t, p.commits)
}

func TestSignupThenLogin_StartsEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)

	// Run a demo session first so there is prior entity data to discard.
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))
	require.NotEmpty(t, s.Transactions())
	s.Logout()

	require.True(t, s.Signup("Maria", "maria@example.com", "s3cret"))
	require.True(t, s.Login("maria@example.com", "s3cret"))

	// Registered logins establish a fresh empty state, not the previous
	// session's data. Known limitation, pinned here.
	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, testCategories(), s.Categories())
	require.NotNil(t, s.User())
	assert.Equal(t, "maria@example.com", s.User().Email)
	assert.Equal(t, "Maria", s.User().Name)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.True(t, s.Signup("Maria", "maria@example.com", "s3cret"))
	assert.False(t, s.Signup("Other Maria", "maria@example.com", "different"))

	assert.Len(t, s.Snapshot().RegisteredUsers, 1)
}

func TestSignup_DoesNotLogin(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.True(t, s.Signup("Maria", "maria@example.com", "s3cret"))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestSignup_StoresHashNotPassword(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.True(t, s.Signup("Maria", "maria@example.com", "s3cret"))
	ru := s.Snapshot().RegisteredUsers[0]
	assert.NotEmpty(t, ru.PasswordHash)
	assert.NotEqual(t, "s3cret", string(ru.PasswordHash))
}

func TestLogin_UnknownRegisteredUser(t *testing.T) {
	s, p, _ := newTestStore(t)

	assert.False(t, s.Login("nobody@example.com", "whatever"))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, p.commits, "failed login must not mutate state")
}

func TestLogout_KeepsData(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.NotNil(t, s.User())
	assert.NotEmpty(t, s.Transactions())
	assert.NotEmpty(t, s.Accounts())
}

func TestPayBill_Idempotent(t *testing.T) {
	s, p, _ := newTestStore(t)
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))

	s.PayBill("tx-2")
	first := s.Snapshot()
	s.PayBill("tx-2")
	second := s.Snapshot()

	assert.Equal(t, first.Transactions, second.Transactions)
	for _, tx := range second.Transactions {
		if tx.ID == "tx-2" {
			assert.Equal(t, model.StatusPaid, tx.Status)
		}
	}
	assert.NotEmpty(t, p.commits)
}

func TestPayBill_IncomeTransaction(t *testing.T) {
	// PayBill does not validate the transaction type: paying an income
	// entry sets its status to paid. Pinned current behavior.
	s, _, _ := newTestStore(t)
	s.AddTransaction(model.Transaction{
		ID:     "inc-1",
		Amount: decimal.NewFromInt(500),
		Date:   testNow,
		Type:   model.TypeIncome,
		Status: model.StatusPending,
	})

	s.PayBill("inc-1")

	tx := s.Transactions()[0]
	assert.Equal(t, model.TypeIncome, tx.Type)
	assert.Equal(t, model.StatusPaid, tx.Status)
}

func TestPayBill_UnknownID(t *testing.T) {
	s, p, _ := newTestStore(t)

	s.PayBill("missing")

	assert.Empty(t, s.Transactions())
	assert.Empty(t, p.commits, "no-op mutations must not commit")
}

func TestAddTransaction_EnforcesAmountInvariant(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddTransaction(model.Transaction{
		ID:     "neg",
		Amount: decimal.NewFromFloat(-123.45),
		Date:   testNow,
		Type:   model.TypeExpense,
		Status: model.StatusPaid,
	})

	tx := s.Transactions()[0]
	assert.False(t, tx.Amount.IsNegative())
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(123.45)))
}

func TestUpdateTransaction_MergePatch(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddTransaction(model.Transaction{
		ID:          "tx-1",
		Description: "Aluguel",
		Amount:      decimal.NewFromInt(1500),
		Date:        testNow,
		CategoryID:  "3",
		AccountID:   "acc-1",
		Type:        model.TypeExpense,
		Status:      model.StatusPending,
	})

	newAmount := decimal.NewFromInt(1600)
	s.UpdateTransaction("tx-1", TransactionPatch{Amount: &newAmount})

	tx := s.Transactions()[0]
	assert.True(t, tx.Amount.Equal(newAmount))
	// Every other field is preserved.
	assert.Equal(t, "Aluguel", tx.Description)
	assert.Equal(t, "3", tx.CategoryID)
	assert.Equal(t, "acc-1", tx.AccountID)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, model.StatusPending, tx.Status)
	assert.Equal(t, testNow, tx.Date)
}

func TestUpdateTransaction_UnknownID(t *testing.T) {
	s, p, _ := newTestStore(t)

	desc := "ignored"
	s.UpdateTransaction("missing", TransactionPatch{Description: &desc})

	assert.Empty(t, s.Transactions())
	assert.Empty(t, p.commits)
}

func TestDeleteTransaction(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddTransaction(model.Transaction{ID: "a", Amount: decimal.NewFromInt(1), Date: testNow, Type: model.TypeExpense, Status: model.StatusPaid})
	s.AddTransaction(model.Transaction{ID: "b", Amount: decimal.NewFromInt(2), Date: testNow, Type: model.TypeExpense, Status: model.StatusPaid})

	s.DeleteTransaction("a")
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "b", s.Transactions()[0].ID)

	// Unknown id is silently ignored.
	s.DeleteTransaction("a")
	assert.Len(t, s.Transactions(), 1)
}

func TestDeleteCategory_LeavesTransactionsIntact(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))

	s.DeleteCategory("1")

	for _, c := range s.Categories() {
		assert.NotEqual(t, "1", c.ID)
	}
	// The expense referencing category 1 survives with a dangling id.
	var found bool
	for _, tx := range s.Transactions() {
		if tx.ID == "tx-2" {
			found = true
			assert.Equal(t, "1", tx.CategoryID)
		}
	}
	assert.True(t, found)
}

func TestAccountCRUD(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddAccount(model.Account{ID: "acc-1", BankName: "Inter", Balance: decimal.NewFromInt(500), Type: model.AccountTypeChecking})

	balance := decimal.NewFromInt(750)
	s.UpdateAccount("acc-1", AccountPatch{Balance: &balance})
	acc := s.Accounts()[0]
	assert.True(t, acc.Balance.Equal(balance))
	assert.Equal(t, "Inter", acc.BankName, "unpatched fields preserved")

	s.UpdateAccount("missing", AccountPatch{Balance: &balance})
	assert.Len(t, s.Accounts(), 1)

	s.DeleteAccount("acc-1")
	assert.Empty(t, s.Accounts())
}

func TestCategoryCRUD(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.AddCategory(model.Category{ID: "c1", Name: "Pets", Color: "#123456", Type: model.CategoryTypeExpense})

	name := "Animais"
	s.UpdateCategory("c1", CategoryPatch{Name: &name})
	c := s.Categories()[0]
	assert.Equal(t, "Animais", c.Name)
	assert.Equal(t, "#123456", c.Color)

	s.DeleteCategory("missing")
	assert.Len(t, s.Categories(), 1)
}

func TestCommit_ReportsChangedKeys(t *testing.T) {
	s, p, _ := newTestStore(t)

	s.AddTransaction(model.Transaction{ID: "t", Amount: decimal.NewFromInt(1), Date: testNow, Type: model.TypeExpense, Status: model.StatusPending})
	assert.Equal(t, []string{KeyTransactions}, p.lastChanged())

	s.SetActiveTab(model.TabStatistics)
	assert.Equal(t, []string{KeyActiveTab}, p.lastChanged())

	s.SetAccountsSortOrder(model.SortAmountDesc)
	assert.Equal(t, []string{KeyAccountsSortOrder}, p.lastChanged())

	s.OpenTransactionModal(model.TypeExpense)
	assert.Equal(t, []string{KeyIsTransactionModalOpen, KeyTransactionModalType}, p.lastChanged())

	s.Logout()
	assert.Equal(t, []string{KeyIsAuthenticated}, p.lastChanged())
}

func TestCommit_PersistFailureKeepsState(t *testing.T) {
	p := &recordingPersister{err: assert.AnError}
	s := New(p, WithDefaultCategories(testCategories()))

	s.AddTransaction(model.Transaction{ID: "t", Amount: decimal.NewFromInt(1), Date: testNow, Type: model.TypeExpense, Status: model.StatusPending})

	// Persistence failure is log-only; in-memory state stays authoritative.
	assert.Len(t, s.Transactions(), 1)
}

func TestUISelectionState(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.SetActiveTab(model.TabAccounts)
	assert.Equal(t, model.TabAccounts, s.ActiveTab())

	s.OpenTransactionModal(model.TypeIncome)
	assert.True(t, s.IsTransactionModalOpen())
	assert.Equal(t, model.TypeIncome, s.TransactionModalType())
	s.CloseTransactionModal()
	assert.False(t, s.IsTransactionModalOpen())

	s.OpenAddAccountModal()
	assert.True(t, s.IsAddAccountModalOpen())
	s.CloseAddAccountModal()
	assert.False(t, s.IsAddAccountModalOpen())

	// UI selections ride along in the persisted snapshot.
	snap := s.Snapshot()
	assert.Equal(t, model.TabAccounts, snap.ActiveTab)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))

	snap := s.Snapshot()
	snap.Transactions[0].Description = "tampered"
	snap.User.Name = "tampered"

	assert.NotEqual(t, "tampered", s.Transactions()[0].Description)
	assert.NotEqual(t, "tampered", s.User().Name)
}

func TestReset(t *testing.T) {
	s, p, _ := newTestStore(t)
	require.True(t, s.Login(auth.DemoEmail, auth.DemoPassword))

	s.Reset()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, model.TabHome, s.ActiveTab())
	assert.Equal(t, model.SortDefault, s.AccountsSortOrder())

	// Reset replaces the whole snapshot, so every key is reported changed.
	assert.ElementsMatch(t, []string{
		KeyUser, KeyAccounts, KeyTransactions, KeyCategories,
		KeyIsAuthenticated, KeyRegisteredUsers, KeyActiveTab,
		KeyIsTransactionModalOpen, KeyTransactionModalType,
		KeyIsAddAccountModalOpen, KeyAccountsSortOrder,
	}, p.lastChanged())
}
