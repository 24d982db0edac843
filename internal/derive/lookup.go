package derive

import "github.com/zerodividas/zerodividas/internal/model"

// FallbackName and FallbackColor label entries whose category or account was
// deleted out from under them.
const (
	FallbackName  = "Outros"
	FallbackColor = "#ccc"
)

// CategoryByID returns the category with the given id, or the fallback
// category when the reference dangles. It never fails.
func CategoryByID(categories []model.Category, id string) model.Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return model.Category{Name: FallbackName, Color: FallbackColor}
}

// AccountByID returns the account with the given id, or a fallback account
// when the reference dangles.
func AccountByID(accounts []model.Account, id string) model.Account {
	for _, a := range accounts {
		if a.ID == id {
			return a
		}
	}
	return model.Account{BankName: FallbackName, Color: FallbackColor}
}
