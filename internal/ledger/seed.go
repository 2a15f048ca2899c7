// AngelaMos | 2026
// seed.go

package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

func seedDay(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// loadSeed replaces every collection with the fixed demo data set.
// Callers hold the write lock or own the ledger exclusively.
func (l *Ledger) loadSeed() {
	l.users = map[UserID]*User{
		1: {ID: 1, Name: "Alice", Email: "alice@example.com", Role: RoleAdmin, CreatedAt: seedDay(1)},
		2: {ID: 2, Name: "Bob", Email: "bob@example.com", Role: RoleUser, CreatedAt: seedDay(2)},
		3: {ID: 3, Name: "Charlie", Email: "charlie@example.com", Role: RoleUser, CreatedAt: seedDay(3)},
	}

	l.products = map[ProductID]*Product{
		1: {ID: 1, Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 15, Category: "electronics"},
		2: {ID: 2, Name: "Headphones", Price: decimal.RequireFromString("79.99"), Stock: 42, Category: "electronics"},
		3: {ID: 3, Name: "Desk Chair", Price: decimal.RequireFromString("249.99"), Stock: 8, Category: "furniture"},
		4: {ID: 4, Name: "Notebook", Price: decimal.RequireFromString("4.99"), Stock: 200, Category: "stationery"},
	}

	l.orders = map[OrderID]*Order{
		1: {
			ID: 1, UserID: 1, ProductID: 1, Quantity: 1,
			Total:  decimal.RequireFromString("999.99"),
			Status: StatusShipped, CreatedAt: seedDay(10),
		},
		2: {
			ID: 2, UserID: 2, ProductID: 2, Quantity: 2,
			Total:  decimal.RequireFromString("159.98"),
			Status: StatusPending, CreatedAt: seedDay(11),
		},
		3: {
			ID: 3, UserID: 1, ProductID: 3, Quantity: 1,
			Total:  decimal.RequireFromString("249.99"),
			Status: StatusPaid, CreatedAt: seedDay(12),
		},
	}

	l.notes = make(map[NoteID]*Note)

	l.counters = Counters{Users: 3, Products: 4, Orders: 3, Notes: 0}
}
