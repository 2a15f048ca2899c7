// AngelaMos | 2026
// analytics.go

package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

type SearchResult struct {
	Term     string
	Users    []User
	Products []Product
	Notes    []Note
}

type Summary struct {
	Counts   Counts
	LowStock []Product
	ByStatus map[OrderStatus]int
	Revenue  decimal.Decimal
}

type HistoryEntry struct {
	Order
	ProductName string
}

type OrderHistory struct {
	User       User
	Orders     []HistoryEntry
	TotalSpent decimal.Decimal
}

// Search matches term as a case-insensitive substring of user name/email,
// product name/category and note title/content.
func (l *Ledger) Search(term string) SearchResult {
	needle := strings.ToLower(term)
	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return SearchResult{
		Term: term,
		Users: copyUsers(inIDOrder(l.users, func(u *User) bool {
			return contains(u.Name, u.Email)
		})),
		Products: copyProducts(inIDOrder(l.products, func(p *Product) bool {
			return contains(p.Name, p.Category)
		})),
		Notes: copyNotes(inIDOrder(l.notes, func(n *Note) bool {
			return contains(n.Title, n.Content)
		})),
	}
}

// Summary reports revenue over paid and shipped orders only.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byStatus := make(map[OrderStatus]int, len(AllStatuses))
	for _, s := range AllStatuses {
		byStatus[s] = 0
	}

	revenue := decimal.Zero
	for _, o := range l.orders {
		byStatus[o.Status]++
		if o.Status.Billable() {
			revenue = revenue.Add(o.Total)
		}
	}

	lowStock := inIDOrder(l.products, func(p *Product) bool {
		return p.Stock < l.lowStockThreshold
	})

	return Summary{
		Counts: Counts{
			Users:    len(l.users),
			Products: len(l.products),
			Orders:   len(l.orders),
			Notes:    len(l.notes),
		},
		LowStock: copyProducts(lowStock),
		ByStatus: byStatus,
		Revenue:  revenue.Round(2),
	}
}

// UserOrderHistory lists every order of a live user. ProductName is empty
// for orders whose product has been deleted.
func (l *Ledger) UserOrderHistory(id UserID) (OrderHistory, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[id]
	if !ok {
		return OrderHistory{}, userNotFound(id)
	}

	orders := inIDOrder(l.orders, func(o *Order) bool {
		return o.UserID == id
	})

	history := OrderHistory{
		User:       *u,
		Orders:     make([]HistoryEntry, 0, len(orders)),
		TotalSpent: decimal.Zero,
	}

	for _, o := range orders {
		entry := HistoryEntry{Order: *o}
		if p, ok := l.products[o.ProductID]; ok {
			entry.ProductName = p.Name
		}
		history.Orders = append(history.Orders, entry)

		if o.Status.Billable() {
			history.TotalSpent = history.TotalSpent.Add(o.Total)
		}
	}
	history.TotalSpent = history.TotalSpent.Round(2)

	return history, nil
}
