// AngelaMos | 2026
// ledger.go

// Package ledger is the in-memory authority for users, products, orders and
// notes. Every operation that checks an invariant and then mutates state does
// both under one write lock, so callers may use a Ledger concurrently.
package ledger

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"
)

const DefaultLowStockThreshold = 10

// Counters holds the last identifier handed out per collection.
type Counters struct {
	Users    UserID
	Products ProductID
	Orders   OrderID
	Notes    NoteID
}

// Counts is the number of live records per collection.
type Counts struct {
	Users    int
	Products int
	Orders   int
	Notes    int
}

type Ledger struct {
	mu sync.RWMutex

	users    map[UserID]*User
	products map[ProductID]*Product
	orders   map[OrderID]*Order
	notes    map[NoteID]*Note
	counters Counters

	now               func() time.Time
	lowStockThreshold int
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func WithLowStockThreshold(n int) Option {
	return func(l *Ledger) {
		l.lowStockThreshold = n
	}
}

// WithEmptyStore starts the ledger without seed data and with all counters at zero.
func WithEmptyStore() Option {
	return func(l *Ledger) {
		l.clear()
	}
}

// New returns a ledger loaded with the seed data set unless WithEmptyStore is given.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:               time.Now,
		lowStockThreshold: DefaultLowStockThreshold,
	}
	l.loadSeed()

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// ResetToSeed discards all state and restores the fixed seed data set.
func (l *Ledger) ResetToSeed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadSeed()
}

func (l *Ledger) Counters() Counters {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.counters
}

func (l *Ledger) Counts() Counts {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return Counts{
		Users:    len(l.users),
		Products: len(l.products),
		Orders:   len(l.orders),
		Notes:    len(l.notes),
	}
}

func (l *Ledger) LowStockThreshold() int {
	return l.lowStockThreshold
}

// Ping satisfies the health checker contract; an in-memory ledger is always reachable.
func (l *Ledger) Ping(_ context.Context) error {
	return nil
}

func (l *Ledger) clear() {
	l.users = make(map[UserID]*User)
	l.products = make(map[ProductID]*Product)
	l.orders = make(map[OrderID]*Order)
	l.notes = make(map[NoteID]*Note)
	l.counters = Counters{}
}

func (l *Ledger) nextUserID() UserID {
	l.counters.Users++
	return l.counters.Users
}

func (l *Ledger) nextProductID() ProductID {
	l.counters.Products++
	return l.counters.Products
}

func (l *Ledger) nextOrderID() OrderID {
	l.counters.Orders++
	return l.counters.Orders
}

func (l *Ledger) nextNoteID() NoteID {
	l.counters.Notes++
	return l.counters.Notes
}

// inIDOrder walks m in ascending key order, which is also creation order.
func inIDOrder[K cmp.Ordered, V any](m map[K]*V, keep func(*V) bool) []*V {
	out := make([]*V, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}
