// AngelaMos | 2026
// user.go

package ledger

import (
	"fmt"
	"strings"
	"time"
)

type UserID int64

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID        UserID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type NewUser struct {
	Name  string
	Email string
	Role  Role
}

// UserUpdate changes only the fields that are non-nil.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *Role
}

type UserFilter struct {
	Role Role
}

// DeletedUser describes a user deletion and the pending orders it cancelled.
type DeletedUser struct {
	UserID    UserID
	Cancelled []StatusChange
}

func (d DeletedUser) CancelledIDs() []OrderID {
	ids := make([]OrderID, 0, len(d.Cancelled))
	for _, c := range d.Cancelled {
		ids = append(ids, c.Order.ID)
	}
	return ids
}

func (l *Ledger) CreateUser(in NewUser) (User, error) {
	if in.Role == "" {
		in.Role = RoleUser
	}
	if err := validateRole(in.Role); err != nil {
		return User{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.emailTaken(in.Email, 0) {
		return User{}, &DuplicateEmailError{Email: in.Email}
	}

	u := &User{
		ID:        l.nextUserID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: l.now(),
	}
	l.users[u.ID] = u

	return *u, nil
}

func (l *Ledger) GetUser(id UserID) (User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[id]
	if !ok {
		return User{}, userNotFound(id)
	}
	return *u, nil
}

func (l *Ledger) ListUsers(f UserFilter) []User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := inIDOrder(l.users, func(u *User) bool {
		return f.Role == "" || u.Role == f.Role
	})
	return copyUsers(matches)
}

func (l *Ledger) UpdateUser(id UserID, upd UserUpdate) (User, error) {
	if upd.Role != nil {
		if err := validateRole(*upd.Role); err != nil {
			return User{}, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[id]
	if !ok {
		return User{}, userNotFound(id)
	}

	if upd.Email != nil && l.emailTaken(*upd.Email, id) {
		return User{}, &DuplicateEmailError{Email: *upd.Email}
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}

	return *u, nil
}

// DeleteUser removes the user and cancels each of its pending orders,
// returning their stock to the products. Orders in any other status keep
// pointing at the removed user.
func (l *Ledger) DeleteUser(id UserID) (DeletedUser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[id]; !ok {
		return DeletedUser{}, userNotFound(id)
	}

	pending := inIDOrder(l.orders, func(o *Order) bool {
		return o.UserID == id && o.Status == StatusPending
	})
	if err := l.checkRestore(pending...); err != nil {
		return DeletedUser{}, err
	}

	delete(l.users, id)

	out := DeletedUser{UserID: id, Cancelled: make([]StatusChange, 0, len(pending))}
	for _, o := range pending {
		previous := o.Status
		restocked := l.applyTransition(o, StatusCancelled)
		out.Cancelled = append(out.Cancelled, StatusChange{
			Order:     *o,
			Previous:  previous,
			Restocked: restocked,
		})
	}

	return out, nil
}

// emailTaken compares case-insensitively and ignores the user being updated.
func (l *Ledger) emailTaken(email string, except UserID) bool {
	for _, u := range l.users {
		if u.ID != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func validateRole(r Role) error {
	if !r.Valid() {
		return &ValidationError{
			Field:   "role",
			Message: fmt.Sprintf("role must be 'admin' or 'user', got %q", r),
		}
	}
	return nil
}

func copyUsers(in []*User) []User {
	out := make([]User, 0, len(in))
	for _, u := range in {
		out = append(out, *u)
	}
	return out
}
