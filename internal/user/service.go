// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

// Store is the slice of the ledger the user endpoints need.
type Store interface {
	CreateUser(in ledger.NewUser) (ledger.User, error)
	GetUser(id ledger.UserID) (ledger.User, error)
	ListUsers(f ledger.UserFilter) []ledger.User
	UpdateUser(id ledger.UserID, upd ledger.UserUpdate) (ledger.User, error)
	DeleteUser(id ledger.UserID) (ledger.DeletedUser, error)
}

type Service struct {
	store     Store
	publisher events.Publisher
}

func NewService(store Store, publisher events.Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (ledger.User, error) {
	name, err := trimRequired("name", req.Name)
	if err != nil {
		return ledger.User{}, err
	}

	return s.store.CreateUser(ledger.NewUser{
		Name:  name,
		Email: strings.TrimSpace(req.Email),
		Role:  ledger.Role(req.Role),
	})
}

func (s *Service) Get(_ context.Context, id ledger.UserID) (ledger.User, error) {
	return s.store.GetUser(id)
}

func (s *Service) List(_ context.Context, role string) []ledger.User {
	return s.store.ListUsers(ledger.UserFilter{Role: ledger.Role(role)})
}

func (s *Service) Update(
	_ context.Context,
	id ledger.UserID,
	req UpdateUserRequest,
) (ledger.User, error) {
	if req.Name != nil {
		name, err := trimRequired("name", *req.Name)
		if err != nil {
			return ledger.User{}, err
		}
		req.Name = &name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
	}

	return s.store.UpdateUser(id, req.toUpdate())
}

func trimRequired(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", core.ValidationError(field + " must not be blank")
	}
	return trimmed, nil
}

// Delete removes the user and announces every order the cascade cancelled.
func (s *Service) Delete(
	ctx context.Context,
	id ledger.UserID,
) (ledger.DeletedUser, error) {
	ctx, span := core.StartSpan(ctx, "user.delete",
		attribute.Int64("user.id", int64(id)),
	)
	defer span.End()

	deleted, err := s.store.DeleteUser(id)
	if err != nil {
		core.SetSpanError(ctx, err)
		return ledger.DeletedUser{}, err
	}

	core.AddSpanEvent(ctx, "orders.cancelled",
		attribute.Int("count", len(deleted.Cancelled)),
	)

	if len(deleted.Cancelled) > 0 {
		slog.InfoContext(ctx, "user deletion cancelled pending orders",
			"user_id", id,
			"orders", deleted.CancelledIDs(),
		)
	}

	for _, ev := range events.NewCascadeCancellations(deleted) {
		events.Emit(ctx, s.publisher, events.RoutingOrderStatusChanged, ev)
	}

	return deleted, nil
}
