// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

// CreateUserRequest fields are trimmed before storage. Emails are unique
// regardless of letter case, so ALICE@example.com collides with
// alice@example.com.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role"  validate:"omitempty,oneof=admin user"`
}

// UpdateUserRequest applies only the fields present. Name and email are
// trimmed, and the email must not match another user's ignoring case.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role  *string `json:"role,omitempty"  validate:"omitempty,oneof=admin user"`
}

func (r UpdateUserRequest) toUpdate() ledger.UserUpdate {
	upd := ledger.UserUpdate{Name: r.Name, Email: r.Email}
	if r.Role != nil {
		role := ledger.Role(*r.Role)
		upd.Role = &role
	}
	return upd
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

type DeleteUserResponse struct {
	DeletedUserID   int64   `json:"deleted_user_id"`
	CancelledOrders []int64 `json:"cancelled_orders"`
}

func ToUserResponse(u ledger.User) UserResponse {
	return UserResponse{
		ID:        int64(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []ledger.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses
}

func ToDeleteUserResponse(d ledger.DeletedUser) DeleteUserResponse {
	ids := make([]int64, 0, len(d.Cancelled))
	for _, id := range d.CancelledIDs() {
		ids = append(ids, int64(id))
	}
	return DeleteUserResponse{
		DeletedUserID:   int64(d.UserID),
		CancelledOrders: ids,
	}
}
