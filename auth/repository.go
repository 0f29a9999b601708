package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// UserResolver is the slice of the repository the request gate needs to
// re-resolve a token's user id against the database.
type UserResolver interface {
	// GetActiveUserByID returns the user only if it exists with the given
	// role, is active and is not soft-deleted.
	GetActiveUserByID(ctx context.Context, id uuid.UUID, role string) (*entity.User, error)
}

// Repository exposes the user reads and writes behind authentication.
type Repository interface {
	UserResolver

	// GetUserByEmail looks up a non-deleted user of the given role. Status
	// is not filtered here; the service decides what inactive means.
	GetUserByEmail(ctx context.Context, email, role string) (*entity.User, error)
	CreateUser(ctx context.Context, u *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, u *entity.User) (*entity.User, error)
}
