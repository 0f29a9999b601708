package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

var (
	// ErrEmailTaken means the email already has a non-deleted account for
	// the requested role.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrAccountNotActive means the credential matched but the account
	// status is inactive or pending.
	ErrAccountNotActive = errors.New("user account is not active")
	// ErrUserNotFound means the user id did not resolve to a live account.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword means the current password given for a password
	// change did not verify.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// RegisterRequest carries the data required to create an account.
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Type     permission.Role
}

// ProfileUpdate is a partial profile mutation; nil fields are left alone.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	SubType        *string
	AdditionalData datatypes.JSON
}

// LoginResult is what a successful login hands back to the transport
// layer: the signed token, the matched user, and (for non-base roles) the
// role's permission list.
type LoginResult struct {
	AccessToken string
	User        *entity.User
	Permissions []permission.Permission
}

// Service provides registration, login and profile operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string, role permission.Role) (*LoginResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, role string, upd ProfileUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, role string, current, newPassword string) error
}
