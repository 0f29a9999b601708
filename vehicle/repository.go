package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// Repository specifies vehicle related database operations. All reads
// exclude soft-deleted rows unless the method name says otherwise.
type Repository interface {
	// InTransaction runs fn inside one transaction; repository and
	// document writes made with the context fn receives join it and roll
	// back together.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	ListVehicles(ctx context.Context) ([]entity.Vehicle, error)
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	// GetVehicleByIDUnscoped bypasses the is_deleted filter; admin and
	// audit paths only.
	GetVehicleByIDUnscoped(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	// CreateVehicleWithOwner inserts the vehicle and its active owner link
	// in one transaction.
	CreateVehicleWithOwner(ctx context.Context, v *entity.Vehicle, ownerID uuid.UUID) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error)
	// SoftDeleteVehicle marks the vehicle and the caller's owner link
	// deleted in one transaction.
	SoftDeleteVehicle(ctx context.Context, vehicleID, ownerID uuid.UUID) error
	// IsOwner reports whether an active, non-deleted owner link ties the
	// user to the vehicle.
	IsOwner(ctx context.Context, ownerID, vehicleID uuid.UUID) (bool, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]OwnedVehicle, error)
}
