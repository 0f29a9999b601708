package vehicle

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

var (
	// ErrVehicleNotFound means the vehicle id did not match a live row.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrNotOwner means the caller holds no active owner link for the
	// vehicle.
	ErrNotOwner = errors.New("not the owner of this vehicle")
)

// CreateVehicleRequest carries the data to list a new vehicle. Documents
// are ingested together with the vehicle.
type CreateVehicleRequest struct {
	Name               string
	Type               entity.VehicleType
	AvailabilityStatus entity.AvailabilityStatus
	RentalDuration     entity.RentalDuration
	RentalPrice        *float64
	Documents          []document.Data
}

// UpdateVehicleRequest is a partial vehicle mutation; nil fields are left
// alone. A non-nil Documents slice replaces the vehicle's whole document
// set.
type UpdateVehicleRequest struct {
	Name               *string
	Type               *entity.VehicleType
	AvailabilityStatus *entity.AvailabilityStatus
	RentalDuration     *entity.RentalDuration
	RentalPrice        *float64
	Documents          []document.Data
}

// OwnedVehicle is a joined user_vehicles×vehicles row for owner listings.
type OwnedVehicle struct {
	UserVehicleID      uint                      `json:"user_vehicle_id"`
	OwnershipType      entity.OwnershipType      `json:"ownership_type"`
	VehicleID          uuid.UUID                 `json:"vehicle_id"`
	VehicleName        string                    `json:"vehicle_name"`
	VehicleType        entity.VehicleType        `json:"vehicle_type"`
	RentalDuration     entity.RentalDuration     `json:"rental_duration"`
	RentalPrice        *float64                  `json:"rental_price"`
	AvailabilityStatus entity.AvailabilityStatus `json:"availability_status"`
}

// Notifier pushes events to connected owners; the realtime hub implements
// it. A nil notifier is fine.
type Notifier interface {
	NotifyOwner(ownerID string, event string, payload any) error
}

// Service exposes vehicle business operations. Ownership-scoped mutations
// verify the caller's active owner link per call.
type Service interface {
	ListVehicles(ctx context.Context) ([]entity.Vehicle, error)
	// GetVehicle looks up one vehicle. includeDeleted bypasses the
	// soft-delete filter for audit reads.
	GetVehicle(ctx context.Context, vehicleID uuid.UUID, includeDeleted bool) (*entity.Vehicle, error)
	ListOwnerVehicles(ctx context.Context, ownerID uuid.UUID) ([]OwnedVehicle, error)
	CreateVehicle(ctx context.Context, ownerID uuid.UUID, req CreateVehicleRequest) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID, req UpdateVehicleRequest) (*entity.Vehicle, error)
	DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error
}
