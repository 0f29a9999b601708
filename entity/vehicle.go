package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VehicleType enumerates rentable vehicle categories.
type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleCar     VehicleType = "car"
	VehicleScooter VehicleType = "scooter"
	VehicleScooty  VehicleType = "scooty"
	VehicleVan     VehicleType = "van"
)

// AvailabilityStatus tracks whether a vehicle can currently be rented.
type AvailabilityStatus string

const (
	VehicleAvailable   AvailabilityStatus = "available"
	VehicleBooked      AvailabilityStatus = "booked"
	VehicleMaintenance AvailabilityStatus = "maintenance"
)

// RentalDuration is the cadence a vehicle's rental price applies to.
type RentalDuration string

const (
	RentHour  RentalDuration = "hour"
	RentDay   RentalDuration = "day"
	RentWeek  RentalDuration = "week"
	RentMonth RentalDuration = "month"
)

// Vehicle is a rentable asset. Ownership is carried by UserVehicle links,
// not by a column here.
type Vehicle struct {
	ID                 uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	Name               string             `json:"name" gorm:"type:varchar(100);not null"`
	Type               VehicleType        `json:"type" gorm:"type:varchar(20);index;not null"`
	SubType            *string            `json:"sub_type,omitempty" gorm:"type:varchar(100)"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" gorm:"type:varchar(20);index;not null;default:'available'"`
	RentalDuration     RentalDuration     `json:"rental_duration" gorm:"type:varchar(10);not null"`
	RentalPrice        *float64           `json:"rental_price,omitempty" gorm:"type:decimal(10,2)"`
	AdditionalData     datatypes.JSON     `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted          bool               `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate          time.Time          `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate       *time.Time         `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy            *string            `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy         *string            `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// OwnershipType distinguishes owners from renters on a UserVehicle link.
type OwnershipType string

const (
	OwnershipOwner  OwnershipType = "owner"
	OwnershipRenter OwnershipType = "renter"
)

// OwnershipStatus is the lifecycle of a UserVehicle link.
type OwnershipStatus string

const (
	OwnershipActive   OwnershipStatus = "active"
	OwnershipInactive OwnershipStatus = "inactive"
	OwnershipSold     OwnershipStatus = "sold"
)

// UserVehicle ties a User to a Vehicle with an ownership role and a date
// range. At most one active owner link should exist per vehicle; this is
// checked in the service layer, not enforced by the database.
type UserVehicle struct {
	ID                 uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID             uuid.UUID       `json:"user_id" gorm:"type:char(36);index;not null"`
	VehicleID          uuid.UUID       `json:"vehicle_id" gorm:"type:char(36);index;not null"`
	OwnershipType      OwnershipType   `json:"ownership_type" gorm:"type:varchar(10);not null;default:'owner'"`
	OwnershipStartDate *time.Time      `json:"ownership_start_date,omitempty"`
	OwnershipEndDate   *time.Time      `json:"ownership_end_date,omitempty"`
	OwnershipStatus    OwnershipStatus `json:"ownership_status" gorm:"type:varchar(10);index;not null;default:'active'"`
	TotalPrice         *float64        `json:"total_price,omitempty" gorm:"type:decimal(10,2)"`
	AdditionalData     datatypes.JSON  `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted          bool            `json:"is_deleted" gorm:"index;not null;default:false"`
}
