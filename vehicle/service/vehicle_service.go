package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	vehiclepkg "github.com/atmaprakash0998/rental-app-backend/vehicle"
)

type vehicleService struct {
	repo     vehiclepkg.Repository
	docs     document.Service
	notifier vehiclepkg.Notifier
}

// NewVehicleService constructs a vehicle Service. Documents attached to
// create/update requests are ingested through docs. notifier receives
// availability changes and may be nil.
func NewVehicleService(repo vehiclepkg.Repository, docs document.Service, notifier vehiclepkg.Notifier) vehiclepkg.Service {
	return &vehicleService{repo: repo, docs: docs, notifier: notifier}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *vehicleService) GetVehicle(ctx context.Context, vehicleID uuid.UUID, includeDeleted bool) (*entity.Vehicle, error) {
	var (
		v   *entity.Vehicle
		err error
	)
	if includeDeleted {
		v, err = s.repo.GetVehicleByIDUnscoped(ctx, vehicleID)
	} else {
		v, err = s.repo.GetVehicleByID(ctx, vehicleID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vehiclepkg.ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) ListOwnerVehicles(ctx context.Context, ownerID uuid.UUID) ([]vehiclepkg.OwnedVehicle, error) {
	return s.repo.ListOwned(ctx, ownerID)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, ownerID uuid.UUID, req vehiclepkg.CreateVehicleRequest) (*entity.Vehicle, error) {
	by := ownerID.String()
	v := &entity.Vehicle{
		Name:               req.Name,
		Type:               req.Type,
		AvailabilityStatus: req.AvailabilityStatus,
		RentalDuration:     req.RentalDuration,
		RentalPrice:        req.RentalPrice,
		AddedBy:            &by,
	}
	// Vehicle, owner link and document rows commit or roll back together.
	err := s.repo.InTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.CreateVehicleWithOwner(ctx, v, ownerID); err != nil {
			return err
		}
		if len(req.Documents) > 0 {
			if _, err := s.docs.CreateForEntity(ctx, entity.EntityVehicle, v.ID, req.Documents, by); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("owner_id", ownerID).Error("vehicle creation failed")
		return nil, err
	}
	return v, nil
}

// requireOwned loads the vehicle and verifies the caller's active owner
// link. Check-then-act: a concurrent ownership change between this check
// and the following write is not guarded against.
func (s *vehicleService) requireOwned(ctx context.Context, ownerID, vehicleID uuid.UUID) (*entity.Vehicle, error) {
	v, err := s.repo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vehiclepkg.ErrVehicleNotFound
		}
		return nil, err
	}
	owned, err := s.repo.IsOwner(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, vehiclepkg.ErrNotOwner
	}
	return v, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.Vehicle, error) {
	v, err := s.requireOwned(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	availabilityChanged := false
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Type != nil {
		v.Type = *req.Type
	}
	if req.RentalDuration != nil {
		v.RentalDuration = *req.RentalDuration
	}
	if req.RentalPrice != nil {
		v.RentalPrice = req.RentalPrice
	}
	if req.AvailabilityStatus != nil && *req.AvailabilityStatus != v.AvailabilityStatus {
		v.AvailabilityStatus = *req.AvailabilityStatus
		availabilityChanged = true
	}

	by := ownerID.String()
	now := time.Now()
	v.ModifiedDate = &now
	v.ModifiedBy = &by

	// Document replacement and the vehicle row share one transaction so a
	// failed save does not leave the document set swapped.
	var updated *entity.Vehicle
	err = s.repo.InTransaction(ctx, func(ctx context.Context) error {
		if req.Documents != nil {
			if _, err := s.docs.ReplaceForEntity(ctx, entity.EntityVehicle, vehicleID, req.Documents, by); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.repo.UpdateVehicle(ctx, v)
		return err
	})
	if err != nil {
		return nil, err
	}

	if availabilityChanged && s.notifier != nil {
		_ = s.notifier.NotifyOwner(by, "vehicle.availability", map[string]any{
			"vehicle_id": updated.ID,
			"status":     updated.AvailabilityStatus,
		})
	}
	return updated, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error {
	if _, err := s.requireOwned(ctx, ownerID, vehicleID); err != nil {
		return err
	}
	return s.repo.SoftDeleteVehicle(ctx, vehicleID, ownerID)
}
