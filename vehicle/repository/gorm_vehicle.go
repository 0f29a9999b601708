package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/database"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	vehiclepkg "github.com/atmaprakash0998/rental-app-backend/vehicle"
)

type GormVehicleRepo struct {
	db *gorm.DB
}

func NewGormVehicleRepo(db *gorm.DB) vehiclepkg.Repository {
	return &GormVehicleRepo{db: db}
}

// InTransaction runs fn inside one transaction. Repository calls made with
// the context fn receives join that transaction.
func (r *GormVehicleRepo) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.FromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return fn(database.WithTx(ctx, tx))
	})
}

func (r *GormVehicleRepo) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	if err := database.FromContext(ctx, r.db).Where("is_deleted = ?", false).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *GormVehicleRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := database.FromContext(ctx, r.db).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormVehicleRepo) GetVehicleByIDUnscoped(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := database.FromContext(ctx, r.db).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *GormVehicleRepo) CreateVehicleWithOwner(ctx context.Context, v *entity.Vehicle, ownerID uuid.UUID) (*entity.Vehicle, error) {
	err := database.FromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		now := time.Now()
		link := entity.UserVehicle{
			UserID:             ownerID,
			VehicleID:          v.ID,
			OwnershipType:      entity.OwnershipOwner,
			OwnershipStatus:    entity.OwnershipActive,
			OwnershipStartDate: &now,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *GormVehicleRepo) UpdateVehicle(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	if err := database.FromContext(ctx, r.db).Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func (r *GormVehicleRepo) SoftDeleteVehicle(ctx context.Context, vehicleID, ownerID uuid.UUID) error {
	return database.FromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&entity.Vehicle{}).Where("id = ?", vehicleID).
			Updates(map[string]interface{}{
				"is_deleted":    true,
				"modified_date": now,
				"modified_by":   ownerID.String(),
			}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.UserVehicle{}).
			Where("user_id = ? AND vehicle_id = ? AND ownership_type = ?", ownerID, vehicleID, entity.OwnershipOwner).
			Update("is_deleted", true).Error
	})
}

func (r *GormVehicleRepo) IsOwner(ctx context.Context, ownerID, vehicleID uuid.UUID) (bool, error) {
	var count int64
	err := database.FromContext(ctx, r.db).Model(&entity.UserVehicle{}).
		Where("user_id = ? AND vehicle_id = ? AND ownership_type = ? AND ownership_status = ? AND is_deleted = ?",
			ownerID, vehicleID, entity.OwnershipOwner, entity.OwnershipActive, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormVehicleRepo) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]vehiclepkg.OwnedVehicle, error) {
	var rows []vehiclepkg.OwnedVehicle
	err := database.FromContext(ctx, r.db).Model(&entity.UserVehicle{}).
		Select(`user_vehicles.id AS user_vehicle_id,
			user_vehicles.ownership_type,
			vehicles.id AS vehicle_id,
			vehicles.name AS vehicle_name,
			vehicles.type AS vehicle_type,
			vehicles.rental_duration,
			vehicles.rental_price,
			vehicles.availability_status`).
		Joins("JOIN vehicles ON user_vehicles.vehicle_id = vehicles.id").
		Where(`user_vehicles.user_id = ? AND user_vehicles.ownership_type = ?
			AND user_vehicles.ownership_status = ? AND user_vehicles.is_deleted = ?
			AND vehicles.is_deleted = ?`,
			ownerID, entity.OwnershipOwner, entity.OwnershipActive, false, false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
