package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	challanpkg "github.com/atmaprakash0998/rental-app-backend/challan"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

type GormChallanRepo struct {
	db *gorm.DB
}

func NewGormChallanRepo(db *gorm.DB) challanpkg.Repository {
	return &GormChallanRepo{db: db}
}

func (r *GormChallanRepo) CreateChallan(ctx context.Context, c *entity.Challan) (*entity.Challan, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormChallanRepo) ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Challan, error) {
	var challans []entity.Challan
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND is_deleted = ?", entityType, entityID, false).
		Order("added_date DESC").
		Find(&challans).Error
	if err != nil {
		return nil, err
	}
	return challans, nil
}

func (r *GormChallanRepo) GetByID(ctx context.Context, id uint) (*entity.Challan, error) {
	var c entity.Challan
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormChallanRepo) UpdateChallan(ctx context.Context, c *entity.Challan) (*entity.Challan, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}
