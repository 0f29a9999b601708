package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	settingpkg "github.com/atmaprakash0998/rental-app-backend/setting"
)

type GormSettingRepo struct {
	db *gorm.DB
}

func NewGormSettingRepo(db *gorm.DB) settingpkg.Repository {
	return &GormSettingRepo{db: db}
}

func (r *GormSettingRepo) GetByKeys(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
	var rows []settingpkg.KV
	err := r.db.WithContext(ctx).Model(&entity.Setting{}).
		Select("`key`", "value").
		Where("`key` IN ? AND is_deleted = ?", keys, false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormSettingRepo) GetAll(ctx context.Context) ([]settingpkg.KV, error) {
	var rows []settingpkg.KV
	err := r.db.WithContext(ctx).Model(&entity.Setting{}).
		Select("`key`", "value").
		Where("is_deleted = ?", false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormSettingRepo) CreateSetting(ctx context.Context, s *entity.Setting) (*entity.Setting, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSettingRepo) GetByID(ctx context.Context, id uint) (*entity.Setting, error) {
	var s entity.Setting
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSettingRepo) UpdateSetting(ctx context.Context, s *entity.Setting) (*entity.Setting, error) {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
