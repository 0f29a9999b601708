package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	settingpkg "github.com/atmaprakash0998/rental-app-backend/setting"
)

type settingService struct {
	repo  settingpkg.Repository
	cache *settingpkg.Cache
}

// NewSettingService constructs a settings Service. cache may be nil.
func NewSettingService(repo settingpkg.Repository, cache *settingpkg.Cache) settingpkg.Service {
	return &settingService{repo: repo, cache: cache}
}

func (s *settingService) GetByKeys(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
	if len(keys) == 0 {
		return nil, settingpkg.ErrNoKeys
	}

	result := make([]settingpkg.KV, 0, len(keys))
	missing := make([]string, 0, len(keys))
	for _, key := range keys {
		if value, ok := s.cache.Get(ctx, key); ok {
			result = append(result, settingpkg.KV{Key: key, Value: value})
			continue
		}
		missing = append(missing, key)
	}
	if len(missing) == 0 {
		return result, nil
	}

	fromDB, err := s.repo.GetByKeys(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, kv := range fromDB {
		s.cache.Set(ctx, kv.Key, kv.Value)
	}
	return append(result, fromDB...), nil
}

func (s *settingService) GetAll(ctx context.Context) ([]settingpkg.KV, error) {
	return s.repo.GetAll(ctx)
}

func (s *settingService) Create(ctx context.Context, req settingpkg.CreateRequest, addedBy string) (*entity.Setting, error) {
	row := &entity.Setting{
		Key:            req.Key,
		Value:          req.Value,
		AdditionalData: req.AdditionalData,
		AddedBy:        &addedBy,
	}
	created, err := s.repo.CreateSetting(ctx, row)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, created.Key)
	return created, nil
}

func (s *settingService) Update(ctx context.Context, id uint, req settingpkg.UpdateRequest, modifiedBy string) (*entity.Setting, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settingpkg.ErrSettingNotFound
		}
		return nil, err
	}

	oldKey := row.Key
	if req.Key != nil {
		row.Key = *req.Key
	}
	if req.Value != nil {
		row.Value = req.Value
	}
	if req.AdditionalData != nil {
		row.AdditionalData = req.AdditionalData
	}
	now := time.Now()
	row.ModifiedDate = &now
	row.ModifiedBy = &modifiedBy

	updated, err := s.repo.UpdateSetting(ctx, row)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, oldKey)
	if updated.Key != oldKey {
		s.cache.Invalidate(ctx, updated.Key)
	}
	return updated, nil
}

func (s *settingService) Delete(ctx context.Context, id uint, modifiedBy string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settingpkg.ErrSettingNotFound
		}
		return err
	}
	now := time.Now()
	row.IsDeleted = true
	row.ModifiedDate = &now
	row.ModifiedBy = &modifiedBy
	if _, err := s.repo.UpdateSetting(ctx, row); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, row.Key)
	return nil
}
