package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByEmail(ctx context.Context, email, role string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND type = ? AND is_deleted = ?", email, role, false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) GetActiveUserByID(ctx context.Context, id uuid.UUID, role string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND type = ? AND status = ? AND is_deleted = ?", id, role, entity.UserActive, false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) CreateUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *GormAuthRepo) UpdateUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
