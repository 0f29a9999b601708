package setting

import (
	"context"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// Repository specifies settings database operations.
type Repository interface {
	GetByKeys(ctx context.Context, keys []string) ([]KV, error)
	GetAll(ctx context.Context) ([]KV, error)
	CreateSetting(ctx context.Context, s *entity.Setting) (*entity.Setting, error)
	GetByID(ctx context.Context, id uint) (*entity.Setting, error)
	UpdateSetting(ctx context.Context, s *entity.Setting) (*entity.Setting, error)
}
