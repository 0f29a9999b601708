package challan

import (
	"context"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// Repository specifies challan related database operations.
type Repository interface {
	CreateChallan(ctx context.Context, c *entity.Challan) (*entity.Challan, error)
	ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Challan, error)
	GetByID(ctx context.Context, id uint) (*entity.Challan, error)
	UpdateChallan(ctx context.Context, c *entity.Challan) (*entity.Challan, error)
}
