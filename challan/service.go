package challan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// ErrChallanNotFound means the challan id did not match a live row.
var ErrChallanNotFound = errors.New("challan not found")

// CreateRequest carries a new fine against a user or a vehicle.
type CreateRequest struct {
	EntityType    entity.EntityType
	EntityID      uuid.UUID
	ChallanNumber *string
	AuthorityName entity.ChallanAuthority
	Location      *string
	Amount        *float64
}

// Service keeps challan records.
type Service interface {
	Create(ctx context.Context, req CreateRequest, addedBy string) (*entity.Challan, error)
	ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Challan, error)
	MarkPaid(ctx context.Context, id uint, modifiedBy string) (*entity.Challan, error)
}
