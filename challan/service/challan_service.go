package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	challanpkg "github.com/atmaprakash0998/rental-app-backend/challan"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

type challanService struct {
	repo challanpkg.Repository
}

func NewChallanService(repo challanpkg.Repository) challanpkg.Service {
	return &challanService{repo: repo}
}

func (s *challanService) Create(ctx context.Context, req challanpkg.CreateRequest, addedBy string) (*entity.Challan, error) {
	c := &entity.Challan{
		EntityType:    req.EntityType,
		EntityID:      req.EntityID,
		ChallanNumber: req.ChallanNumber,
		AuthorityName: req.AuthorityName,
		Location:      req.Location,
		Amount:        req.Amount,
		Status:        entity.ChallanPending,
		AddedBy:       &addedBy,
	}
	return s.repo.CreateChallan(ctx, c)
}

func (s *challanService) ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Challan, error) {
	return s.repo.ListForEntity(ctx, entityType, entityID)
}

func (s *challanService) MarkPaid(ctx context.Context, id uint, modifiedBy string) (*entity.Challan, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, challanpkg.ErrChallanNotFound
		}
		return nil, err
	}
	now := time.Now()
	c.Status = entity.ChallanPaid
	c.ModifiedDate = &now
	c.ModifiedBy = &modifiedBy
	return s.repo.UpdateChallan(ctx, c)
}
