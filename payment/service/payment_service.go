package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	paymentpkg "github.com/atmaprakash0998/rental-app-backend/payment"
)

type paymentService struct {
	repo paymentpkg.Repository
}

func NewPaymentService(repo paymentpkg.Repository) paymentpkg.Service {
	return &paymentService{repo: repo}
}

func (s *paymentService) RecordPayment(ctx context.Context, req paymentpkg.RecordRequest, addedBy string) (*entity.Payment, error) {
	status := req.Status
	if status == "" {
		status = entity.PaymentPending
	}
	p := &entity.Payment{
		Amount:                      req.Amount,
		Type:                        req.Type,
		SubType:                     req.SubType,
		Channel:                     req.Channel,
		Status:                      status,
		TransactionID:               req.TransactionID,
		ExternalSystemName:          req.ExternalSystemName,
		ExternalSystemTransactionID: req.ExternalSystemTransactionID,
		SourceType:                  req.SourceType,
		SourceID:                    req.SourceID,
		DestinationType:             req.DestinationType,
		DestinationID:               req.DestinationID,
		AddedBy:                     &addedBy,
	}
	var link *entity.UserPayment
	if req.RentID != nil {
		link = &entity.UserPayment{
			EntityType: entity.UserPaymentRent,
			EntityID:   *req.RentID,
		}
	}
	return s.repo.CreateWithLink(ctx, p, link)
}

func (s *paymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	return s.repo.ListByParty(ctx, userID.String())
}

func (s *paymentService) UpdateStatus(ctx context.Context, id uint, status entity.PaymentStatus, modifiedBy string) (*entity.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentpkg.ErrPaymentNotFound
		}
		return nil, err
	}
	now := time.Now()
	p.Status = status
	p.ModifiedDate = &now
	p.ModifiedBy = &modifiedBy
	return s.repo.UpdatePayment(ctx, p)
}
