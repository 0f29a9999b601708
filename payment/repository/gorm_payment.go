package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	paymentpkg "github.com/atmaprakash0998/rental-app-backend/payment"
)

type GormPaymentRepo struct {
	db *gorm.DB
}

func NewGormPaymentRepo(db *gorm.DB) paymentpkg.Repository {
	return &GormPaymentRepo{db: db}
}

func (r *GormPaymentRepo) CreateWithLink(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if link == nil {
			return nil
		}
		link.PaymentID = p.ID
		return tx.Create(link).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPaymentRepo) ListByParty(ctx context.Context, partyID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("(source_id = ? OR destination_id = ?) AND is_deleted = ?", partyID, partyID, false).
		Order("added_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormPaymentRepo) GetByID(ctx context.Context, id uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepo) UpdatePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
