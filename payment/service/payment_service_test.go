package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	paymentpkg "github.com/atmaprakash0998/rental-app-backend/payment"
)

type mockPaymentRepo struct {
	createWithLink func(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error)
	listByParty    func(ctx context.Context, partyID string) ([]entity.Payment, error)
	getByID        func(ctx context.Context, id uint) (*entity.Payment, error)
	updatePayment  func(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
}

func (m *mockPaymentRepo) CreateWithLink(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error) {
	return m.createWithLink(ctx, p, link)
}

func (m *mockPaymentRepo) ListByParty(ctx context.Context, partyID string) ([]entity.Payment, error) {
	return m.listByParty(ctx, partyID)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uint) (*entity.Payment, error) {
	return m.getByID(ctx, id)
}

func (m *mockPaymentRepo) UpdatePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	return m.updatePayment(ctx, p)
}

func TestRecordPaymentDefaultsToPending(t *testing.T) {
	var seen *entity.Payment
	repo := &mockPaymentRepo{
		createWithLink: func(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error) {
			seen = p
			assert.Nil(t, link)
			return p, nil
		},
	}
	svc := NewPaymentService(repo)

	amount := 499.0
	_, err := svc.RecordPayment(context.Background(), paymentpkg.RecordRequest{
		Amount:          &amount,
		Type:            entity.PaymentDebit,
		SubType:         entity.PaymentPurchase,
		Channel:         entity.ChannelUPI,
		SourceType:      entity.PartyUser,
		SourceID:        uuid.NewString(),
		DestinationType: entity.PartyCompany,
		DestinationID:   uuid.NewString(),
	}, "caller-id")
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, entity.PaymentPending, seen.Status)
	require.NotNil(t, seen.AddedBy)
	assert.Equal(t, "caller-id", *seen.AddedBy)
}

func TestRecordPaymentWithRentLink(t *testing.T) {
	rentID := uuid.New()
	repo := &mockPaymentRepo{
		createWithLink: func(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error) {
			require.NotNil(t, link)
			assert.Equal(t, entity.UserPaymentRent, link.EntityType)
			assert.Equal(t, rentID, link.EntityID)
			return p, nil
		},
	}
	svc := NewPaymentService(repo)

	_, err := svc.RecordPayment(context.Background(), paymentpkg.RecordRequest{
		Type:            entity.PaymentDebit,
		SubType:         entity.PaymentDeposit,
		Channel:         entity.ChannelCash,
		Status:          entity.PaymentSuccess,
		SourceType:      entity.PartyUser,
		SourceID:        uuid.NewString(),
		DestinationType: entity.PartyCompany,
		DestinationID:   uuid.NewString(),
		RentID:          &rentID,
	}, "caller-id")
	require.NoError(t, err)
}

func TestListForUser(t *testing.T) {
	userID := uuid.New()
	repo := &mockPaymentRepo{
		listByParty: func(ctx context.Context, partyID string) ([]entity.Payment, error) {
			assert.Equal(t, userID.String(), partyID)
			return []entity.Payment{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := NewPaymentService(repo)

	payments, err := svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestUpdateStatus(t *testing.T) {
	repo := &mockPaymentRepo{
		getByID: func(ctx context.Context, id uint) (*entity.Payment, error) {
			return &entity.Payment{ID: id, Status: entity.PaymentPending}, nil
		},
		updatePayment: func(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
			return p, nil
		},
	}
	svc := NewPaymentService(repo)

	updated, err := svc.UpdateStatus(context.Background(), 5, entity.PaymentSuccess, "admin-id")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, updated.Status)
	require.NotNil(t, updated.ModifiedDate)
	require.NotNil(t, updated.ModifiedBy)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &mockPaymentRepo{
		getByID: func(ctx context.Context, id uint) (*entity.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewPaymentService(repo)

	_, err := svc.UpdateStatus(context.Background(), 404, entity.PaymentFailed, "admin-id")
	assert.ErrorIs(t, err, paymentpkg.ErrPaymentNotFound)
}
