package payment

import (
	"context"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// Repository specifies payment related database operations.
type Repository interface {
	// CreateWithLink inserts the payment and, when link is non-nil, the
	// user_payments row pointing at it, in one transaction.
	CreateWithLink(ctx context.Context, p *entity.Payment, link *entity.UserPayment) (*entity.Payment, error)
	ListByParty(ctx context.Context, partyID string) ([]entity.Payment, error)
	GetByID(ctx context.Context, id uint) (*entity.Payment, error)
	UpdatePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
}
