package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// ErrPaymentNotFound means the payment id did not match a live row.
var ErrPaymentNotFound = errors.New("payment not found")

// RecordRequest carries one ledger line. RentID, when set, links the
// payment to a rental context through a user_payments row.
type RecordRequest struct {
	Amount                      *float64
	Type                        entity.PaymentType
	SubType                     entity.PaymentSubType
	Channel                     entity.PaymentChannel
	Status                      entity.PaymentStatus
	TransactionID               *string
	ExternalSystemName          *string
	ExternalSystemTransactionID *string
	SourceType                  entity.PartyType
	SourceID                    string
	DestinationType             entity.PartyType
	DestinationID               string
	RentID                      *uuid.UUID
}

// Service records and reads payment ledger lines.
type Service interface {
	// RecordPayment creates the payment row and, if RentID is set, its
	// rent link in one transaction.
	RecordPayment(ctx context.Context, req RecordRequest, addedBy string) (*entity.Payment, error)
	// ListForUser returns payments where the user is source or
	// destination.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status entity.PaymentStatus, modifiedBy string) (*entity.Payment, error)
}
