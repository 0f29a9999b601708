package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentType is the direction of a ledger line.
type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentDebit  PaymentType = "debit"
)

// PaymentSubType is the business reason behind a payment.
type PaymentSubType string

const (
	PaymentPurchase PaymentSubType = "purchase"
	PaymentDeposit  PaymentSubType = "deposit"
	PaymentRefund   PaymentSubType = "refund"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
	PaymentPending PaymentStatus = "pending"
)

// PaymentChannel is the instrument the payment moved through.
type PaymentChannel string

const (
	ChannelCreditCard PaymentChannel = "credit_card"
	ChannelDebitCard  PaymentChannel = "debit_card"
	ChannelNetBanking PaymentChannel = "net_banking"
	ChannelWallet     PaymentChannel = "wallet"
	ChannelUPI        PaymentChannel = "upi"
	ChannelCash       PaymentChannel = "cash"
)

// PartyType is the kind of entity on either end of a payment.
type PartyType string

const (
	PartyUser    PartyType = "user"
	PartyCompany PartyType = "company"
)

// Payment is a ledger line between a source and a destination party.
type Payment struct {
	ID                          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Amount                      *float64       `json:"amount,omitempty" gorm:"type:decimal(10,2)"`
	Type                        PaymentType    `json:"type" gorm:"type:varchar(10);not null"`
	SubType                     PaymentSubType `json:"sub_type" gorm:"type:varchar(10);not null"`
	TransactionID               *string        `json:"transaction_id,omitempty" gorm:"type:varchar(100)"`
	Status                      PaymentStatus  `json:"status" gorm:"type:varchar(10);index;not null;default:'pending'"`
	ExternalSystemName          *string        `json:"external_system_name,omitempty" gorm:"type:varchar(100)"`
	ExternalSystemTransactionID *string        `json:"external_system_transaction_id,omitempty" gorm:"type:varchar(100)"`
	Channel                     PaymentChannel `json:"channel" gorm:"type:varchar(20);not null"`
	SourceType                  PartyType      `json:"source_type" gorm:"type:varchar(10);not null"`
	SourceID                    string         `json:"source_id" gorm:"type:char(36);index;not null"`
	DestinationType             PartyType      `json:"destination_type" gorm:"type:varchar(10);not null"`
	DestinationID               string         `json:"destination_id" gorm:"type:char(36);index;not null"`
	AdditionalData              datatypes.JSON `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted                   bool           `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate                   time.Time      `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate                *time.Time     `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy                     *string        `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy                  *string        `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}

// UserPaymentEntity is the transaction context a UserPayment points at.
type UserPaymentEntity string

const (
	UserPaymentRent UserPaymentEntity = "rent"
)

// UserPayment associates a Payment with a higher-level transaction, e.g. a
// rental.
type UserPayment struct {
	ID             uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType     UserPaymentEntity `json:"entity_type" gorm:"type:varchar(10);not null"`
	EntityID       uuid.UUID         `json:"entity_id" gorm:"type:char(36);index;not null"`
	PaymentID      uint              `json:"payment_id" gorm:"index;not null"`
	AdditionalData datatypes.JSON    `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted      bool              `json:"is_deleted" gorm:"index;not null;default:false"`
}
