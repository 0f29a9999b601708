package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntityType is the polymorphic target of a Document or Challan.
type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityVehicle EntityType = "vehicle"
)

// VerificationStatus tracks manual review of an uploaded document.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Document is a verifiable credential (license, registration, insurance...)
// attached to a user or a vehicle.
type Document struct {
	ID                 uint               `json:"id" gorm:"primaryKey;autoIncrement"`
	Type               string             `json:"type" gorm:"type:varchar(50);not null"`
	SubType            *string            `json:"sub_type,omitempty" gorm:"type:varchar(100)"`
	EntityType         EntityType         `json:"entity_type" gorm:"type:varchar(10);index;not null"`
	EntityID           uuid.UUID          `json:"entity_id" gorm:"type:char(36);index;not null"`
	DocumentNumber     *string            `json:"document_number,omitempty" gorm:"type:varchar(255)"`
	ExpiryDate         *time.Time         `json:"expiry_date,omitempty"`
	IssueDate          *time.Time         `json:"issue_date,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(10);not null;default:'pending'"`
	AdditionalData     datatypes.JSON     `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted          bool               `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate          time.Time          `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate       *time.Time         `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy            *string            `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy         *string            `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}

// MediaDocumentUrl points at a stored file for one or more documents.
// Metadata lives on Document; this row only knows where the bytes are.
type MediaDocumentUrl struct {
	ID             uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Type           string         `json:"type" gorm:"type:varchar(10);not null;default:'image'"`
	URL            *string        `json:"url,omitempty" gorm:"type:varchar(255)"`
	FilePath       *string        `json:"file_path,omitempty" gorm:"type:varchar(255)"`
	Encoding       *string        `json:"encoding,omitempty" gorm:"type:varchar(255)"`
	AdditionalData datatypes.JSON `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted      bool           `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate      time.Time      `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate   *time.Time     `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy        *string        `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy     *string        `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}

func (MediaDocumentUrl) TableName() string { return "media_documents_urls" }

// MediaDocument joins a Document to a MediaDocumentUrl.
type MediaDocument struct {
	ID                   uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	DocumentsID          uint           `json:"documents_id" gorm:"index;not null"`
	MediaDocumentsUrlsID uint           `json:"media_documents_urls_id" gorm:"index;not null"`
	AdditionalData       datatypes.JSON `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted            bool           `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedBy              *string        `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy           *string        `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}
