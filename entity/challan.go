package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChallanAuthority is the body that issued the fine.
type ChallanAuthority string

const (
	AuthorityPolice  ChallanAuthority = "police"
	AuthorityTraffic ChallanAuthority = "traffic"
	AuthorityOther   ChallanAuthority = "other"
)

// ChallanStatus is whether the fine has been settled.
type ChallanStatus string

const (
	ChallanPending ChallanStatus = "pending"
	ChallanPaid    ChallanStatus = "paid"
)

// Challan records a traffic or regulatory fine against a user or a vehicle.
type Challan struct {
	ID             uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType     EntityType       `json:"entity_type" gorm:"type:varchar(10);index;not null"`
	EntityID       uuid.UUID        `json:"entity_id" gorm:"type:char(36);index;not null"`
	ChallanNumber  *string          `json:"challan_number,omitempty" gorm:"type:varchar(100)"`
	AuthorityName  ChallanAuthority `json:"authority_name" gorm:"type:varchar(10);not null"`
	Location       *string          `json:"location,omitempty" gorm:"type:varchar(255)"`
	Amount         *float64         `json:"amount,omitempty" gorm:"type:decimal(10,2)"`
	Status         ChallanStatus    `json:"status" gorm:"type:varchar(10);index;not null;default:'pending'"`
	AdditionalData datatypes.JSON   `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted      bool             `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate      time.Time        `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate   *time.Time       `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy        *string          `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy     *string          `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}
