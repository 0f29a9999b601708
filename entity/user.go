package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserStatus enumerates account states.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserPending  UserStatus = "pending"
)

// User is the base identity record for all roles (user, owner, admin).
// Rows are never hard-deleted; IsDeleted marks them gone.
type User struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Type           string         `json:"type" gorm:"type:varchar(20);index;not null"` // user, owner, admin
	SubType        *string        `json:"sub_type,omitempty" gorm:"type:varchar(100)"`
	Name           string         `json:"name" gorm:"type:varchar(100);not null"`
	Email          string         `json:"email" gorm:"type:varchar(100);index;not null"`
	Phone          string         `json:"phone" gorm:"type:varchar(10);not null"`
	Password       string         `json:"-" gorm:"type:varchar(255);not null"`
	Status         UserStatus     `json:"status" gorm:"type:varchar(20);index;not null;default:'active'"`
	AdditionalData datatypes.JSON `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted      bool           `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate      time.Time      `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate   *time.Time     `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy        *string        `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy     *string        `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}

// BeforeCreate assigns a uuid primary key; MySQL has no uuid_generate_v4().
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
