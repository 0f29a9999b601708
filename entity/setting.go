package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is a generic key→JSON value row for application configuration.
type Setting struct {
	ID             uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Key            string         `json:"key" gorm:"type:varchar(255);index;not null"`
	Value          datatypes.JSON `json:"value" gorm:"type:json"`
	AdditionalData datatypes.JSON `json:"additional_data,omitempty" gorm:"type:json"`
	IsDeleted      bool           `json:"is_deleted" gorm:"index;not null;default:false"`
	AddedDate      time.Time      `json:"added_date" gorm:"autoCreateTime"`
	ModifiedDate   *time.Time     `json:"modified_date,omitempty" gorm:"autoUpdateTime:false"`
	AddedBy        *string        `json:"added_by,omitempty" gorm:"type:varchar(100)"`
	ModifiedBy     *string        `json:"modified_by,omitempty" gorm:"type:varchar(100)"`
}
