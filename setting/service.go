package setting

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

var (
	// ErrNoKeys means a key-list lookup was called with no keys.
	ErrNoKeys = errors.New("at least one key is required")
	// ErrSettingNotFound means the setting id did not match a live row.
	ErrSettingNotFound = errors.New("setting not found")
)

// KV is the trimmed key/value pair settings lookups return.
type KV struct {
	Key   string         `json:"key"`
	Value datatypes.JSON `json:"value"`
}

// CreateRequest carries a new setting row.
type CreateRequest struct {
	Key            string
	Value          datatypes.JSON
	AdditionalData datatypes.JSON
}

// UpdateRequest is a partial setting mutation; nil fields are left alone.
type UpdateRequest struct {
	Key            *string
	Value          datatypes.JSON
	AdditionalData datatypes.JSON
}

// Service is the key→JSON settings store. Lookups return only existing,
// non-deleted keys; missing keys are silently skipped.
type Service interface {
	GetByKeys(ctx context.Context, keys []string) ([]KV, error)
	GetAll(ctx context.Context) ([]KV, error)
	Create(ctx context.Context, req CreateRequest, addedBy string) (*entity.Setting, error)
	Update(ctx context.Context, id uint, req UpdateRequest, modifiedBy string) (*entity.Setting, error)
	Delete(ctx context.Context, id uint, modifiedBy string) error
}
