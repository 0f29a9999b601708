package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// ErrDocumentNotFound means the document id did not match a live row.
var ErrDocumentNotFound = errors.New("document not found")

// ErrBadImage means the embedded base64 payload could not be decoded.
var ErrBadImage = errors.New("invalid document image")

// Data is one inbound document: metadata plus a base64-encoded image.
type Data struct {
	DocumentNumber *string
	Image          string // base64, with or without a data: URI prefix
	Type           string
	ExpiryDate     *time.Time
	IssueDate      *time.Time
}

// Service handles document ingestion and lookups. Ingestion decodes the
// image to the upload directory and writes media url, document and join
// rows in one transaction, joining a surrounding transaction when the
// context carries one.
type Service interface {
	CreateForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, docs []Data, addedBy string) ([]entity.Document, error)
	// ReplaceForEntity soft-deletes the entity's current document set and
	// inserts the new one. Replace-all, not merge.
	ReplaceForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, docs []Data, modifiedBy string) ([]entity.Document, error)
	ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Document, error)
	SetVerificationStatus(ctx context.Context, id uint, status entity.VerificationStatus, modifiedBy string) (*entity.Document, error)
}
