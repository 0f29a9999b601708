package document

import (
	"context"

	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
)

// DocMedia pairs a document row with the media url row for its stored
// image, created together inside one transaction.
type DocMedia struct {
	Document entity.Document
	Media    entity.MediaDocumentUrl
}

// Repository specifies document related database operations.
type Repository interface {
	// CreateForEntity inserts, per pair, the media url row, the document
	// row and the join row, all inside one transaction.
	CreateForEntity(ctx context.Context, pairs []DocMedia) ([]entity.Document, error)
	// ReplaceForEntity soft-deletes the entity's current documents and
	// their join rows, then inserts the new pairs, in one transaction.
	ReplaceForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, pairs []DocMedia, modifiedBy string) ([]entity.Document, error)
	ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Document, error)
	GetByID(ctx context.Context, id uint) (*entity.Document, error)
	UpdateDocument(ctx context.Context, d *entity.Document) (*entity.Document, error)
}
