package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atmaprakash0998/rental-app-backend/database"
	docpkg "github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

type GormDocumentRepo struct {
	db *gorm.DB
}

func NewGormDocumentRepo(db *gorm.DB) docpkg.Repository {
	return &GormDocumentRepo{db: db}
}

// createPairs inserts media url, document and join rows for each pair using
// the given transaction handle.
func createPairs(tx *gorm.DB, pairs []docpkg.DocMedia) ([]entity.Document, error) {
	created := make([]entity.Document, 0, len(pairs))
	for i := range pairs {
		media := pairs[i].Media
		if err := tx.Create(&media).Error; err != nil {
			return nil, err
		}
		doc := pairs[i].Document
		if err := tx.Create(&doc).Error; err != nil {
			return nil, err
		}
		join := entity.MediaDocument{
			DocumentsID:          doc.ID,
			MediaDocumentsUrlsID: media.ID,
			AddedBy:              doc.AddedBy,
		}
		if err := tx.Create(&join).Error; err != nil {
			return nil, err
		}
		created = append(created, doc)
	}
	return created, nil
}

func (r *GormDocumentRepo) CreateForEntity(ctx context.Context, pairs []docpkg.DocMedia) ([]entity.Document, error) {
	var created []entity.Document
	err := database.FromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = createPairs(tx, pairs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *GormDocumentRepo) ReplaceForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, pairs []docpkg.DocMedia, modifiedBy string) ([]entity.Document, error) {
	var created []entity.Document
	err := database.FromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var existing []entity.Document
		if err := tx.
			Where("entity_type = ? AND entity_id = ? AND is_deleted = ?", entityType, entityID, false).
			Find(&existing).Error; err != nil {
			return err
		}

		now := time.Now()
		ids := make([]uint, 0, len(existing))
		for _, d := range existing {
			ids = append(ids, d.ID)
		}
		if len(ids) > 0 {
			if err := tx.Model(&entity.Document{}).Where("id IN ?", ids).
				Updates(map[string]interface{}{
					"is_deleted":    true,
					"modified_date": now,
					"modified_by":   modifiedBy,
				}).Error; err != nil {
				return err
			}
			if err := tx.Model(&entity.MediaDocument{}).Where("documents_id IN ?", ids).
				Updates(map[string]interface{}{
					"is_deleted":  true,
					"modified_by": modifiedBy,
				}).Error; err != nil {
				return err
			}
		}

		var err error
		created, err = createPairs(tx, pairs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *GormDocumentRepo) ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Document, error) {
	var docs []entity.Document
	err := database.FromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id = ? AND is_deleted = ?", entityType, entityID, false).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *GormDocumentRepo) GetByID(ctx context.Context, id uint) (*entity.Document, error) {
	var d entity.Document
	err := database.FromContext(ctx, r.db).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDocumentRepo) UpdateDocument(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	if err := database.FromContext(ctx, r.db).Save(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}
