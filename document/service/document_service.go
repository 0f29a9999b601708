package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	docpkg "github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
)

type documentService struct {
	repo  docpkg.Repository
	store *docpkg.Store
}

// NewDocumentService constructs a document Service writing images through
// the given store.
func NewDocumentService(repo docpkg.Repository, store *docpkg.Store) docpkg.Service {
	return &documentService{repo: repo, store: store}
}

// buildPairs decodes and writes every image first, then shapes the rows.
// File writes are not transactional; the database work that follows is.
func (s *documentService) buildPairs(entityType entity.EntityType, entityID uuid.UUID, docs []docpkg.Data, by string) ([]docpkg.DocMedia, error) {
	pairs := make([]docpkg.DocMedia, 0, len(docs))
	for _, d := range docs {
		number := ""
		if d.DocumentNumber != nil {
			number = *d.DocumentNumber
		}
		path, err := s.store.SaveBase64Image(d.Image, d.Type, number)
		if err != nil {
			return nil, err
		}
		encoding := "base64"
		pairs = append(pairs, docpkg.DocMedia{
			Document: entity.Document{
				Type:               d.Type,
				EntityType:         entityType,
				EntityID:           entityID,
				DocumentNumber:     d.DocumentNumber,
				ExpiryDate:         d.ExpiryDate,
				IssueDate:          d.IssueDate,
				VerificationStatus: entity.VerificationPending,
				AddedBy:            &by,
			},
			Media: entity.MediaDocumentUrl{
				Type:     "image",
				URL:      &path,
				FilePath: &path,
				Encoding: &encoding,
				AddedBy:  &by,
			},
		})
	}
	return pairs, nil
}

func (s *documentService) CreateForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, docs []docpkg.Data, addedBy string) ([]entity.Document, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	pairs, err := s.buildPairs(entityType, entityID, docs, addedBy)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateForEntity(ctx, pairs)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity_type": entityType,
			"entity_id":   entityID,
		}).Error("document ingestion failed")
		return nil, err
	}
	return created, nil
}

func (s *documentService) ReplaceForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID, docs []docpkg.Data, modifiedBy string) ([]entity.Document, error) {
	pairs, err := s.buildPairs(entityType, entityID, docs, modifiedBy)
	if err != nil {
		return nil, err
	}
	return s.repo.ReplaceForEntity(ctx, entityType, entityID, pairs, modifiedBy)
}

func (s *documentService) ListForEntity(ctx context.Context, entityType entity.EntityType, entityID uuid.UUID) ([]entity.Document, error) {
	return s.repo.ListForEntity(ctx, entityType, entityID)
}

func (s *documentService) SetVerificationStatus(ctx context.Context, id uint, status entity.VerificationStatus, modifiedBy string) (*entity.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, docpkg.ErrDocumentNotFound
		}
		return nil, err
	}
	now := time.Now()
	doc.VerificationStatus = status
	doc.ModifiedDate = &now
	doc.ModifiedBy = &modifiedBy
	return s.repo.UpdateDocument(ctx, doc)
}
