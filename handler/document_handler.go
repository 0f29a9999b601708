package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	documentpkg "github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
)

// DocumentHandler serves document listings and the admin verification
// endpoint. Document ingestion itself rides along vehicle create/update.
type DocumentHandler struct {
	service documentpkg.Service
}

func NewDocumentHandler(svc documentpkg.Service) *DocumentHandler {
	return &DocumentHandler{service: svc}
}

// VehicleDocuments lists the live documents attached to a vehicle.
// GET /api/v1/documents/vehicle/:vehicle_id
func (h *DocumentHandler) VehicleDocuments() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid vehicle id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		docs, err := h.service.ListForEntity(ctx, entity.EntityVehicle, vehicleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list documents: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

// MyDocuments lists the caller's own documents.
// GET /api/v1/documents/me
func (h *DocumentHandler) MyDocuments() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		docs, err := h.service.ListForEntity(ctx, entity.EntityUser, callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list documents: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

type uploadDocumentsPayload struct {
	Documents []documentPayload `json:"documents" binding:"required,min=1,dive"`
}

// UploadMyDocuments attaches documents to the caller's own account.
// POST /api/v1/documents/me
func (h *DocumentHandler) UploadMyDocuments() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p uploadDocumentsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		docs, err := h.service.CreateForEntity(ctx, entity.EntityUser, callerID, toDocumentData(p.Documents), callerID.String())
		if err != nil {
			if errors.Is(err, documentpkg.ErrBadImage) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to upload documents: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, docs)
	}
}

type verifyDocumentPayload struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}

// VerifyDocument sets a document's verification status. Admin only.
// PUT /api/v1/documents/:document_id/verify
func (h *DocumentHandler) VerifyDocument() gin.HandlerFunc {
	return func(c *gin.Context) {
		docID, err := strconv.ParseUint(c.Param("document_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid document id"})
			return
		}
		var p verifyDocumentPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		doc, err := h.service.SetVerificationStatus(ctx, uint(docID), entity.VerificationStatus(p.Status), callerID.String())
		if err != nil {
			if errors.Is(err, documentpkg.ErrDocumentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Document not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update document: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}
