package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/document"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
	vehiclepkg "github.com/atmaprakash0998/rental-app-backend/vehicle"
)

// VehicleHandler bundles dependencies for vehicle HTTP handlers. Role
// guards (owner/admin) run as route middleware; ownership is re-checked
// per call in the service.
type VehicleHandler struct {
	service vehiclepkg.Service
}

func NewVehicleHandler(svc vehiclepkg.Service) *VehicleHandler {
	return &VehicleHandler{service: svc}
}

// documentPayload is one inbound document with an embedded base64 image.
type documentPayload struct {
	DocumentNumber *string    `json:"document_number"`
	DocumentImage  string     `json:"document_image" binding:"required"`
	DocumentType   string     `json:"document_type" binding:"required"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	IssueDate      *time.Time `json:"issue_date"`
}

func toDocumentData(payloads []documentPayload) []document.Data {
	docs := make([]document.Data, 0, len(payloads))
	for _, p := range payloads {
		docs = append(docs, document.Data{
			DocumentNumber: p.DocumentNumber,
			Image:          p.DocumentImage,
			Type:           p.DocumentType,
			ExpiryDate:     p.ExpiryDate,
			IssueDate:      p.IssueDate,
		})
	}
	return docs
}

type createVehiclePayload struct {
	Name               string            `json:"name" binding:"required"`
	Type               string            `json:"type" binding:"required,oneof=bike car scooter scooty van"`
	AvailabilityStatus string            `json:"availability_status" binding:"required,oneof=available booked maintenance"`
	RentalDuration     string            `json:"rental_duration" binding:"required,oneof=hour day week month"`
	RentalPrice        *float64          `json:"rental_price"`
	Documents          []documentPayload `json:"documents" binding:"required,dive"`
}

// ListVehicles returns all live vehicles. GET /api/v1/vehicles
func (h *VehicleHandler) ListVehicles() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		vehicles, err := h.service.ListVehicles(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list vehicles: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}

// GetVehicle returns one vehicle; ?include_deleted=true bypasses the
// soft-delete filter. Admin only. GET /api/v1/vehicles/:vehicle_id
func (h *VehicleHandler) GetVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid vehicle id"})
			return
		}
		includeDeleted := c.Query("include_deleted") == "true"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		v, err := h.service.GetVehicle(ctx, vehicleID, includeDeleted)
		if err != nil {
			writeVehicleError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// OwnerVehicles returns the caller's owned vehicles joined with their
// ownership rows. GET /api/v1/vehicles/get-owner-vehicles
func (h *VehicleHandler) OwnerVehicles() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		rows, err := h.service.ListOwnerVehicles(ctx, callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get vehicles by owner id: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// CreateVehicle lists a new vehicle with its documents.
// POST /api/v1/vehicles/create-vehicle
func (h *VehicleHandler) CreateVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createVehiclePayload
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
		created, err := h.service.CreateVehicle(ctx, callerID, vehiclepkg.CreateVehicleRequest{
			Name:               p.Name,
			Type:               entity.VehicleType(p.Type),
			AvailabilityStatus: entity.AvailabilityStatus(p.AvailabilityStatus),
			RentalDuration:     entity.RentalDuration(p.RentalDuration),
			RentalPrice:        p.RentalPrice,
			Documents:          toDocumentData(p.Documents),
		})
		if err != nil {
			if errors.Is(err, document.ErrBadImage) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create vehicle: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

type updateVehiclePayload struct {
	Name               *string           `json:"name"`
	Type               *string           `json:"type" binding:"omitempty,oneof=bike car scooter scooty van"`
	AvailabilityStatus *string           `json:"availability_status" binding:"omitempty,oneof=available booked maintenance"`
	RentalDuration     *string           `json:"rental_duration" binding:"omitempty,oneof=hour day week month"`
	RentalPrice        *float64          `json:"rental_price"`
	Documents          []documentPayload `json:"documents" binding:"omitempty,dive"`
}

// UpdateVehicle mutates an owned vehicle; a documents list replaces the
// whole document set. PUT /api/v1/vehicles/update-vehicle/:vehicle_id
func (h *VehicleHandler) UpdateVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid vehicle id"})
			return
		}
		var p updateVehiclePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}

		req := vehiclepkg.UpdateVehicleRequest{
			Name:        p.Name,
			RentalPrice: p.RentalPrice,
		}
		if p.Type != nil {
			t := entity.VehicleType(*p.Type)
			req.Type = &t
		}
		if p.AvailabilityStatus != nil {
			st := entity.AvailabilityStatus(*p.AvailabilityStatus)
			req.AvailabilityStatus = &st
		}
		if p.RentalDuration != nil {
			d := entity.RentalDuration(*p.RentalDuration)
			req.RentalDuration = &d
		}
		if p.Documents != nil {
			req.Documents = toDocumentData(p.Documents)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		updated, err := h.service.UpdateVehicle(ctx, callerID, vehicleID, req)
		if err != nil {
			writeVehicleError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteVehicle soft-deletes an owned vehicle and its ownership link.
// DELETE /api/v1/vehicles/delete-vehicle/:vehicle_id
func (h *VehicleHandler) DeleteVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid vehicle id"})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteVehicle(ctx, callerID, vehicleID); err != nil {
			writeVehicleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func writeVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vehiclepkg.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Vehicle not found"})
	case errors.Is(err, vehiclepkg.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized to modify this vehicle"})
	case errors.Is(err, document.ErrBadImage):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
