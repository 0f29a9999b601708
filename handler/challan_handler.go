package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	challanpkg "github.com/atmaprakash0998/rental-app-backend/challan"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
)

// ChallanHandler keeps traffic fine records against users and vehicles.
type ChallanHandler struct {
	service challanpkg.Service
}

func NewChallanHandler(svc challanpkg.Service) *ChallanHandler {
	return &ChallanHandler{service: svc}
}

type createChallanPayload struct {
	EntityType    string    `json:"entity_type" binding:"required,oneof=user vehicle"`
	EntityID      uuid.UUID `json:"entity_id" binding:"required"`
	ChallanNumber *string   `json:"challan_number"`
	AuthorityName string    `json:"authority_name" binding:"required,oneof=police traffic other"`
	Location      *string   `json:"location"`
	Amount        *float64  `json:"amount"`
}

// CreateChallan records a new fine. Admin only.
// POST /api/v1/challans
func (h *ChallanHandler) CreateChallan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createChallanPayload
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
		created, err := h.service.Create(ctx, challanpkg.CreateRequest{
			EntityType:    entity.EntityType(p.EntityType),
			EntityID:      p.EntityID,
			ChallanNumber: p.ChallanNumber,
			AuthorityName: entity.ChallanAuthority(p.AuthorityName),
			Location:      p.Location,
			Amount:        p.Amount,
		}, callerID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create challan: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// EntityChallans lists the fines recorded against a user or vehicle.
// GET /api/v1/challans/:entity_type/:entity_id
func (h *ChallanHandler) EntityChallans() gin.HandlerFunc {
	return func(c *gin.Context) {
		entityType := entity.EntityType(c.Param("entity_type"))
		if entityType != entity.EntityUser && entityType != entity.EntityVehicle {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid entity type"})
			return
		}
		entityID, err := uuid.Parse(c.Param("entity_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid entity id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		challans, err := h.service.ListForEntity(ctx, entityType, entityID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list challans: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, challans)
	}
}

// MarkPaid settles a challan. Admin only.
// PUT /api/v1/challans/:challan_id/pay
func (h *ChallanHandler) MarkPaid() gin.HandlerFunc {
	return func(c *gin.Context) {
		challanID, err := strconv.ParseUint(c.Param("challan_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid challan id"})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		updated, err := h.service.MarkPaid(ctx, uint(challanID), callerID.String())
		if err != nil {
			if errors.Is(err, challanpkg.ErrChallanNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Challan not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update challan: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
