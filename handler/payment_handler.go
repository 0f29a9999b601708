package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
	paymentpkg "github.com/atmaprakash0998/rental-app-backend/payment"
)

// PaymentHandler records and reads payment ledger lines. No gateway
// integration; callers report outcomes that already happened elsewhere.
type PaymentHandler struct {
	service paymentpkg.Service
}

func NewPaymentHandler(svc paymentpkg.Service) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

type recordPaymentPayload struct {
	Amount                      *float64   `json:"amount"`
	Type                        string     `json:"type" binding:"required,oneof=credit debit"`
	SubType                     string     `json:"sub_type" binding:"required,oneof=purchase deposit refund"`
	Channel                     string     `json:"channel" binding:"required,oneof=credit_card debit_card net_banking wallet upi cash"`
	Status                      string     `json:"status" binding:"omitempty,oneof=success failed pending"`
	TransactionID               *string    `json:"transaction_id"`
	ExternalSystemName          *string    `json:"external_system_name"`
	ExternalSystemTransactionID *string    `json:"external_system_transaction_id"`
	SourceType                  string     `json:"source_type" binding:"required,oneof=user company"`
	SourceID                    string     `json:"source_id" binding:"required"`
	DestinationType             string     `json:"destination_type" binding:"required,oneof=user company"`
	DestinationID               string     `json:"destination_id" binding:"required"`
	RentID                      *uuid.UUID `json:"rent_id"`
}

// RecordPayment persists one ledger line, optionally linked to a rental.
// POST /api/v1/payments
func (h *PaymentHandler) RecordPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p recordPaymentPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		status := entity.PaymentPending
		if p.Status != "" {
			status = entity.PaymentStatus(p.Status)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RecordPayment(ctx, paymentpkg.RecordRequest{
			Amount:                      p.Amount,
			Type:                        entity.PaymentType(p.Type),
			SubType:                     entity.PaymentSubType(p.SubType),
			Channel:                     entity.PaymentChannel(p.Channel),
			Status:                      status,
			TransactionID:               p.TransactionID,
			ExternalSystemName:          p.ExternalSystemName,
			ExternalSystemTransactionID: p.ExternalSystemTransactionID,
			SourceType:                  entity.PartyType(p.SourceType),
			SourceID:                    p.SourceID,
			DestinationType:             entity.PartyType(p.DestinationType),
			DestinationID:               p.DestinationID,
			RentID:                      p.RentID,
		}, callerID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to record payment: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// MyPayments lists payments where the caller is source or destination,
// newest first. GET /api/v1/payments
func (h *PaymentHandler) MyPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		payments, err := h.service.ListForUser(ctx, callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list payments: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

type paymentStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=success failed pending"`
}

// UpdateStatus moves a payment to a new settlement state. Admin only.
// PUT /api/v1/payments/:payment_id/status
func (h *PaymentHandler) UpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID, err := strconv.ParseUint(c.Param("payment_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payment id"})
			return
		}
		var p paymentStatusPayload
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
		updated, err := h.service.UpdateStatus(ctx, uint(paymentID), entity.PaymentStatus(p.Status), callerID.String())
		if err != nil {
			if errors.Is(err, paymentpkg.ErrPaymentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update payment: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
