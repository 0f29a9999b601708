package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/atmaprakash0998/rental-app-backend/middleware"
	settingpkg "github.com/atmaprakash0998/rental-app-backend/setting"
)

// SettingHandler serves the key→JSON settings store. Reads go through the
// service's cache layer; admin mutations invalidate affected keys.
type SettingHandler struct {
	service settingpkg.Service
}

func NewSettingHandler(svc settingpkg.Service) *SettingHandler {
	return &SettingHandler{service: svc}
}

// GetByKeys resolves a key list given as repeated params
// (?keys=a&keys=b), comma-separated (?keys=a,b) or both. Missing keys
// are skipped, not errored. GET /api/v1/settings/keys
func (h *SettingHandler) GetByKeys() gin.HandlerFunc {
	return func(c *gin.Context) {
		var keys []string
		for _, raw := range c.QueryArray("keys") {
			for _, k := range strings.Split(raw, ",") {
				if k = strings.TrimSpace(k); k != "" {
					keys = append(keys, k)
				}
			}
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		kvs, err := h.service.GetByKeys(ctx, keys)
		if err != nil {
			if errors.Is(err, settingpkg.ErrNoKeys) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "At least one key is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get settings: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, kvs)
	}
}

// GetAll lists every live setting. GET /api/v1/settings
func (h *SettingHandler) GetAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		kvs, err := h.service.GetAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get settings: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, kvs)
	}
}

type createSettingPayload struct {
	Key            string         `json:"key" binding:"required,max=100"`
	Value          datatypes.JSON `json:"value" binding:"required"`
	AdditionalData datatypes.JSON `json:"additional_data"`
}

// CreateSetting adds a new setting row. Admin only.
// POST /api/v1/settings
func (h *SettingHandler) CreateSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createSettingPayload
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
		created, err := h.service.Create(ctx, settingpkg.CreateRequest{
			Key:            p.Key,
			Value:          p.Value,
			AdditionalData: p.AdditionalData,
		}, callerID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create setting: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

type updateSettingPayload struct {
	Key            *string        `json:"key" binding:"omitempty,max=100"`
	Value          datatypes.JSON `json:"value"`
	AdditionalData datatypes.JSON `json:"additional_data"`
}

// UpdateSetting mutates a setting row. Admin only.
// PUT /api/v1/settings/:setting_id
func (h *SettingHandler) UpdateSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		settingID, err := strconv.ParseUint(c.Param("setting_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid setting id"})
			return
		}
		var p updateSettingPayload
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
		updated, err := h.service.Update(ctx, uint(settingID), settingpkg.UpdateRequest{
			Key:            p.Key,
			Value:          p.Value,
			AdditionalData: p.AdditionalData,
		}, callerID.String())
		if err != nil {
			if errors.Is(err, settingpkg.ErrSettingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Setting not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update setting: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteSetting soft-deletes a setting row. Admin only.
// DELETE /api/v1/settings/:setting_id
func (h *SettingHandler) DeleteSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		settingID, err := strconv.ParseUint(c.Param("setting_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid setting id"})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.service.Delete(ctx, uint(settingID), callerID.String()); err != nil {
			if errors.Is(err, settingpkg.ErrSettingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Setting not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete setting: " + err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
