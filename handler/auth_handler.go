package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

// AuthHandler bundles dependencies for authentication HTTP handlers.
type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Phone    string `json:"phone" binding:"omitempty,len=10"`
	Type     string `json:"type" binding:"omitempty,oneof=user owner admin"`
}

// Register creates an account. POST /api/v1/auth/register
func (h *AuthHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		if p.Type == "" {
			p.Type = string(permission.RoleUser)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		err := h.service.Register(ctx, authpkg.RegisterRequest{
			Email:    p.Email,
			Password: p.Password,
			Name:     p.Name,
			Phone:    p.Phone,
			Type:     permission.Role(p.Type),
		})
		if err != nil {
			if errors.Is(err, authpkg.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "registration failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// Login authenticates against a fixed role; separate routes exist per
// role (user, owner, admin).
func (h *AuthHandler) Login(role permission.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		res, err := h.service.Login(ctx, p.Email, p.Password, role)
		if err != nil {
			switch {
			case errors.Is(err, authpkg.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
			case errors.Is(err, authpkg.ErrAccountNotActive):
				c.JSON(http.StatusBadRequest, gin.H{"detail": "User account is not active. Please contact support."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed: " + err.Error()})
			}
			return
		}

		userData := gin.H{
			"name":  res.User.Name,
			"email": res.User.Email,
			"phone": res.User.Phone,
		}
		if res.Permissions != nil {
			userData["permissions"] = res.Permissions
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": res.AccessToken,
			"user_data":    userData,
		})
	}
}

// Me returns the caller's profile. GET /api/v1/auth/me
func (h *AuthHandler) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}
		user, err := h.service.GetProfile(c.Request.Context(), callerID, c.GetString(middleware.CtxRole))
		if err != nil {
			if errors.Is(err, authpkg.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type profileUpdatePayload struct {
	Name           *string        `json:"name" binding:"omitempty,min=1,max=100"`
	Phone          *string        `json:"phone" binding:"omitempty,len=10"`
	SubType        *string        `json:"sub_type" binding:"omitempty,max=100"`
	AdditionalData datatypes.JSON `json:"additional_data"`
}

// UpdateProfile applies a partial profile mutation. PUT /api/v1/auth/profile
func (h *AuthHandler) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p profileUpdatePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}

		user, err := h.service.UpdateProfile(c.Request.Context(), callerID, c.GetString(middleware.CtxRole), authpkg.ProfileUpdate{
			Name:           p.Name,
			Phone:          p.Phone,
			SubType:        p.SubType,
			AdditionalData: p.AdditionalData,
		})
		if err != nil {
			if errors.Is(err, authpkg.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type passwordChangePayload struct {
	CurrentPassword string `json:"current_password" binding:"required,min=6,max=100"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=100"`
}

// ChangePassword verifies the current password before replacing it.
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p passwordChangePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authentication failed"})
			return
		}

		err := h.service.ChangePassword(c.Request.Context(), callerID, c.GetString(middleware.CtxRole), p.CurrentPassword, p.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, authpkg.ErrWrongPassword):
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Current password is incorrect"})
			case errors.Is(err, authpkg.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}
