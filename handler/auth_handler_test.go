package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

type mockAuthService struct {
	register       func(ctx context.Context, req authpkg.RegisterRequest) error
	login          func(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error)
	getProfile     func(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error)
	updateProfile  func(ctx context.Context, userID uuid.UUID, role string, upd authpkg.ProfileUpdate) (*entity.User, error)
	changePassword func(ctx context.Context, userID uuid.UUID, role string, current, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, req authpkg.RegisterRequest) error {
	return m.register(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
	return m.login(ctx, email, password, role)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID uuid.UUID, role string) (*entity.User, error) {
	return m.getProfile(ctx, userID, role)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, role string, upd authpkg.ProfileUpdate) (*entity.User, error) {
	return m.updateProfile(ctx, userID, role, upd)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, role string, current, newPassword string) error {
	return m.changePassword(ctx, userID, role, current, newPassword)
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter(svc authpkg.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/register", h.Register())
	r.POST("/auth/login", h.Login(permission.RoleUser))
	r.POST("/auth/owner/login", h.Login(permission.RoleOwner))
	return r
}

func TestRegisterHandler(t *testing.T) {
	var got authpkg.RegisterRequest
	svc := &mockAuthService{
		register: func(ctx context.Context, req authpkg.RegisterRequest) error {
			got = req
			return nil
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/register", gin.H{
		"email":    "new@example.com",
		"password": "hunter22",
		"name":     "New User",
		"phone":    "9876543210",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
	assert.Equal(t, "new@example.com", got.Email)
	// Role defaults to user when the payload omits it.
	assert.Equal(t, permission.RoleUser, got.Type)
}

func TestRegisterHandlerValidation(t *testing.T) {
	r := authRouter(&mockAuthService{})

	// Missing password.
	w := postJSON(r, "/auth/register", gin.H{
		"email": "new@example.com",
		"name":  "New User",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid role.
	w = postJSON(r, "/auth/register", gin.H{
		"email":    "new@example.com",
		"password": "hunter22",
		"name":     "New User",
		"type":     "superadmin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	svc := &mockAuthService{
		register: func(ctx context.Context, req authpkg.RegisterRequest) error {
			return authpkg.ErrEmailTaken
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/register", gin.H{
		"email":    "dup@example.com",
		"password": "hunter22",
		"name":     "Dup User",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginHandler(t *testing.T) {
	user := &entity.User{
		ID:    uuid.New(),
		Type:  "user",
		Name:  "Test User",
		Email: "test@example.com",
		Phone: "9999999999",
	}
	svc := &mockAuthService{
		login: func(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
			assert.Equal(t, permission.RoleUser, role)
			return &authpkg.LoginResult{AccessToken: "signed-token", User: user}, nil
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/login", gin.H{
		"email":    "test@example.com",
		"password": "hunter22",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AccessToken string `json:"access_token"`
		UserData    struct {
			Name        string   `json:"name"`
			Email       string   `json:"email"`
			Phone       string   `json:"phone"`
			Permissions []string `json:"permissions"`
		} `json:"user_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.AccessToken)
	assert.Equal(t, "test@example.com", body.UserData.Email)
	// Base users get no permission list.
	assert.Empty(t, body.UserData.Permissions)
}

func TestOwnerLoginIncludesPermissions(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Type: "owner", Name: "Owner", Email: "o@example.com", Phone: "8888888888"}
	svc := &mockAuthService{
		login: func(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
			assert.Equal(t, permission.RoleOwner, role)
			return &authpkg.LoginResult{
				AccessToken: "signed-token",
				User:        user,
				Permissions: permission.ForRole("owner"),
			}, nil
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/owner/login", gin.H{
		"email":    "o@example.com",
		"password": "hunter22",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "permissions")
	assert.Contains(t, w.Body.String(), string(permission.VehicleCreate))
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := &mockAuthService{
		login: func(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
			return nil, authpkg.ErrInvalidCredentials
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
}

func TestLoginHandlerInactiveAccount(t *testing.T) {
	svc := &mockAuthService{
		login: func(ctx context.Context, email, password string, role permission.Role) (*authpkg.LoginResult, error) {
			return nil, authpkg.ErrAccountNotActive
		},
	}
	r := authRouter(svc)

	w := postJSON(r, "/auth/login", gin.H{
		"email":    "inactive@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not active")
}
