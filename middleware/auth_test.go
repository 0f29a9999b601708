package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authpkg "github.com/atmaprakash0998/rental-app-backend/auth"
	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/permission"
)

const testSecret = "middleware-test-secret"

type stubResolver struct {
	user *entity.User
	err  error
}

func (s *stubResolver) GetActiveUserByID(ctx context.Context, id uuid.UUID, role string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func protectedRouter(resolver authpkg.UserResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(testSecret, resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := CallerID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": c.GetString(CtxRole)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func activeUser(role string) *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Type:   role,
		Status: entity.UserActive,
	}
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	user := activeUser("owner")
	token, err := authpkg.SignToken(testSecret, user.ID.String(), "owner", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user})
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
	assert.Contains(t, w.Body.String(), `"role":"owner"`)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := protectedRouter(&stubResolver{user: activeUser("user")})
	w := doGet(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication failed")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	r := protectedRouter(&stubResolver{user: activeUser("user")})
	w := doGet(r, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	r := protectedRouter(&stubResolver{user: activeUser("user")})
	w := doGet(r, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	user := activeUser("user")
	token, err := authpkg.SignToken("some-other-secret", user.ID.String(), "user", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user})
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	token, err := authpkg.SignToken(testSecret, uuid.NewString(), "user", authpkg.TokenTTL)
	require.NoError(t, err)

	// Token is valid but the id no longer resolves to an active account.
	r := protectedRouter(&stubResolver{err: gorm.ErrRecordNotFound})
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication failed")
}

func TestRequireRoles(t *testing.T) {
	user := activeUser("user")
	token, err := authpkg.SignToken(testSecret, user.ID.String(), "user", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user}, RequireRoles(permission.RoleOwner, permission.RoleAdmin))
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequireRolesAllows(t *testing.T) {
	user := activeUser("admin")
	token, err := authpkg.SignToken(testSecret, user.ID.String(), "admin", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user}, RequireRoles(permission.RoleOwner, permission.RoleAdmin))
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission(t *testing.T) {
	user := activeUser("user")
	token, err := authpkg.SignToken(testSecret, user.ID.String(), "user", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user}, RequirePermission(permission.VehicleCreate))
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAllows(t *testing.T) {
	user := activeUser("owner")
	token, err := authpkg.SignToken(testSecret, user.ID.String(), "owner", authpkg.TokenTTL)
	require.NoError(t, err)

	r := protectedRouter(&stubResolver{user: user}, RequirePermission(permission.VehicleCreate))
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}
