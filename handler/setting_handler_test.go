package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	settingpkg "github.com/atmaprakash0998/rental-app-backend/setting"
)

type mockSettingService struct {
	getByKeys func(ctx context.Context, keys []string) ([]settingpkg.KV, error)
	getAll    func(ctx context.Context) ([]settingpkg.KV, error)
	create    func(ctx context.Context, req settingpkg.CreateRequest, addedBy string) (*entity.Setting, error)
	update    func(ctx context.Context, id uint, req settingpkg.UpdateRequest, modifiedBy string) (*entity.Setting, error)
	delete    func(ctx context.Context, id uint, modifiedBy string) error
}

func (m *mockSettingService) GetByKeys(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
	return m.getByKeys(ctx, keys)
}

func (m *mockSettingService) GetAll(ctx context.Context) ([]settingpkg.KV, error) {
	return m.getAll(ctx)
}

func (m *mockSettingService) Create(ctx context.Context, req settingpkg.CreateRequest, addedBy string) (*entity.Setting, error) {
	return m.create(ctx, req, addedBy)
}

func (m *mockSettingService) Update(ctx context.Context, id uint, req settingpkg.UpdateRequest, modifiedBy string) (*entity.Setting, error) {
	return m.update(ctx, id, req, modifiedBy)
}

func (m *mockSettingService) Delete(ctx context.Context, id uint, modifiedBy string) error {
	return m.delete(ctx, id, modifiedBy)
}

func settingKeysRouter(svc settingpkg.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/settings/keys", NewSettingHandler(svc).GetByKeys())
	return r
}

func getSettings(r *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/settings/keys"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetByKeysRepeatedParams(t *testing.T) {
	var keysSeen []string
	r := settingKeysRouter(&mockSettingService{
		getByKeys: func(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
			keysSeen = keys
			return []settingpkg.KV{
				{Key: "max_rent_days", Value: datatypes.JSON(`30`)},
				{Key: "support_email", Value: datatypes.JSON(`"help@example.com"`)},
			}, nil
		},
	})

	w := getSettings(r, "?keys=max_rent_days&keys=support_email")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"max_rent_days", "support_email"}, keysSeen)
}

func TestGetByKeysCommaSeparated(t *testing.T) {
	var keysSeen []string
	r := settingKeysRouter(&mockSettingService{
		getByKeys: func(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
			keysSeen = keys
			return nil, nil
		},
	})

	w := getSettings(r, "?keys=max_rent_days,%20support_email&keys=currency")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"max_rent_days", "support_email", "currency"}, keysSeen)
}

func TestGetByKeysEmpty(t *testing.T) {
	r := settingKeysRouter(&mockSettingService{
		getByKeys: func(ctx context.Context, keys []string) ([]settingpkg.KV, error) {
			if len(keys) == 0 {
				return nil, settingpkg.ErrNoKeys
			}
			return nil, nil
		},
	})

	w := getSettings(r, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least one key is required")
}
