package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmaprakash0998/rental-app-backend/entity"
	"github.com/atmaprakash0998/rental-app-backend/middleware"
	vehiclepkg "github.com/atmaprakash0998/rental-app-backend/vehicle"
)

type mockVehicleService struct {
	listVehicles      func(ctx context.Context) ([]entity.Vehicle, error)
	getVehicle        func(ctx context.Context, vehicleID uuid.UUID, includeDeleted bool) (*entity.Vehicle, error)
	listOwnerVehicles func(ctx context.Context, ownerID uuid.UUID) ([]vehiclepkg.OwnedVehicle, error)
	createVehicle     func(ctx context.Context, ownerID uuid.UUID, req vehiclepkg.CreateVehicleRequest) (*entity.Vehicle, error)
	updateVehicle     func(ctx context.Context, ownerID, vehicleID uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.Vehicle, error)
	deleteVehicle     func(ctx context.Context, ownerID, vehicleID uuid.UUID) error
}

func (m *mockVehicleService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	return m.listVehicles(ctx)
}

func (m *mockVehicleService) GetVehicle(ctx context.Context, vehicleID uuid.UUID, includeDeleted bool) (*entity.Vehicle, error) {
	return m.getVehicle(ctx, vehicleID, includeDeleted)
}

func (m *mockVehicleService) ListOwnerVehicles(ctx context.Context, ownerID uuid.UUID) ([]vehiclepkg.OwnedVehicle, error) {
	return m.listOwnerVehicles(ctx, ownerID)
}

func (m *mockVehicleService) CreateVehicle(ctx context.Context, ownerID uuid.UUID, req vehiclepkg.CreateVehicleRequest) (*entity.Vehicle, error) {
	return m.createVehicle(ctx, ownerID, req)
}

func (m *mockVehicleService) UpdateVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.Vehicle, error) {
	return m.updateVehicle(ctx, ownerID, vehicleID, req)
}

func (m *mockVehicleService) DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error {
	return m.deleteVehicle(ctx, ownerID, vehicleID)
}

// asCaller injects the authenticated identity the way RequireAuth would.
func asCaller(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID.String())
		c.Set(middleware.CtxRole, role)
		c.Next()
	}
}

func vehicleRouter(svc vehiclepkg.Service, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVehicleHandler(svc)
	r := gin.New()
	r.Use(asCaller(callerID, "owner"))
	r.POST("/vehicles/create-vehicle", h.CreateVehicle())
	r.PUT("/vehicles/update-vehicle/:vehicle_id", h.UpdateVehicle())
	r.DELETE("/vehicles/delete-vehicle/:vehicle_id", h.DeleteVehicle())
	return r
}

func TestCreateVehicleHandler(t *testing.T) {
	ownerID := uuid.New()
	svc := &mockVehicleService{
		createVehicle: func(ctx context.Context, oid uuid.UUID, req vehiclepkg.CreateVehicleRequest) (*entity.Vehicle, error) {
			assert.Equal(t, ownerID, oid)
			assert.Equal(t, entity.VehicleScooter, req.Type)
			require.Len(t, req.Documents, 1)
			return &entity.Vehicle{ID: uuid.New(), Name: req.Name}, nil
		},
	}
	r := vehicleRouter(svc, ownerID)

	w := postJSON(r, "/vehicles/create-vehicle", gin.H{
		"name":                "Honda Activa",
		"type":                "scooter",
		"availability_status": "available",
		"rental_duration":     "day",
		"rental_price":        299.0,
		"documents": []gin.H{
			{"document_image": "aGVsbG8=", "document_type": "registration"},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Honda Activa")
}

func TestCreateVehicleHandlerValidation(t *testing.T) {
	r := vehicleRouter(&mockVehicleService{}, uuid.New())

	// Unknown vehicle type fails binding before the service is touched.
	w := postJSON(r, "/vehicles/create-vehicle", gin.H{
		"name":                "Hoverboard",
		"type":                "hoverboard",
		"availability_status": "available",
		"rental_duration":     "day",
		"documents":           []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateVehicleHandlerNotOwner(t *testing.T) {
	svc := &mockVehicleService{
		updateVehicle: func(ctx context.Context, ownerID, vehicleID uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.Vehicle, error) {
			return nil, vehiclepkg.ErrNotOwner
		},
	}
	r := vehicleRouter(svc, uuid.New())

	w := putJSON(r, "/vehicles/update-vehicle/"+uuid.NewString(), gin.H{"name": "Renamed"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestUpdateVehicleHandlerNotFound(t *testing.T) {
	svc := &mockVehicleService{
		updateVehicle: func(ctx context.Context, ownerID, vehicleID uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.Vehicle, error) {
			return nil, vehiclepkg.ErrVehicleNotFound
		},
	}
	r := vehicleRouter(svc, uuid.New())

	w := putJSON(r, "/vehicles/update-vehicle/"+uuid.NewString(), gin.H{"name": "Renamed"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Vehicle not found")
}

func TestUpdateVehicleHandlerBadID(t *testing.T) {
	r := vehicleRouter(&mockVehicleService{}, uuid.New())

	w := putJSON(r, "/vehicles/update-vehicle/not-a-uuid", gin.H{"name": "Renamed"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid vehicle id")
}

func TestDeleteVehicleHandler(t *testing.T) {
	vehicleID := uuid.New()
	deleted := false
	svc := &mockVehicleService{
		deleteVehicle: func(ctx context.Context, ownerID, vid uuid.UUID) error {
			deleted = true
			assert.Equal(t, vehicleID, vid)
			return nil
		},
	}
	r := vehicleRouter(svc, uuid.New())

	req := httptest.NewRequest(http.MethodDelete, "/vehicles/delete-vehicle/"+vehicleID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, deleted)
}
