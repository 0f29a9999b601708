package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("user"))
	assert.True(t, ValidRole("owner"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}

func TestForRole(t *testing.T) {
	ownerPerms := ForRole("owner")
	assert.NotEmpty(t, ownerPerms)
	assert.Contains(t, ownerPerms, VehicleCreate)

	adminPerms := ForRole("admin")
	assert.Greater(t, len(adminPerms), len(ownerPerms))

	assert.Empty(t, ForRole("ghost"))
}

func TestHas(t *testing.T) {
	assert.True(t, Has("owner", VehicleCreate))
	assert.True(t, Has("admin", AdminUpdate))
	assert.False(t, Has("user", VehicleCreate))
	assert.False(t, Has("unknown", VehicleCreate))
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleIn("owner", RoleOwner, RoleAdmin))
	assert.True(t, RoleIn("admin", RoleOwner, RoleAdmin))
	assert.False(t, RoleIn("user", RoleOwner, RoleAdmin))
	assert.False(t, RoleIn("", RoleOwner))
}
