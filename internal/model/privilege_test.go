package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePrivilegesCoverAllRoles(t *testing.T) {
	for _, role := range DefaultRoles {
		_, ok := RolePrivileges[role.Code]
		assert.True(t, ok, "role %s has no capability entry", role.Code)
	}
}

func TestRolePrivilegesReferenceKnownCodes(t *testing.T) {
	known := make(map[string]bool, len(DefaultPrivileges))
	for _, p := range DefaultPrivileges {
		known[p.Code] = true
	}

	for role, codes := range RolePrivileges {
		for _, code := range codes {
			assert.True(t, known[code], "role %s references unknown privilege %s", role, code)
		}
	}
}

func TestPaymentAccessLimitedToCashierAndOwner(t *testing.T) {
	hasPayments := func(role string) bool {
		for _, code := range RolePrivileges[role] {
			if code == "payment:settle" {
				return true
			}
		}
		return false
	}

	assert.True(t, hasPayments(RoleCashier))
	assert.True(t, hasPayments(RoleOwner))
	assert.False(t, hasPayments(RoleDesigner))
	assert.False(t, hasPayments(RoleSupervisor))
}

func TestOwnerHasEveryPrivilege(t *testing.T) {
	owner := make(map[string]bool)
	for _, code := range RolePrivileges[RoleOwner] {
		owner[code] = true
	}

	for _, p := range DefaultPrivileges {
		assert.True(t, owner[p.Code], "owner missing %s", p.Code)
	}
}

func TestOnlySupervisorAndOwnerMayDeleteOrders(t *testing.T) {
	canDelete := func(role string) bool {
		for _, code := range RolePrivileges[role] {
			if code == "order:delete" {
				return true
			}
		}
		return false
	}

	assert.False(t, canDelete(RoleCashier))
	assert.False(t, canDelete(RoleDesigner))
	assert.True(t, canDelete(RoleSupervisor))
	assert.True(t, canDelete(RoleOwner))
}
