package domain

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role       Role
		capability Capability
		want       bool
	}{
		{RoleAdmin, CapView, true},
		{RoleAdmin, CapAdd, true},
		{RoleAdmin, CapViewAudit, true},
		{RoleAdmin, CapManageUsers, true},
		{RoleAccountant, CapView, true},
		{RoleAccountant, CapAdd, true},
		{RoleAccountant, CapEdit, true},
		{RoleAccountant, CapDelete, false},
		{RoleAccountant, CapViewAudit, false},
		{RoleViewer, CapView, true},
		{RoleViewer, CapAdd, false},
		{RoleViewer, CapEdit, false},
		{Role("unknown"), CapView, false},
	}

	for _, tc := range cases {
		if got := tc.role.HasCapability(tc.capability); got != tc.want {
			t.Errorf("%s.HasCapability(%s) = %v, want %v", tc.role, tc.capability, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleAccountant, RoleViewer} {
		if !role.Valid() {
			t.Errorf("expected %s to be valid", role)
		}
	}
	if Role("Superuser").Valid() {
		t.Errorf("expected unknown role to be invalid")
	}
}
