package constants

import "testing"

func TestRoleAllowedPartition(t *testing.T) {
	// Read untuk semua role terautentikasi.
	for _, role := range AllRoles {
		for _, op := range []string{CapAttendanceRead, CapMembersRead, CapGroupsRead, CapSchedulesRead} {
			if !RoleAllowed(op, role) {
				t.Errorf("%s should allow %s", op, role)
			}
		}
	}

	// Elevated write: admin + team leader, bukan user biasa.
	for _, op := range []string{CapAttendanceWrite, CapMembersAdd, CapGroupsAdd} {
		if !RoleAllowed(op, RoleAdmin) || !RoleAllowed(op, RoleTeamLeader) {
			t.Errorf("%s should allow admin and team_leader", op)
		}
		if RoleAllowed(op, RoleUser) {
			t.Errorf("%s should reject user", op)
		}
	}

	// Admin only.
	for _, op := range []string{CapGroupsWrite, CapSchedulesWrite, CapMembersImport, CapMembersWrite, CapUsersRegister} {
		if !RoleAllowed(op, RoleAdmin) {
			t.Errorf("%s should allow admin", op)
		}
		if RoleAllowed(op, RoleTeamLeader) || RoleAllowed(op, RoleUser) {
			t.Errorf("%s should be admin only", op)
		}
	}
}

func TestRoleAllowedUnknownOperationClosed(t *testing.T) {
	if RoleAllowed("unknown:op", RoleAdmin) {
		t.Error("unknown operations must be closed, even for admin")
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("%s should be valid", r)
		}
	}
	if IsValidRole("owner") {
		t.Error("owner is not a role in this system")
	}
}
