package constants

// Nama operasi yang dipakai route saat memasang gate role.
const (
	CapAttendanceRead  = "attendance:read"
	CapAttendanceWrite = "attendance:write"
	CapMembersRead     = "members:read"
	CapMembersAdd      = "members:add"
	CapMembersWrite    = "members:write"
	CapMembersImport   = "members:import"
	CapGroupsRead      = "groups:read"
	CapGroupsAdd       = "groups:add"
	CapGroupsWrite     = "groups:write"
	CapSchedulesRead   = "schedules:read"
	CapSchedulesWrite  = "schedules:write"
	CapUsersRegister   = "users:register"
)

// Capabilities: tabel statis operasi → role yang diizinkan.
// Satu tempat untuk seluruh aturan akses, dicek sekali di boundary route.
var Capabilities = map[string][]string{
	CapAttendanceRead:  AllRoles,
	CapMembersRead:     AllRoles,
	CapGroupsRead:      AllRoles,
	CapSchedulesRead:   AllRoles,
	CapAttendanceWrite: RecorderRoles,
	CapMembersAdd:      RecorderRoles,
	CapGroupsAdd:       RecorderRoles,
	CapMembersWrite:    AdminOnly,
	CapMembersImport:   AdminOnly,
	CapGroupsWrite:     AdminOnly,
	CapSchedulesWrite:  AdminOnly,
	CapUsersRegister:   AdminOnly,
}

// RoleAllowed melaporkan apakah role boleh menjalankan operasi tsb.
// Operasi yang tidak terdaftar dianggap tertutup.
func RoleAllowed(op, role string) bool {
	allowed, ok := Capabilities[op]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
