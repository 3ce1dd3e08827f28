package constants

const (
	RoleAdmin      = "admin"
	RoleTeamLeader = "team_leader"
	RoleUser       = "user"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeamLeader,
		RoleUser,
	}

	// Admin + team leader: boleh mencatat kehadiran & menambah anggota.
	RecorderRoles = []string{
		RoleAdmin,
		RoleTeamLeader,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
