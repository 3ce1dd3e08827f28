package service

import (
	"strings"

	"gorm.io/gorm"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

/* ==========================
   Roster (anggota yang berlaku utk jadwal)
========================== */

// ApplicableMembers mengambil anggota aktif untuk jadwal tertentu:
// dibatasi ke grup jadwal bila jadwal ber-scope grup, selain itu semua
// anggota aktif. schedule nil = semua anggota aktif.
func ApplicableMembers(db *gorm.DB, schedule *scheduleModel.ScheduleModel) ([]memberModel.MemberModel, error) {
	q := db.Preload("Group").
		Where("member_is_active = ?", true).
		Order("member_last_name ASC, member_first_name ASC")
	if schedule != nil && schedule.GroupID != nil {
		q = q.Where("member_group_id = ?", *schedule.GroupID)
	}
	var members []memberModel.MemberModel
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FilterMembers menyaring hasil roster di memori: group id dan/atau
// position (exact match), sesuai filter tab di halaman kehadiran.
func FilterMembers(members []memberModel.MemberModel, groupID *uint, position string) []memberModel.MemberModel {
	out := make([]memberModel.MemberModel, 0, len(members))
	for _, m := range members {
		if groupID != nil && m.GroupID != *groupID {
			continue
		}
		if position != "" && (m.Position == nil || *m.Position != position) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PositionHolders: hanya anggota yang punya position terisi.
func PositionHolders(members []memberModel.MemberModel) []memberModel.MemberModel {
	out := make([]memberModel.MemberModel, 0, len(members))
	for _, m := range members {
		if m.Position != nil && strings.TrimSpace(*m.Position) != "" {
			out = append(out, m)
		}
	}
	return out
}

// Positions mengumpulkan daftar position unik (urut kemunculan) untuk dropdown filter.
func Positions(members []memberModel.MemberModel) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range members {
		if m.Position == nil {
			continue
		}
		p := strings.TrimSpace(*m.Position)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

/* ==========================
   Ringkasan per grup
========================== */

type GroupSummary struct {
	Group       groupModel.GroupModel    `json:"group"`
	MemberCount int                      `json:"member_count"`
	Leader      *memberModel.MemberModel `json:"leader,omitempty"`
}

// GroupSummaries menghitung per grup: jumlah anggota dalam set terfilter
// dan "leader" hasil inferensi. Dihitung segar per request, tidak disimpan.
func GroupSummaries(groups []groupModel.GroupModel, members []memberModel.MemberModel) []GroupSummary {
	byGroup := map[uint][]memberModel.MemberModel{}
	for _, m := range members {
		byGroup[m.GroupID] = append(byGroup[m.GroupID], m)
	}

	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		gm := byGroup[g.GroupID]
		out = append(out, GroupSummary{
			Group:       g,
			MemberCount: len(gm),
			Leader:      InferLeader(gm),
		})
	}
	return out
}

// InferLeader: anggota aktif pertama yang position-nya memuat
// "leader" atau "head" (case-insensitive). Nil kalau tidak ada.
// Heuristik substring ini sengaja dipertahankan apa adanya.
func InferLeader(members []memberModel.MemberModel) *memberModel.MemberModel {
	for i := range members {
		m := &members[i]
		if !m.IsActive || m.Position == nil {
			continue
		}
		pos := strings.ToLower(*m.Position)
		if strings.Contains(pos, "leader") || strings.Contains(pos, "head") {
			return m
		}
	}
	return nil
}
