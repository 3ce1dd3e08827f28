package service

import (
	"testing"
	"time"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

func strPtr(s string) *string { return &s }

func member(id, groupID uint, first, last string, position *string, active bool) memberModel.MemberModel {
	return memberModel.MemberModel{
		MemberID: id, GroupID: groupID,
		FirstName: first, LastName: last,
		Gender: groupModel.GenderMale, Position: position, IsActive: active,
	}
}

func TestInferLeader(t *testing.T) {
	tests := []struct {
		name    string
		members []memberModel.MemberModel
		wantID  uint // 0 = nil leader
	}{
		{
			name: "team leader position matches",
			members: []memberModel.MemberModel{
				member(1, 1, "John", "Smith", nil, true),
				member(2, 1, "Jane", "Doe", strPtr("Team Leader"), true),
			},
			wantID: 2,
		},
		{
			name: "head matches case-insensitively",
			members: []memberModel.MemberModel{
				member(1, 1, "John", "Smith", strPtr("Department HEAD"), true),
			},
			wantID: 1,
		},
		{
			name: "inactive member never leads",
			members: []memberModel.MemberModel{
				member(1, 1, "John", "Smith", strPtr("Leader"), false),
				member(2, 1, "Jane", "Doe", strPtr("leader of worship"), true),
			},
			wantID: 2,
		},
		{
			name: "no matching position means no leader",
			members: []memberModel.MemberModel{
				member(1, 1, "John", "Smith", strPtr("Treasurer"), true),
				member(2, 1, "Jane", "Doe", nil, true),
			},
			wantID: 0,
		},
		{
			name: "first match wins",
			members: []memberModel.MemberModel{
				member(1, 1, "John", "Smith", strPtr("Team Leader"), true),
				member(2, 1, "Jane", "Doe", strPtr("Group Head"), true),
			},
			wantID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferLeader(tt.members)
			if tt.wantID == 0 {
				if got != nil {
					t.Fatalf("leader = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.MemberID != tt.wantID {
				t.Fatalf("leader = %+v, want member %d", got, tt.wantID)
			}
		})
	}
}

func TestGroupSummaries(t *testing.T) {
	groups := []groupModel.GroupModel{
		{GroupID: 1, Name: "Alpha", Type: groupModel.GroupTypeAdult},
		{GroupID: 2, Name: "Beta", Type: groupModel.GroupTypeAdult},
		{GroupID: 3, Name: "Empty", Type: groupModel.GroupTypeChildren},
	}
	members := []memberModel.MemberModel{
		member(1, 1, "John", "Smith", strPtr("Team Leader"), true),
		member(2, 1, "Jane", "Doe", nil, true),
		member(3, 2, "Bob", "Brown", strPtr("Treasurer"), true),
	}

	summaries := GroupSummaries(groups, members)
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}

	if summaries[0].MemberCount != 2 {
		t.Errorf("alpha count = %d, want 2", summaries[0].MemberCount)
	}
	if summaries[0].Leader == nil || summaries[0].Leader.MemberID != 1 {
		t.Errorf("alpha leader = %+v, want member 1", summaries[0].Leader)
	}

	if summaries[1].MemberCount != 1 {
		t.Errorf("beta count = %d, want 1", summaries[1].MemberCount)
	}
	if summaries[1].Leader != nil {
		t.Errorf("beta leader = %+v, want nil", summaries[1].Leader)
	}

	if summaries[2].MemberCount != 0 || summaries[2].Leader != nil {
		t.Errorf("empty group summary = %+v, want zero members and no leader", summaries[2])
	}
}

func TestFilterMembers(t *testing.T) {
	members := []memberModel.MemberModel{
		member(1, 1, "John", "Smith", strPtr("Team Leader"), true),
		member(2, 2, "Jane", "Doe", strPtr("Treasurer"), true),
		member(3, 2, "Bob", "Brown", nil, true),
	}

	gid := uint(2)
	got := FilterMembers(members, &gid, "")
	if len(got) != 2 {
		t.Fatalf("group filter count = %d, want 2", len(got))
	}

	got = FilterMembers(members, nil, "Treasurer")
	if len(got) != 1 || got[0].MemberID != 2 {
		t.Fatalf("position filter = %+v, want member 2", got)
	}

	// Posisi harus exact match, bukan substring.
	got = FilterMembers(members, nil, "Treas")
	if len(got) != 0 {
		t.Fatalf("partial position should not match, got %d", len(got))
	}

	got = FilterMembers(members, &gid, "Treasurer")
	if len(got) != 1 || got[0].MemberID != 2 {
		t.Fatalf("combined filter = %+v, want member 2", got)
	}
}

func TestPositionHoldersAndPositions(t *testing.T) {
	members := []memberModel.MemberModel{
		member(1, 1, "John", "Smith", strPtr("Team Leader"), true),
		member(2, 1, "Jane", "Doe", strPtr("  "), true),
		member(3, 1, "Bob", "Brown", nil, true),
		member(4, 1, "Ann", "Lee", strPtr("Team Leader"), true),
	}

	holders := PositionHolders(members)
	if len(holders) != 2 {
		t.Fatalf("holders = %d, want 2", len(holders))
	}

	positions := Positions(members)
	if len(positions) != 1 || positions[0] != "Team Leader" {
		t.Fatalf("positions = %v, want unique [Team Leader]", positions)
	}
}

func TestInactiveMemberPersistsAsInactive(t *testing.T) {
	db := openTestDB(t)

	group := groupModel.GroupModel{Name: "Alpha", Type: groupModel.GroupTypeAdult}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	m := memberModel.MemberModel{
		FirstName: "Old", LastName: "Timer",
		Gender: groupModel.GenderMale, GroupID: group.GroupID,
		DateJoined: time.Now(), IsActive: false,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}

	var reloaded memberModel.MemberModel
	if err := db.First(&reloaded, "member_id = ?", m.MemberID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("member created inactive came back active")
	}
}

func TestApplicableMembersScoping(t *testing.T) {
	db := openTestDB(t)

	male := groupModel.GenderMale
	g1 := groupModel.GroupModel{Name: "Alpha", Type: groupModel.GroupTypeAdult, GenderRestriction: &male}
	g2 := groupModel.GroupModel{Name: "Beta", Type: groupModel.GroupTypeAdult, GenderRestriction: &male}
	for _, g := range []*groupModel.GroupModel{&g1, &g2} {
		if err := db.Create(g).Error; err != nil {
			t.Fatalf("seed group: %v", err)
		}
	}

	seed := func(first, last string, groupID uint, active bool) {
		m := memberModel.MemberModel{
			FirstName: first, LastName: last,
			Gender: groupModel.GenderMale, GroupID: groupID,
			DateJoined: time.Now(), IsActive: active,
		}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed member: %v", err)
		}
	}
	seed("John", "Smith", g1.GroupID, true)
	seed("Jane", "Doe", g2.GroupID, true)
	seed("Old", "Timer", g1.GroupID, false)

	// Tanpa jadwal → semua anggota aktif.
	all, err := ApplicableMembers(db, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all active = %d, want 2 (inactive excluded)", len(all))
	}
	// Urutan: last name lalu first name.
	if all[0].LastName != "Doe" || all[1].LastName != "Smith" {
		t.Errorf("order = %s, %s; want Doe, Smith", all[0].LastName, all[1].LastName)
	}

	// Jadwal ber-scope grup → hanya anggota grup tsb.
	schedule := scheduleModel.ScheduleModel{Title: "Alpha Meeting", Date: time.Now(), GroupID: &g1.GroupID}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	scoped, err := ApplicableMembers(db, &schedule)
	if err != nil {
		t.Fatalf("scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].FirstName != "John" {
		t.Fatalf("scoped = %+v, want only John", scoped)
	}

	// Jadwal tanpa grup → semua anggota aktif.
	open := scheduleModel.ScheduleModel{Title: "All Hands", Date: time.Now()}
	if err := db.Create(&open).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	openMembers, err := ApplicableMembers(db, &open)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(openMembers) != 2 {
		t.Fatalf("open schedule members = %d, want 2", len(openMembers))
	}
}
