package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&groupModel.GroupModel{},
		&memberModel.MemberModel{},
		&scheduleModel.ScheduleModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createGroup(t *testing.T, db *gorm.DB, name string) groupModel.GroupModel {
	t.Helper()
	g := groupModel.GroupModel{Name: name, Type: groupModel.GroupTypeAdult}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("create group: %v", err)
	}
	return g
}

func createMember(t *testing.T, db *gorm.DB, groupID uint, first, last string) memberModel.MemberModel {
	t.Helper()
	m := memberModel.MemberModel{
		FirstName: first, LastName: last,
		Gender: groupModel.GenderMale, GroupID: groupID,
		DateJoined: time.Now(), IsActive: true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m
}

func TestNameTaken(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, "Alpha")

	taken, err := NameTaken(db, "Alpha", 0)
	if err != nil {
		t.Fatalf("name taken: %v", err)
	}
	if !taken {
		t.Error("expected Alpha to be taken")
	}

	// Grup sendiri dikecualikan saat edit.
	taken, err = NameTaken(db, "Alpha", g.GroupID)
	if err != nil {
		t.Fatalf("name taken excl: %v", err)
	}
	if taken {
		t.Error("own name should not count as taken")
	}

	taken, err = NameTaken(db, "Beta", 0)
	if err != nil {
		t.Fatalf("name taken beta: %v", err)
	}
	if taken {
		t.Error("Beta should be free")
	}
}

func TestDeleteGroupRestrictedWhileMembersExist(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, "Alpha")
	m := createMember(t, db, g.GroupID, "John", "Smith")

	if err := DeleteGroup(db, g.GroupID); !errors.Is(err, ErrGroupHasMembers) {
		t.Fatalf("delete with members: got %v, want ErrGroupHasMembers", err)
	}

	// Setelah anggota pindah, hapus boleh.
	other := createGroup(t, db, "Beta")
	if err := db.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", m.MemberID).
		Update("member_group_id", other.GroupID).Error; err != nil {
		t.Fatalf("move member: %v", err)
	}
	if err := DeleteGroup(db, g.GroupID); err != nil {
		t.Fatalf("delete empty group: %v", err)
	}
}

func TestDeleteGroupNullsScheduleReference(t *testing.T) {
	db := openTestDB(t)
	g := createGroup(t, db, "Alpha")

	schedule := scheduleModel.ScheduleModel{Title: "Alpha Meeting", Date: time.Now(), GroupID: &g.GroupID}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	if err := DeleteGroup(db, g.GroupID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded scheduleModel.ScheduleModel
	if err := db.First(&reloaded, "schedule_id = ?", schedule.ScheduleID).Error; err != nil {
		t.Fatalf("reload schedule: %v", err)
	}
	if reloaded.GroupID != nil {
		t.Errorf("schedule group_id = %v, want nil after group delete", *reloaded.GroupID)
	}
}

func TestDeleteGroupNotFound(t *testing.T) {
	db := openTestDB(t)
	if err := DeleteGroup(db, 999); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("got %v, want ErrGroupNotFound", err)
	}
}

func TestCreateGroupWithLeader(t *testing.T) {
	db := openTestDB(t)
	origin := createGroup(t, db, "Origin")
	leader := createMember(t, db, origin.GroupID, "Jane", "Doe")
	m1 := createMember(t, db, origin.GroupID, "John", "Smith")
	m2 := createMember(t, db, origin.GroupID, "Bob", "Brown")

	group, err := CreateGroupWithLeader(db, "New Team", leader.MemberID, []uint{m1.MemberID, m2.MemberID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var moved []memberModel.MemberModel
	if err := db.Where("member_group_id = ?", group.GroupID).Find(&moved).Error; err != nil {
		t.Fatalf("find moved: %v", err)
	}
	if len(moved) != 3 {
		t.Fatalf("moved = %d, want leader + 2 members", len(moved))
	}

	var reloadedLeader memberModel.MemberModel
	if err := db.First(&reloadedLeader, "member_id = ?", leader.MemberID).Error; err != nil {
		t.Fatalf("reload leader: %v", err)
	}
	if reloadedLeader.Position == nil || *reloadedLeader.Position != "Team Leader" {
		t.Errorf("leader position = %v, want Team Leader", reloadedLeader.Position)
	}
}

func TestCreateGroupWithLeaderKeepsExistingPosition(t *testing.T) {
	db := openTestDB(t)
	origin := createGroup(t, db, "Origin")
	leader := createMember(t, db, origin.GroupID, "Jane", "Doe")
	pos := "Worship Head"
	if err := db.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", leader.MemberID).
		Update("member_position", pos).Error; err != nil {
		t.Fatalf("set position: %v", err)
	}

	if _, err := CreateGroupWithLeader(db, "New Team", leader.MemberID, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	var reloaded memberModel.MemberModel
	if err := db.First(&reloaded, "member_id = ?", leader.MemberID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Position == nil || *reloaded.Position != pos {
		t.Errorf("position = %v, want unchanged %q", reloaded.Position, pos)
	}
}

func TestCreateGroupWithLeaderValidation(t *testing.T) {
	db := openTestDB(t)
	origin := createGroup(t, db, "Origin")
	leader := createMember(t, db, origin.GroupID, "Jane", "Doe")

	if _, err := CreateGroupWithLeader(db, "Origin", leader.MemberID, nil); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate name: got %v", err)
	}
	if _, err := CreateGroupWithLeader(db, "Fresh", 999, nil); !errors.Is(err, ErrLeaderNotFound) {
		t.Errorf("missing leader: got %v", err)
	}
}
