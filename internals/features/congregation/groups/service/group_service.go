package service

import (
	"errors"

	"gorm.io/gorm"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrGroupHasMembers = errors.New("group still has members")
	ErrDuplicateName   = errors.New("group name already exists")
	ErrLeaderNotFound  = errors.New("leader member not found")
)

// NameTaken: keunikan nama grup dicek lewat lookup eksplisit,
// bukan constraint di store.
func NameTaken(db *gorm.DB, name string, excludeID uint) (bool, error) {
	q := db.Model(&groupModel.GroupModel{}).Where("group_name = ?", name)
	if excludeID != 0 {
		q = q.Where("group_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteGroup menghapus grup dengan aturan referensial:
// masih ada anggota → tolak; jadwal yang merujuk → group_id di-NULL-kan.
func DeleteGroup(db *gorm.DB, id uint) error {
	var group groupModel.GroupModel
	if err := db.First(&group, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return err
	}

	var memberCount int64
	if err := db.Model(&memberModel.MemberModel{}).
		Where("member_group_id = ?", id).Count(&memberCount).Error; err != nil {
		return err
	}
	if memberCount > 0 {
		return ErrGroupHasMembers
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_group_id = ?", id).
			Update("schedule_group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&groupModel.GroupModel{}, "group_id = ?", id).Error
	})
}

// CreateGroupWithLeader membuat grup baru dari halaman kehadiran:
// validasi nama unik + leader ada, lalu pindahkan leader dan anggota
// terpilih ke grup baru. Leader tanpa position diberi "Team Leader".
func CreateGroupWithLeader(db *gorm.DB, name string, leaderID uint, selectedMembers []uint) (*groupModel.GroupModel, error) {
	taken, err := NameTaken(db, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	var leader memberModel.MemberModel
	if err := db.First(&leader, "member_id = ?", leaderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaderNotFound
		}
		return nil, err
	}

	group := groupModel.GroupModel{
		Name: name,
		Type: groupModel.GroupTypeAdult,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		updates := map[string]any{"member_group_id": group.GroupID}
		if leader.Position == nil || *leader.Position == "" {
			updates["member_position"] = "Team Leader"
		}
		if err := tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", leaderID).
			Updates(updates).Error; err != nil {
			return err
		}

		if len(selectedMembers) > 0 {
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id IN ?", selectedMembers).
				Update("member_group_id", group.GroupID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}
