package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
)

/* ==========================
   Hasil parse per baris
========================== */

const (
	skipTooFewFields = "too_few_fields"
	skipRedacted     = "redacted"
	skipBadGender    = "bad_gender"
	skipShortName    = "short_name"
	skipDuplicate    = "duplicate"
	skipNoGroup      = "no_matching_group"
)

type importLine struct {
	MemberNumber string // kosong = tidak ada
	FirstName    string
	LastName     string
	Gender       string
}

type SkippedLine struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Added        int           `json:"added"`
	Skipped      int           `json:"skipped"`
	SkippedLines []SkippedLine `json:"skipped_lines,omitempty"`
}

// parseImportLine menginterpretasi satu baris tab-separated:
// [nomor anggota] TAB [nama lengkap] TAB [gender].
// Return kedua = alasan skip ("" berarti valid).
func parseImportLine(line string) (importLine, string) {
	var out importLine

	parts := splitTabs(line)
	if len(parts) < 3 {
		return out, skipTooFewFields
	}

	memberNumber := parts[0]
	fullName := parts[1]
	genderStr := parts[2]

	// Data teredaksi / nomor kosong. Kolom pertama yang ternyata nama
	// (ada kurung siku/kurung biasa, mis. "Jun[이준하]") digeser jadi nama;
	// nomor teredaksi dengan kolom nama normal cukup dibuang nomornya.
	if strings.Contains(memberNumber, "*****") || strings.Contains(fullName, "*****") || memberNumber == "" {
		switch {
		case strings.Contains(memberNumber, "[") || strings.Contains(memberNumber, "("):
			fullName = memberNumber
			genderStr = parts[1]
			memberNumber = ""
		case strings.Contains(fullName, "[") || strings.Contains(fullName, "("):
			memberNumber = ""
		default:
			return out, skipRedacted
		}
	}

	switch {
	case strings.EqualFold(genderStr, "Male"):
		out.Gender = groupModel.GenderMale
	case strings.EqualFold(genderStr, "Female"):
		out.Gender = groupModel.GenderFemale
	default:
		return out, skipBadGender
	}

	cleanName := stripAnnotation(fullName)

	tokens := strings.Fields(cleanName)
	if len(tokens) < 2 {
		return out, skipShortName
	}
	out.FirstName = strings.Join(tokens[:len(tokens)-1], " ")
	out.LastName = tokens[len(tokens)-1]
	out.MemberNumber = memberNumber
	return out, ""
}

// splitTabs memecah baris pada TAB, membuang field kosong, dan trim sisanya.
func splitTabs(line string) []string {
	raw := strings.Split(line, "\t")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}

// stripAnnotation membuang anotasi berkurung di ekor nama, mis.
// "Jun[이준하]" → "Jun" atau "Amy (서윤지)" → "Amy".
// Yang dipotong adalah kurung yang muncul lebih dulu.
func stripAnnotation(name string) string {
	bracket := -1
	if strings.Contains(name, "[") && strings.Contains(name, "]") {
		bracket = strings.Index(name, "[")
	}
	paren := -1
	if strings.Contains(name, "(") && strings.Contains(name, ")") {
		paren = strings.Index(name, "(")
	}

	cut := bracket
	if cut == -1 || (paren != -1 && paren < cut) {
		cut = paren
	}
	if cut == -1 {
		return name
	}
	return strings.TrimSpace(name[:cut])
}

/* ==========================
   Resolusi grup target
========================== */

// resolveGroup memilih grup untuk anggota baru:
// grup default kalau restriksi gendernya cocok, lalu grup adult
// dengan gender sama, lalu grup apa pun dengan gender sama.
func resolveGroup(groups []groupModel.GroupModel, gender string, defaultGroupID *uint) *groupModel.GroupModel {
	matches := func(g groupModel.GroupModel) bool {
		return g.GenderRestriction != nil && *g.GenderRestriction == gender
	}

	if defaultGroupID != nil {
		for i := range groups {
			if groups[i].GroupID == *defaultGroupID && matches(groups[i]) {
				return &groups[i]
			}
		}
	}
	for i := range groups {
		if matches(groups[i]) && groups[i].Type == groupModel.GroupTypeAdult {
			return &groups[i]
		}
	}
	for i := range groups {
		if matches(groups[i]) {
			return &groups[i]
		}
	}
	return nil
}

/* ==========================
   Import
========================== */

// ImportMembers memproses teks mentah baris demi baris dan meng-commit
// seluruh anggota baru dalam satu transaksi (all-or-nothing).
// Baris bermasalah tidak pernah fatal, hanya dihitung skip.
func ImportMembers(db *gorm.DB, raw string, defaultGroupID *uint) (ImportResult, error) {
	var result ImportResult

	if strings.TrimSpace(raw) == "" {
		return result, errors.New("member data kosong")
	}

	var groups []groupModel.GroupModel
	if err := db.Order("group_id ASC").Find(&groups).Error; err != nil {
		return result, err
	}

	var staged []memberModel.MemberModel
	now := time.Now()

	for _, line := range strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' }) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		parsed, reason := parseImportLine(trimmed)
		if reason != "" {
			result.Skipped++
			result.SkippedLines = append(result.SkippedLines, SkippedLine{Line: trimmed, Reason: reason})
			continue
		}

		exists, err := memberExists(db, parsed)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			result.SkippedLines = append(result.SkippedLines, SkippedLine{Line: trimmed, Reason: skipDuplicate})
			continue
		}

		group := resolveGroup(groups, parsed.Gender, defaultGroupID)
		if group == nil {
			result.Skipped++
			result.SkippedLines = append(result.SkippedLines, SkippedLine{Line: trimmed, Reason: skipNoGroup})
			continue
		}

		member := memberModel.MemberModel{
			FirstName:  parsed.FirstName,
			LastName:   parsed.LastName,
			Gender:     parsed.Gender,
			GroupID:    group.GroupID,
			DateJoined: now,
			IsActive:   true,
		}
		if parsed.MemberNumber != "" {
			mn := parsed.MemberNumber
			member.MemberNumber = &mn
		}
		staged = append(staged, member)
	}

	result.Added = len(staged)

	// Commit satu kali di akhir, termasuk log audit import.
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(staged) > 0 {
			if err := tx.Create(&staged).Error; err != nil {
				return err
			}
		}
		logRow := memberModel.ImportLogModel{
			DefaultGroupID: defaultGroupID,
			AddedCount:     result.Added,
			SkippedCount:   result.Skipped,
		}
		if len(result.SkippedLines) > 0 {
			if payload, err := json.Marshal(result.SkippedLines); err == nil {
				logRow.Details = datatypes.JSON(payload)
			}
		}
		return tx.Create(&logRow).Error
	})
	if err != nil {
		result.Added = 0
		return result, err
	}
	return result, nil
}

func memberExists(db *gorm.DB, parsed importLine) (bool, error) {
	q := db.Model(&memberModel.MemberModel{})
	if parsed.MemberNumber != "" {
		q = q.Where("member_number = ? OR (member_first_name = ? AND member_last_name = ?)",
			parsed.MemberNumber, parsed.FirstName, parsed.LastName)
	} else {
		q = q.Where("member_first_name = ? AND member_last_name = ?", parsed.FirstName, parsed.LastName)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
