package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/constants"
	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
	userModel "gerejaku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gerejaku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&groupModel.GroupModel{},
		&memberModel.MemberModel{},
		&memberModel.ImportLogModel{},
		&scheduleModel.ScheduleModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi DB: %v", err)
	}
	log.Println("✅ Migrasi DB selesai.")
}

// Seed mengisi akun admin default + grup bawaan saat tabel masih kosong.
func Seed() {
	var userCount int64
	DB.Model(&userModel.UserModel{}).Count(&userCount)
	if userCount == 0 {
		password := configs.GetEnv("ADMIN_PASSWORD", "Admin123!")
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed admin err: %v", err)
			return
		}
		admin := userModel.UserModel{
			UserName: "admin",
			Email:    "admin@church.com",
			FullName: "Administrator",
			Password: string(hashed),
			Role:     constants.RoleAdmin,
			IsActive: true,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("seed admin err: %v", err)
		} else {
			log.Println("✅ Seed admin selesai.")
		}
	}

	var groupCount int64
	DB.Model(&groupModel.GroupModel{}).Count(&groupCount)
	if groupCount == 0 {
		male := groupModel.GenderMale
		female := groupModel.GenderFemale
		defaults := []groupModel.GroupModel{
			{Name: "Adult - Male", Type: groupModel.GroupTypeAdult, GenderRestriction: &male},
			{Name: "Adult - Female", Type: groupModel.GroupTypeAdult, GenderRestriction: &female},
			{Name: "Young Adult - Male", Type: groupModel.GroupTypeYoungAdult, GenderRestriction: &male},
			{Name: "Young Adult - Female", Type: groupModel.GroupTypeYoungAdult, GenderRestriction: &female},
			{Name: "Children - Male", Type: groupModel.GroupTypeChildren, GenderRestriction: &male},
			{Name: "Children - Female", Type: groupModel.GroupTypeChildren, GenderRestriction: &female},
		}
		if err := DB.Create(&defaults).Error; err != nil {
			log.Printf("seed groups err: %v", err)
		} else {
			log.Println("✅ Seed grup default selesai.")
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
