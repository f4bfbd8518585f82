package database

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"extratime/models"
)

var DB *gorm.DB

func Init(dsn string, log zerolog.Logger) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	if err := DB.AutoMigrate(&models.User{}, &models.OvertimeRecord{}); err != nil {
		return err
	}

	return seedDefaultAdmin(log)
}

// seedDefaultAdmin creates the bootstrap admin account on first start.
// Credentials are never stored in plaintext; only the bcrypt hash is kept.
func seedDefaultAdmin(log zerolog.Logger) error {
	var count int64
	DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Username:     "admin",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	if result := DB.Create(&admin); result.Error != nil {
		return result.Error
	}

	log.Info().Str("username", "admin").Msg("default admin user created")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
