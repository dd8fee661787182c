package dbhelper

import (
	"github.com/habitflow/apiv1/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func OpenDB(dsn string) error {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	return err
}

func InitDB() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.ConfirmationCode{},
		&models.Habit{},
		&models.HabitLog{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
		&models.ChallengeHabit{},
	)
}
