package dbhelper

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/habitflow/apiv1/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	DB = db
	require.NoError(t, InitDB())
}

func seedUser(t *testing.T, username, email string) models.User {
	t.Helper()
	user, err := RegisterUser(models.User{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		Email:        email,
		PasswordHash: "irrelevant",
	})
	require.NoError(t, err)
	return user
}

func seedHabit(t *testing.T, userID string, goalValue int) models.Habit {
	t.Helper()
	habit, err := CreateHabit(models.Habit{
		UserID:    userID,
		Title:     "Morning run",
		Category:  "fitness",
		GoalType:  "minutes",
		GoalValue: goalValue,
	})
	require.NoError(t, err)
	return habit
}

func seedChallenge(t *testing.T, creatorID string, start, end time.Time) models.Challenge {
	t.Helper()
	challenge, err := CreateChallenge(models.Challenge{
		CreatedBy: creatorID,
		Title:     "January challenge",
		StartDate: start,
		EndDate:   end,
		IsPublic:  true,
	})
	require.NoError(t, err)
	return challenge
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
