package dbhelper

import (
	"errors"
	"time"

	"github.com/habitflow/apiv1/models"
	"gorm.io/gorm"
)

func CreateHabit(habit models.Habit) (models.Habit, error) {
	if _, err := GetUser(habit.UserID); err != nil {
		return habit, err
	}
	habit.Enabled = true
	err := DB.Create(&habit).Error
	return habit, err
}

func GetHabit(id string) (models.Habit, error) {
	var habit models.Habit
	err := DB.Where("id = ?", id).First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return habit, ErrHabitNotFound
	}
	return habit, err
}

func ListHabits(skip, limit int) ([]models.Habit, error) {
	var habits []models.Habit
	err := DB.Offset(skip).Limit(limit).Find(&habits).Error
	return habits, err
}

func ListHabitsByUser(userID string, activeOnly bool) ([]models.Habit, error) {
	var habits []models.Habit
	query := DB.Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("enabled = ?", true)
	}
	err := query.Find(&habits).Error
	return habits, err
}

func UpdateHabit(id string, updates map[string]interface{}) (models.Habit, error) {
	habit, err := GetHabit(id)
	if err != nil {
		return habit, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&habit).Updates(updates).Error; err != nil {
			return habit, err
		}
	}
	return GetHabit(id)
}

func DeleteHabit(id string) error {
	habit, err := GetHabit(id)
	if err != nil {
		return err
	}
	tx := DB.Begin()
	defer tx.Rollback()
	if err := tx.Exec("DELETE FROM habit_logs WHERE habit_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&habit).Error; err != nil {
		return err
	}
	tx.Commit()
	return nil
}

// CreateHabitLog records a progress entry and, when the entry reaches the
// habit's goal, applies challenge points in the same transaction so a log
// and its score effects are never persisted separately.
func CreateHabitLog(log models.HabitLog) (models.HabitLog, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var habit models.Habit
	habitResult := tx.Raw("SELECT * FROM habits WHERE id = ?", log.HabitID).Scan(&habit)
	if habitResult.Error != nil {
		return log, habitResult.Error
	}
	if habitResult.RowsAffected == 0 {
		return log, ErrHabitNotFound
	}
	var user models.User
	userResult := tx.Raw("SELECT * FROM users WHERE id = ?", log.UserID).Scan(&user)
	if userResult.Error != nil {
		return log, userResult.Error
	}
	if userResult.RowsAffected == 0 {
		return log, ErrUserNotFound
	}
	log.Enabled = true
	if err := tx.Create(&log).Error; err != nil {
		return log, err
	}
	if log.ProgressValue >= habit.GoalValue {
		if err := applyChallengePoints(tx, habit.ID, log.UserID, log.LogDate); err != nil {
			return log, err
		}
	}
	tx.Commit()
	return log, nil
}

func GetHabitLog(id string) (models.HabitLog, error) {
	var log models.HabitLog
	err := DB.Where("id = ?", id).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return log, ErrHabitLogNotFound
	}
	return log, err
}

func ListLogsByHabit(habitID string) ([]models.HabitLog, error) {
	if _, err := GetHabit(habitID); err != nil {
		return nil, err
	}
	var logs []models.HabitLog
	err := DB.Where("habit_id = ?", habitID).Find(&logs).Error
	return logs, err
}

// ListLogsByHabitRange filters in Go so date comparisons do not depend on
// how a particular driver serializes time values.
func ListLogsByHabitRange(habitID string, start, end time.Time) ([]models.HabitLog, error) {
	logs, err := ListLogsByHabit(habitID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.HabitLog, 0, len(logs))
	for _, log := range logs {
		if log.LogDate.Before(start) || log.LogDate.After(end) {
			continue
		}
		filtered = append(filtered, log)
	}
	return filtered, nil
}

func ListLogsByUser(userID string) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := DB.Where("user_id = ?", userID).Find(&logs).Error
	return logs, err
}

func UpdateHabitLog(id string, updates map[string]interface{}) (models.HabitLog, error) {
	log, err := GetHabitLog(id)
	if err != nil {
		return log, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&log).Updates(updates).Error; err != nil {
			return log, err
		}
	}
	return GetHabitLog(id)
}

func DeleteHabitLog(id string) error {
	log, err := GetHabitLog(id)
	if err != nil {
		return err
	}
	return DB.Delete(&log).Error
}
