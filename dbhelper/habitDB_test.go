package dbhelper

import (
	"testing"

	"github.com/habitflow/apiv1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabit(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")

	habit := seedHabit(t, user.ID, 30)
	assert.NotEmpty(t, habit.ID)
	assert.True(t, habit.Enabled)

	_, err := CreateHabit(models.Habit{UserID: "00000000-0000-0000-0000-000000000000", Title: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListHabitsByUser(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	other := seedUser(t, "bob", "b@x.com")
	active := seedHabit(t, user.ID, 30)
	archived := seedHabit(t, user.ID, 10)
	seedHabit(t, other.ID, 5)

	_, err := UpdateHabit(archived.ID, map[string]interface{}{"enabled": false})
	require.NoError(t, err)

	all, err := ListHabitsByUser(user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := ListHabitsByUser(user.ID, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)
}

func TestUpdateHabit(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)

	updated, err := UpdateHabit(habit.ID, map[string]interface{}{"goal_value": 45})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.GoalValue)
	assert.Equal(t, habit.Title, updated.Title)

	_, err = UpdateHabit("00000000-0000-0000-0000-000000000000", map[string]interface{}{"goal_value": 1})
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)
	log, err := CreateHabitLog(models.HabitLog{
		HabitID:       habit.ID,
		UserID:        user.ID,
		LogDate:       date(t, "2024-01-15"),
		ProgressValue: 10,
		Status:        "partial",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteHabit(habit.ID))
	_, err = GetHabit(habit.ID)
	assert.ErrorIs(t, err, ErrHabitNotFound)
	_, err = GetHabitLog(log.ID)
	assert.ErrorIs(t, err, ErrHabitLogNotFound)
}

func TestCreateHabitLogValidatesReferences(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)

	_, err := CreateHabitLog(models.HabitLog{
		HabitID: "00000000-0000-0000-0000-000000000000",
		UserID:  user.ID,
		LogDate: date(t, "2024-01-15"),
	})
	assert.ErrorIs(t, err, ErrHabitNotFound)

	_, err = CreateHabitLog(models.HabitLog{
		HabitID: habit.ID,
		UserID:  "00000000-0000-0000-0000-000000000000",
		LogDate: date(t, "2024-01-15"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListLogsByHabitRange(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)
	for _, day := range []string{"2024-01-05", "2024-01-15", "2024-02-01"} {
		_, err := CreateHabitLog(models.HabitLog{
			HabitID:       habit.ID,
			UserID:        user.ID,
			LogDate:       date(t, day),
			ProgressValue: 10,
			Status:        "partial",
		})
		require.NoError(t, err)
	}

	logs, err := ListLogsByHabitRange(habit.ID, date(t, "2024-01-10"), date(t, "2024-01-31"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, date(t, "2024-01-15"), logs[0].LogDate.UTC())

	// boundary days are inclusive on both ends
	logs, err = ListLogsByHabitRange(habit.ID, date(t, "2024-01-05"), date(t, "2024-02-01"))
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	_, err = ListLogsByHabitRange("00000000-0000-0000-0000-000000000000", date(t, "2024-01-01"), date(t, "2024-02-01"))
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestUpdateAndDeleteHabitLog(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)
	log, err := CreateHabitLog(models.HabitLog{
		HabitID:       habit.ID,
		UserID:        user.ID,
		LogDate:       date(t, "2024-01-15"),
		ProgressValue: 10,
		Status:        "partial",
	})
	require.NoError(t, err)

	updated, err := UpdateHabitLog(log.ID, map[string]interface{}{"progress_value": 20, "status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.ProgressValue)
	assert.Equal(t, "completed", updated.Status)

	require.NoError(t, DeleteHabitLog(log.ID))
	assert.ErrorIs(t, DeleteHabitLog(log.ID), ErrHabitLogNotFound)
}
