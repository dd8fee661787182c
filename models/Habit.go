package models

import "time"

type Habit struct {
	Base
	UserID    string `gorm:"type:char(36);index" json:"user_id"`
	Title     string `gorm:"size:200" json:"title"`
	Category  string `gorm:"size:100" json:"category"`
	GoalType  string `gorm:"size:50" json:"goal_type"`
	GoalValue int    `json:"goal_value"`
}

type HabitLog struct {
	Base
	HabitID       string    `gorm:"type:char(36);index" json:"habit_id"`
	UserID        string    `gorm:"type:char(36);index" json:"user_id"`
	LogDate       time.Time `json:"log_date"`
	ProgressValue int       `json:"progress_value"`
	Status        string    `gorm:"size:50" json:"status"`
}
