package models

import "time"

const ChallengeStatusActive = "active"
const ParticipantStatusActive = "active"

type Challenge struct {
	Base
	CreatedBy string    `gorm:"type:char(36);index" json:"created_by"`
	Title     string    `gorm:"size:200" json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsPublic  bool      `json:"is_public"`
	Status    string    `gorm:"size:50" json:"status"`
}

type ChallengeParticipant struct {
	Base
	ChallengeID  string    `gorm:"type:char(36);index" json:"challenge_id"`
	UserID       string    `gorm:"type:char(36);index" json:"user_id"`
	Status       string    `gorm:"size:50" json:"status"`
	CurrentScore int       `json:"current_score"`
	JoinedAt     time.Time `json:"joined_at"`
}

type ChallengeHabit struct {
	Base
	ChallengeID         string `gorm:"type:char(36);index" json:"challenge_id"`
	HabitID             string `gorm:"type:char(36);index" json:"habit_id"`
	PointsPerCompletion int    `json:"points_per_completion"`
}
