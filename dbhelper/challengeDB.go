package dbhelper

import (
	"errors"
	"time"

	"github.com/habitflow/apiv1/models"
	"gorm.io/gorm"
)

func CreateChallenge(challenge models.Challenge) (models.Challenge, error) {
	if _, err := GetUser(challenge.CreatedBy); err != nil {
		return challenge, err
	}
	challenge.Enabled = true
	if challenge.Status == "" {
		challenge.Status = models.ChallengeStatusActive
	}
	err := DB.Create(&challenge).Error
	return challenge, err
}

func GetChallenge(id string) (models.Challenge, error) {
	var challenge models.Challenge
	err := DB.Where("id = ?", id).First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return challenge, ErrChallengeNotFound
	}
	return challenge, err
}

func ListChallenges(skip, limit int) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := DB.Offset(skip).Limit(limit).Find(&challenges).Error
	return challenges, err
}

func ListPublicChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := DB.Where("is_public = ?", true).Find(&challenges).Error
	return challenges, err
}

func ListChallengesByCreator(creatorID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := DB.Where("created_by = ?", creatorID).Find(&challenges).Error
	return challenges, err
}

func UpdateChallenge(id string, updates map[string]interface{}) (models.Challenge, error) {
	challenge, err := GetChallenge(id)
	if err != nil {
		return challenge, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&challenge).Updates(updates).Error; err != nil {
			return challenge, err
		}
	}
	return GetChallenge(id)
}

// DeleteChallenge removes the challenge together with its participant and
// habit-link rows; a challenge owns both associations.
func DeleteChallenge(id string) error {
	challenge, err := GetChallenge(id)
	if err != nil {
		return err
	}
	tx := DB.Begin()
	defer tx.Rollback()
	if err := tx.Exec("DELETE FROM challenge_participants WHERE challenge_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM challenge_habits WHERE challenge_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&challenge).Error; err != nil {
		return err
	}
	tx.Commit()
	return nil
}

// JoinChallenge enrolls a user with a zero score. A second join of the same
// challenge is rejected rather than silently creating a duplicate ledger row.
func JoinChallenge(challengeID, userID string) (models.ChallengeParticipant, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var participant models.ChallengeParticipant
	var challenge models.Challenge
	challengeResult := tx.Raw("SELECT * FROM challenges WHERE id = ?", challengeID).Scan(&challenge)
	if challengeResult.Error != nil {
		return participant, challengeResult.Error
	}
	if challengeResult.RowsAffected == 0 {
		return participant, ErrChallengeNotFound
	}
	var user models.User
	userResult := tx.Raw("SELECT * FROM users WHERE id = ?", userID).Scan(&user)
	if userResult.Error != nil {
		return participant, userResult.Error
	}
	if userResult.RowsAffected == 0 {
		return participant, ErrUserNotFound
	}
	var existing models.ChallengeParticipant
	existingResult := tx.Raw(
		"SELECT * FROM challenge_participants WHERE challenge_id = ? AND user_id = ?",
		challengeID,
		userID,
	).Scan(&existing)
	if existingResult.Error != nil {
		return participant, existingResult.Error
	}
	if existingResult.RowsAffected > 0 {
		return participant, ErrAlreadyJoined
	}
	participant = models.ChallengeParticipant{
		ChallengeID:  challengeID,
		UserID:       userID,
		Status:       models.ParticipantStatusActive,
		CurrentScore: 0,
		JoinedAt:     time.Now().UTC(),
	}
	participant.Enabled = true
	if err := tx.Create(&participant).Error; err != nil {
		return participant, err
	}
	tx.Commit()
	return participant, nil
}

func GetParticipant(id string) (models.ChallengeParticipant, error) {
	var participant models.ChallengeParticipant
	err := DB.Where("id = ?", id).First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return participant, ErrParticipantNotFound
	}
	return participant, err
}

func ListParticipantsByChallenge(challengeID string) ([]models.ChallengeParticipant, error) {
	if _, err := GetChallenge(challengeID); err != nil {
		return nil, err
	}
	var participants []models.ChallengeParticipant
	err := DB.Where("challenge_id = ?", challengeID).Find(&participants).Error
	return participants, err
}

func ListParticipationsByUser(userID string) ([]models.ChallengeParticipant, error) {
	var participants []models.ChallengeParticipant
	err := DB.Where("user_id = ?", userID).Find(&participants).Error
	return participants, err
}

func UpdateParticipant(id string, updates map[string]interface{}) (models.ChallengeParticipant, error) {
	participant, err := GetParticipant(id)
	if err != nil {
		return participant, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&participant).Updates(updates).Error; err != nil {
			return participant, err
		}
	}
	return GetParticipant(id)
}

func DeleteParticipant(id string) error {
	participant, err := GetParticipant(id)
	if err != nil {
		return err
	}
	return DB.Delete(&participant).Error
}

// LinkHabit registers a scoring rule. Multiple links of the same habit to one
// challenge are permitted; each one scores independently.
func LinkHabit(challengeID, habitID string, pointsPerCompletion int) (models.ChallengeHabit, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var link models.ChallengeHabit
	var challenge models.Challenge
	challengeResult := tx.Raw("SELECT * FROM challenges WHERE id = ?", challengeID).Scan(&challenge)
	if challengeResult.Error != nil {
		return link, challengeResult.Error
	}
	if challengeResult.RowsAffected == 0 {
		return link, ErrChallengeNotFound
	}
	var habit models.Habit
	habitResult := tx.Raw("SELECT * FROM habits WHERE id = ?", habitID).Scan(&habit)
	if habitResult.Error != nil {
		return link, habitResult.Error
	}
	if habitResult.RowsAffected == 0 {
		return link, ErrHabitNotFound
	}
	link = models.ChallengeHabit{
		ChallengeID:         challengeID,
		HabitID:             habitID,
		PointsPerCompletion: pointsPerCompletion,
	}
	link.Enabled = true
	if err := tx.Create(&link).Error; err != nil {
		return link, err
	}
	tx.Commit()
	return link, nil
}

func GetChallengeHabit(id string) (models.ChallengeHabit, error) {
	var link models.ChallengeHabit
	err := DB.Where("id = ?", id).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return link, ErrChallengeHabitNotFound
	}
	return link, err
}

func ListHabitsByChallenge(challengeID string) ([]models.ChallengeHabit, error) {
	if _, err := GetChallenge(challengeID); err != nil {
		return nil, err
	}
	var links []models.ChallengeHabit
	err := DB.Where("challenge_id = ?", challengeID).Find(&links).Error
	return links, err
}

func DeleteChallengeHabit(id string) error {
	link, err := GetChallengeHabit(id)
	if err != nil {
		return err
	}
	return DB.Delete(&link).Error
}

// applyChallengePoints credits every active participation of the user for
// each link of the completed habit whose challenge is active and whose date
// range covers the log date. Date comparison happens in Go, not SQL, so the
// behavior does not vary with the driver's time serialization.
func applyChallengePoints(tx *gorm.DB, habitID, userID string, logDate time.Time) error {
	var links []models.ChallengeHabit
	linkResult := tx.Raw("SELECT * FROM challenge_habits WHERE habit_id = ?", habitID).Scan(&links)
	if linkResult.Error != nil {
		return linkResult.Error
	}
	for _, link := range links {
		var challenge models.Challenge
		challengeResult := tx.Raw("SELECT * FROM challenges WHERE id = ?", link.ChallengeID).Scan(&challenge)
		if challengeResult.Error != nil {
			return challengeResult.Error
		}
		if challengeResult.RowsAffected == 0 || challenge.Status != models.ChallengeStatusActive {
			continue
		}
		if logDate.Before(challenge.StartDate) || logDate.After(challenge.EndDate) {
			continue
		}
		var participant models.ChallengeParticipant
		participantResult := tx.Raw(
			"SELECT * FROM challenge_participants WHERE challenge_id = ? AND user_id = ? AND status = ?",
			link.ChallengeID,
			userID,
			models.ParticipantStatusActive,
		).Scan(&participant)
		if participantResult.Error != nil {
			return participantResult.Error
		}
		if participantResult.RowsAffected == 0 {
			continue
		}
		participant.CurrentScore += link.PointsPerCompletion
		if err := tx.Save(&participant).Error; err != nil {
			return err
		}
	}
	return nil
}
