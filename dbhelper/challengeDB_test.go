package dbhelper

import (
	"testing"

	"github.com/habitflow/apiv1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeDefaultsToActive(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")

	challenge := seedChallenge(t, user.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	assert.Equal(t, models.ChallengeStatusActive, challenge.Status)
	assert.True(t, challenge.Enabled)

	_, err := CreateChallenge(models.Challenge{CreatedBy: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListPublicChallenges(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	public := seedChallenge(t, user.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	_, err := CreateChallenge(models.Challenge{
		CreatedBy: user.ID,
		Title:     "Private challenge",
		StartDate: date(t, "2024-01-01"),
		EndDate:   date(t, "2024-01-31"),
		IsPublic:  false,
	})
	require.NoError(t, err)

	challenges, err := ListPublicChallenges()
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, public.ID, challenges[0].ID)
}

func TestJoinChallenge(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	challenge := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))

	participant, err := JoinChallenge(challenge.ID, joiner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ParticipantStatusActive, participant.Status)
	assert.Equal(t, 0, participant.CurrentScore)
	assert.False(t, participant.JoinedAt.IsZero())

	_, err = JoinChallenge(challenge.ID, joiner.ID)
	assert.ErrorIs(t, err, ErrAlreadyJoined)

	_, err = JoinChallenge("00000000-0000-0000-0000-000000000000", joiner.ID)
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	_, err = JoinChallenge(challenge.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLinkHabit(t *testing.T) {
	newTestDB(t)
	user := seedUser(t, "alice", "a@x.com")
	habit := seedHabit(t, user.ID, 30)
	challenge := seedChallenge(t, user.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))

	link, err := LinkHabit(challenge.ID, habit.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, link.PointsPerCompletion)

	_, err = LinkHabit("00000000-0000-0000-0000-000000000000", habit.ID, 5)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
	_, err = LinkHabit(challenge.ID, "00000000-0000-0000-0000-000000000000", 5)
	assert.ErrorIs(t, err, ErrHabitNotFound)

	links, err := ListHabitsByChallenge(challenge.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, DeleteChallengeHabit(link.ID))
	assert.ErrorIs(t, DeleteChallengeHabit(link.ID), ErrChallengeHabitNotFound)
}

func logProgress(t *testing.T, habitID, userID, day string, progress int) {
	t.Helper()
	_, err := CreateHabitLog(models.HabitLog{
		HabitID:       habitID,
		UserID:        userID,
		LogDate:       date(t, day),
		ProgressValue: progress,
		Status:        "completed",
	})
	require.NoError(t, err)
}

func participantScore(t *testing.T, id string) int {
	t.Helper()
	participant, err := GetParticipant(id)
	require.NoError(t, err)
	return participant.CurrentScore
}

func TestScoringOnGoalCompletion(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	habit := seedHabit(t, joiner.ID, 30)
	challenge := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	_, err := LinkHabit(challenge.ID, habit.ID, 5)
	require.NoError(t, err)
	participant, err := JoinChallenge(challenge.ID, joiner.ID)
	require.NoError(t, err)

	// below goal: no points
	logProgress(t, habit.ID, joiner.ID, "2024-01-10", 15)
	assert.Equal(t, 0, participantScore(t, participant.ID))

	// at goal, inside the window: credit points once
	logProgress(t, habit.ID, joiner.ID, "2024-01-15", 30)
	assert.Equal(t, 5, participantScore(t, participant.ID))

	// above goal still scores
	logProgress(t, habit.ID, joiner.ID, "2024-01-16", 45)
	assert.Equal(t, 10, participantScore(t, participant.ID))

	// outside the challenge window: no points
	logProgress(t, habit.ID, joiner.ID, "2024-02-05", 30)
	assert.Equal(t, 10, participantScore(t, participant.ID))
}

func TestScoringSkipsInactiveChallengeAndParticipant(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	habit := seedHabit(t, joiner.ID, 30)
	challenge := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	_, err := LinkHabit(challenge.ID, habit.ID, 5)
	require.NoError(t, err)
	participant, err := JoinChallenge(challenge.ID, joiner.ID)
	require.NoError(t, err)

	_, err = UpdateChallenge(challenge.ID, map[string]interface{}{"status": "completed"})
	require.NoError(t, err)
	logProgress(t, habit.ID, joiner.ID, "2024-01-15", 30)
	assert.Equal(t, 0, participantScore(t, participant.ID))

	_, err = UpdateChallenge(challenge.ID, map[string]interface{}{"status": models.ChallengeStatusActive})
	require.NoError(t, err)
	_, err = UpdateParticipant(participant.ID, map[string]interface{}{"status": "withdrawn"})
	require.NoError(t, err)
	logProgress(t, habit.ID, joiner.ID, "2024-01-16", 30)
	assert.Equal(t, 0, participantScore(t, participant.ID))
}

func TestScoringCreditsEveryLink(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	habit := seedHabit(t, joiner.ID, 30)
	first := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	second := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	_, err := LinkHabit(first.ID, habit.ID, 5)
	require.NoError(t, err)
	_, err = LinkHabit(second.ID, habit.ID, 3)
	require.NoError(t, err)
	firstParticipant, err := JoinChallenge(first.ID, joiner.ID)
	require.NoError(t, err)
	secondParticipant, err := JoinChallenge(second.ID, joiner.ID)
	require.NoError(t, err)

	logProgress(t, habit.ID, joiner.ID, "2024-01-15", 30)
	assert.Equal(t, 5, participantScore(t, firstParticipant.ID))
	assert.Equal(t, 3, participantScore(t, secondParticipant.ID))
}

func TestDeleteChallengeCascades(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	habit := seedHabit(t, joiner.ID, 30)
	challenge := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	link, err := LinkHabit(challenge.ID, habit.ID, 5)
	require.NoError(t, err)
	participant, err := JoinChallenge(challenge.ID, joiner.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteChallenge(challenge.ID))
	_, err = GetChallenge(challenge.ID)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
	_, err = GetParticipant(participant.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	_, err = GetChallengeHabit(link.ID)
	assert.ErrorIs(t, err, ErrChallengeHabitNotFound)
}

func TestListParticipantsByChallenge(t *testing.T) {
	newTestDB(t)
	creator := seedUser(t, "alice", "a@x.com")
	joiner := seedUser(t, "bob", "b@x.com")
	challenge := seedChallenge(t, creator.ID, date(t, "2024-01-01"), date(t, "2024-01-31"))
	_, err := JoinChallenge(challenge.ID, joiner.ID)
	require.NoError(t, err)

	participants, err := ListParticipantsByChallenge(challenge.ID)
	require.NoError(t, err)
	assert.Len(t, participants, 1)

	_, err = ListParticipantsByChallenge("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	participations, err := ListParticipationsByUser(joiner.ID)
	require.NoError(t, err)
	assert.Len(t, participations, 1)
}
