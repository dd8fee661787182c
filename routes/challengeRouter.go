package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/models"
	"github.com/habitflow/apiv1/utils"
)

type ChallengeCreateRequest struct {
	CreatedBy string `json:"created_by" validate:"required,uuid4"`
	Title     string `json:"title" validate:"required,max=200"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsPublic  bool   `json:"is_public"`
}

type ChallengeUpdateRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsPublic  *bool   `json:"is_public"`
	Status    *string `json:"status" validate:"omitempty,max=50"`
	Enabled   *bool   `json:"enabled"`
}

type ParticipantCreateRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required,uuid4"`
	UserID      string `json:"user_id" validate:"required,uuid4"`
}

type ParticipantUpdateRequest struct {
	Status       *string `json:"status" validate:"omitempty,max=50"`
	CurrentScore *int    `json:"current_score"`
}

type ChallengeHabitCreateRequest struct {
	ChallengeID         string `json:"challenge_id" validate:"required,uuid4"`
	HabitID             string `json:"habit_id" validate:"required,uuid4"`
	PointsPerCompletion *int   `json:"points_per_completion" validate:"omitempty,gte=0"`
}

func ChallengeRouter(s *mux.Router, auth func(http.HandlerFunc) http.HandlerFunc) {
	s.HandleFunc("", auth(CreateChallenge)).Methods("POST")
	s.HandleFunc("", auth(ListChallenges)).Methods("GET")
	s.HandleFunc("/public", ListPublicChallenges).Methods("GET")
	s.HandleFunc("/creator/{creator_id}", auth(ListChallengesByCreator)).Methods("GET")
	s.HandleFunc("/user/{user_id}/participations", auth(ListParticipationsByUser)).Methods("GET")
	s.HandleFunc("/participants", auth(JoinChallenge)).Methods("POST")
	s.HandleFunc("/participants/{id}", auth(GetParticipant)).Methods("GET")
	s.HandleFunc("/participants/{id}", auth(UpdateParticipant)).Methods("PATCH")
	s.HandleFunc("/participants/{id}", auth(DeleteParticipant)).Methods("DELETE")
	s.HandleFunc("/habits", auth(LinkChallengeHabit)).Methods("POST")
	s.HandleFunc("/habits/{id}", auth(GetChallengeHabit)).Methods("GET")
	s.HandleFunc("/habits/{id}", auth(DeleteChallengeHabit)).Methods("DELETE")
	s.HandleFunc("/{id}/participants", auth(ListParticipantsByChallenge)).Methods("GET")
	s.HandleFunc("/{id}/habits", auth(ListHabitsByChallenge)).Methods("GET")
	s.HandleFunc("/{id}", auth(GetChallenge)).Methods("GET")
	s.HandleFunc("/{id}", auth(UpdateChallenge)).Methods("PATCH")
	s.HandleFunc("/{id}", auth(DeleteChallenge)).Methods("DELETE")
}

func CreateChallenge(w http.ResponseWriter, r *http.Request) {
	challengeRequest, err := DecodeValidBody[ChallengeCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	startDate, err := ParseDate(challengeRequest.StartDate)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	endDate, err := ParseDate(challengeRequest.EndDate)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	if endDate.Before(startDate) {
		http.Error(w, utils.INVALID_DATE_RANGE_ERROR, http.StatusUnprocessableEntity)
		return
	}
	challenge, err := dbhelper.CreateChallenge(models.Challenge{
		CreatedBy: challengeRequest.CreatedBy,
		Title:     challengeRequest.Title,
		StartDate: startDate,
		EndDate:   endDate,
		IsPublic:  challengeRequest.IsPublic,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, challenge)
}

func ListChallenges(w http.ResponseWriter, r *http.Request) {
	skip, limit := ParseSkipLimit(r)
	challenges, err := dbhelper.ListChallenges(skip, limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, challenges)
}

func ListPublicChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := dbhelper.ListPublicChallenges()
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, challenges)
}

func ListChallengesByCreator(w http.ResponseWriter, r *http.Request) {
	challenges, err := dbhelper.ListChallengesByCreator(mux.Vars(r)["creator_id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, challenges)
}

func GetChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := dbhelper.GetChallenge(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, challenge)
}

func UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updateRequest, err := DecodeValidBody[ChallengeUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	challenge, err := dbhelper.GetChallenge(id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	startDate := challenge.StartDate
	endDate := challenge.EndDate
	updates := map[string]interface{}{}
	if updateRequest.StartDate != nil {
		startDate, err = ParseDate(*updateRequest.StartDate)
		if err != nil {
			WriteBodyError(w, err)
			return
		}
		updates["start_date"] = startDate
	}
	if updateRequest.EndDate != nil {
		endDate, err = ParseDate(*updateRequest.EndDate)
		if err != nil {
			WriteBodyError(w, err)
			return
		}
		updates["end_date"] = endDate
	}
	if endDate.Before(startDate) {
		http.Error(w, utils.INVALID_DATE_RANGE_ERROR, http.StatusUnprocessableEntity)
		return
	}
	if updateRequest.Title != nil {
		updates["title"] = *updateRequest.Title
	}
	if updateRequest.IsPublic != nil {
		updates["is_public"] = *updateRequest.IsPublic
	}
	if updateRequest.Status != nil {
		updates["status"] = *updateRequest.Status
	}
	if updateRequest.Enabled != nil {
		updates["enabled"] = *updateRequest.Enabled
	}
	challenge, err = dbhelper.UpdateChallenge(id, updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, challenge)
}

func DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteChallenge(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func JoinChallenge(w http.ResponseWriter, r *http.Request) {
	joinRequest, err := DecodeValidBody[ParticipantCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	participant, err := dbhelper.JoinChallenge(joinRequest.ChallengeID, joinRequest.UserID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, participant)
}

func GetParticipant(w http.ResponseWriter, r *http.Request) {
	participant, err := dbhelper.GetParticipant(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, participant)
}

func ListParticipantsByChallenge(w http.ResponseWriter, r *http.Request) {
	participants, err := dbhelper.ListParticipantsByChallenge(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, participants)
}

func ListParticipationsByUser(w http.ResponseWriter, r *http.Request) {
	participants, err := dbhelper.ListParticipationsByUser(mux.Vars(r)["user_id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, participants)
}

func UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	updateRequest, err := DecodeValidBody[ParticipantUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	updates := map[string]interface{}{}
	if updateRequest.Status != nil {
		updates["status"] = *updateRequest.Status
	}
	if updateRequest.CurrentScore != nil {
		updates["current_score"] = *updateRequest.CurrentScore
	}
	participant, err := dbhelper.UpdateParticipant(mux.Vars(r)["id"], updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, participant)
}

func DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteParticipant(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func LinkChallengeHabit(w http.ResponseWriter, r *http.Request) {
	linkRequest, err := DecodeValidBody[ChallengeHabitCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	points := 1
	if linkRequest.PointsPerCompletion != nil {
		points = *linkRequest.PointsPerCompletion
	}
	link, err := dbhelper.LinkHabit(linkRequest.ChallengeID, linkRequest.HabitID, points)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, link)
}

func GetChallengeHabit(w http.ResponseWriter, r *http.Request) {
	link, err := dbhelper.GetChallengeHabit(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, link)
}

func ListHabitsByChallenge(w http.ResponseWriter, r *http.Request) {
	links, err := dbhelper.ListHabitsByChallenge(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, links)
}

func DeleteChallengeHabit(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteChallengeHabit(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
