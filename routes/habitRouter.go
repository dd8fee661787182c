package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/models"
)

type HabitCreateRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	Title     string `json:"title" validate:"required,max=200"`
	Category  string `json:"category" validate:"required,max=100"`
	GoalType  string `json:"goal_type" validate:"required,max=50"`
	GoalValue int    `json:"goal_value" validate:"gte=0"`
}

type HabitUpdateRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	GoalType  *string `json:"goal_type" validate:"omitempty,max=50"`
	GoalValue *int    `json:"goal_value" validate:"omitempty,gte=0"`
	Enabled   *bool   `json:"enabled"`
}

type HabitLogCreateRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid4"`
	LogDate       string `json:"log_date" validate:"required,datetime=2006-01-02"`
	ProgressValue int    `json:"progress_value" validate:"gte=0"`
	Status        string `json:"status" validate:"required,max=50"`
}

type HabitLogUpdateRequest struct {
	ProgressValue *int    `json:"progress_value" validate:"omitempty,gte=0"`
	Status        *string `json:"status" validate:"omitempty,max=50"`
}

func HabitRouter(s *mux.Router, auth func(http.HandlerFunc) http.HandlerFunc) {
	s.HandleFunc("", auth(CreateHabit)).Methods("POST")
	s.HandleFunc("", auth(ListHabits)).Methods("GET")
	s.HandleFunc("/logs/{id}", auth(GetHabitLog)).Methods("GET")
	s.HandleFunc("/logs/{id}", auth(UpdateHabitLog)).Methods("PATCH")
	s.HandleFunc("/logs/{id}", auth(DeleteHabitLog)).Methods("DELETE")
	s.HandleFunc("/user/{user_id}", auth(ListHabitsByUser)).Methods("GET")
	s.HandleFunc("/user/{user_id}/logs", auth(ListLogsByUser)).Methods("GET")
	s.HandleFunc("/{id}/logs", auth(CreateHabitLog)).Methods("POST")
	s.HandleFunc("/{id}/logs", auth(ListLogsByHabit)).Methods("GET")
	s.HandleFunc("/{id}", auth(GetHabit)).Methods("GET")
	s.HandleFunc("/{id}", auth(UpdateHabit)).Methods("PATCH")
	s.HandleFunc("/{id}", auth(DeleteHabit)).Methods("DELETE")
}

func CreateHabit(w http.ResponseWriter, r *http.Request) {
	habitRequest, err := DecodeValidBody[HabitCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	habit, err := dbhelper.CreateHabit(models.Habit{
		UserID:    habitRequest.UserID,
		Title:     habitRequest.Title,
		Category:  habitRequest.Category,
		GoalType:  habitRequest.GoalType,
		GoalValue: habitRequest.GoalValue,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, habit)
}

func ListHabits(w http.ResponseWriter, r *http.Request) {
	skip, limit := ParseSkipLimit(r)
	habits, err := dbhelper.ListHabits(skip, limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, habits)
}

func ListHabitsByUser(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"
	habits, err := dbhelper.ListHabitsByUser(mux.Vars(r)["user_id"], activeOnly)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, habits)
}

func GetHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := dbhelper.GetHabit(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, habit)
}

func UpdateHabit(w http.ResponseWriter, r *http.Request) {
	updateRequest, err := DecodeValidBody[HabitUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	updates := map[string]interface{}{}
	if updateRequest.Title != nil {
		updates["title"] = *updateRequest.Title
	}
	if updateRequest.Category != nil {
		updates["category"] = *updateRequest.Category
	}
	if updateRequest.GoalType != nil {
		updates["goal_type"] = *updateRequest.GoalType
	}
	if updateRequest.GoalValue != nil {
		updates["goal_value"] = *updateRequest.GoalValue
	}
	if updateRequest.Enabled != nil {
		updates["enabled"] = *updateRequest.Enabled
	}
	habit, err := dbhelper.UpdateHabit(mux.Vars(r)["id"], updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, habit)
}

func DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteHabit(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func CreateHabitLog(w http.ResponseWriter, r *http.Request) {
	logRequest, err := DecodeValidBody[HabitLogCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	logDate, err := ParseDate(logRequest.LogDate)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	log, err := dbhelper.CreateHabitLog(models.HabitLog{
		HabitID:       mux.Vars(r)["id"],
		UserID:        logRequest.UserID,
		LogDate:       logDate,
		ProgressValue: logRequest.ProgressValue,
		Status:        logRequest.Status,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, log)
}

func GetHabitLog(w http.ResponseWriter, r *http.Request) {
	log, err := dbhelper.GetHabitLog(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, log)
}

func ListLogsByHabit(w http.ResponseWriter, r *http.Request) {
	habitID := mux.Vars(r)["id"]
	startValue := r.URL.Query().Get("start_date")
	endValue := r.URL.Query().Get("end_date")
	if startValue != "" && endValue != "" {
		start, err := ParseDate(startValue)
		if err != nil {
			WriteBodyError(w, err)
			return
		}
		end, err := ParseDate(endValue)
		if err != nil {
			WriteBodyError(w, err)
			return
		}
		logs, err := dbhelper.ListLogsByHabitRange(habitID, start, end)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, logs)
		return
	}
	logs, err := dbhelper.ListLogsByHabit(habitID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

func ListLogsByUser(w http.ResponseWriter, r *http.Request) {
	logs, err := dbhelper.ListLogsByUser(mux.Vars(r)["user_id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

func UpdateHabitLog(w http.ResponseWriter, r *http.Request) {
	updateRequest, err := DecodeValidBody[HabitLogUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	updates := map[string]interface{}{}
	if updateRequest.ProgressValue != nil {
		updates["progress_value"] = *updateRequest.ProgressValue
	}
	if updateRequest.Status != nil {
		updates["status"] = *updateRequest.Status
	}
	log, err := dbhelper.UpdateHabitLog(mux.Vars(r)["id"], updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, log)
}

func DeleteHabitLog(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteHabitLog(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
