package routes

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/utils"
)

const DateLayout = "2006-01-02"

type StatusResponse struct {
	Status string `json:"status"`
}

type RequestBody interface {
	LoginAttempt | ConfirmationRequest | ConfirmAttempt | SignupAttempt |
		UserUpdateRequest | ProfileCreateRequest | ProfileUpdateRequest |
		HabitCreateRequest | HabitUpdateRequest | HabitLogCreateRequest | HabitLogUpdateRequest |
		ChallengeCreateRequest | ChallengeUpdateRequest |
		ParticipantCreateRequest | ParticipantUpdateRequest | ChallengeHabitCreateRequest
}

func DecodeValidBody[B RequestBody](r *http.Request) (B, error) {
	decoder := json.NewDecoder(r.Body)
	var requestBody B
	err := decoder.Decode(&requestBody)
	if err != nil {
		return requestBody, err
	}
	err = validate.Struct(requestBody)
	if err != nil {
		return requestBody, err
	}
	return requestBody, nil
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteBodyError distinguishes a malformed body from one that decoded but
// failed validation.
func WriteBodyError(w http.ResponseWriter, err error) {
	log.Println(err)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, utils.INVALID_REQUEST_BODY, http.StatusBadRequest)
}

// WriteDomainError translates dbhelper errors to HTTP statuses. Anything not
// in the domain taxonomy is a server fault.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dbhelper.ErrUserNotFound),
		errors.Is(err, dbhelper.ErrProfileNotFound),
		errors.Is(err, dbhelper.ErrHabitNotFound),
		errors.Is(err, dbhelper.ErrHabitLogNotFound),
		errors.Is(err, dbhelper.ErrChallengeNotFound),
		errors.Is(err, dbhelper.ErrParticipantNotFound),
		errors.Is(err, dbhelper.ErrChallengeHabitNotFound):
		http.Error(w, utils.NOT_FOUND_ERROR, http.StatusNotFound)
	case errors.Is(err, dbhelper.ErrEmailTaken):
		http.Error(w, utils.EMAIL_TAKEN_SIGNUP_ERROR, http.StatusBadRequest)
	case errors.Is(err, dbhelper.ErrUsernameTaken):
		http.Error(w, utils.USERNAME_TAKEN_SIGNUP_ERROR, http.StatusBadRequest)
	case errors.Is(err, dbhelper.ErrProfileExists):
		http.Error(w, utils.PROFILE_EXISTS_ERROR, http.StatusBadRequest)
	case errors.Is(err, dbhelper.ErrAlreadyJoined):
		http.Error(w, utils.ALREADY_JOINED_ERROR, http.StatusBadRequest)
	case errors.Is(err, dbhelper.ErrInvalidCredentials):
		http.Error(w, utils.GENERIC_LOGIN_ERROR, http.StatusBadRequest)
	case errors.Is(err, dbhelper.ErrCodeInvalid):
		http.Error(w, utils.GENERIC_CONFIRMATION_ERROR, http.StatusBadRequest)
	default:
		log.Println(err)
		http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
	}
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func ParseSkipLimit(r *http.Request) (int, int) {
	skip := 0
	limit := 100
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}
