package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/models"
	"github.com/habitflow/apiv1/utils"
)

type SignupAttempt struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,min=10,max=13"`
	Password  string `json:"password" validate:"required,min=8,max=64"`
}

type UserUpdateRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=100"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,min=10,max=13"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=64"`
	ImageURL  *string `json:"image_url" validate:"omitempty,max=255"`
	Enabled   *bool   `json:"enabled"`
}

type ProfileCreateRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid4"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,max=255"`
	Timezone    string `json:"timezone" validate:"omitempty,max=50"`
}

type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,max=255"`
	Timezone    *string `json:"timezone" validate:"omitempty,max=50"`
}

// UserResponse is the API view of an account: no password hash, phone
// decrypted.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	IsConfirmed bool      `json:"is_confirmed"`
	ImageURL    string    `json:"image_url"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewUserResponse(user models.User) UserResponse {
	phone := ""
	if user.Phone != "" {
		decrypted, err := cipher.Decrypt(user.Phone)
		if err != nil {
			log.Println(err)
		} else {
			phone = decrypted
		}
	}
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Username:    user.Username,
		Email:       user.Email,
		Phone:       phone,
		IsConfirmed: user.IsConfirmed,
		ImageURL:    user.ImageURL,
		Enabled:     user.Enabled,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

func UserRouter(s *mux.Router, auth func(http.HandlerFunc) http.HandlerFunc) {
	s.HandleFunc("", Register).Methods("POST")
	s.HandleFunc("", auth(ListUsers)).Methods("GET")
	// profile routes before /{id} so "profiles" is not read as a user id
	s.HandleFunc("/profiles", auth(CreateProfile)).Methods("POST")
	s.HandleFunc("/profiles/{id}", auth(GetProfile)).Methods("GET")
	s.HandleFunc("/profiles/{id}", auth(UpdateProfile)).Methods("PATCH")
	s.HandleFunc("/profiles/{id}", auth(DeleteProfile)).Methods("DELETE")
	s.HandleFunc("/{id}/profile", auth(GetProfileByUser)).Methods("GET")
	s.HandleFunc("/{id}", auth(GetUser)).Methods("GET")
	s.HandleFunc("/{id}", auth(UpdateUser)).Methods("PATCH")
	s.HandleFunc("/{id}", auth(DeleteUser)).Methods("DELETE")
}

func Register(w http.ResponseWriter, r *http.Request) {
	signupAttempt, err := DecodeValidBody[SignupAttempt](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	passwordHash, err := utils.HashPassword(signupAttempt.Password)
	if err != nil {
		log.Println(err)
		http.Error(w, utils.GENERIC_SIGNUP_ERROR, http.StatusInternalServerError)
		return
	}
	phone := ""
	if signupAttempt.Phone != "" {
		phone, err = cipher.Encrypt(signupAttempt.Phone)
		if err != nil {
			log.Println(err)
			http.Error(w, utils.GENERIC_SIGNUP_ERROR, http.StatusInternalServerError)
			return
		}
	}
	user, err := dbhelper.RegisterUser(models.User{
		FirstName:    signupAttempt.FirstName,
		LastName:     signupAttempt.LastName,
		Username:     signupAttempt.Username,
		Email:        signupAttempt.Email,
		Phone:        phone,
		PasswordHash: passwordHash,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, NewUserResponse(user))
}

func ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := ParseSkipLimit(r)
	users, err := dbhelper.ListUsers(skip, limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, NewUserResponses(users))
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := dbhelper.GetUser(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, NewUserResponse(user))
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	updateRequest, err := DecodeValidBody[UserUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	updates := map[string]interface{}{}
	if updateRequest.FirstName != nil {
		updates["first_name"] = *updateRequest.FirstName
	}
	if updateRequest.LastName != nil {
		updates["last_name"] = *updateRequest.LastName
	}
	if updateRequest.Username != nil {
		if existing, err := dbhelper.GetUserByUsername(*updateRequest.Username); err == nil && existing.ID != id {
			WriteDomainError(w, dbhelper.ErrUsernameTaken)
			return
		}
		updates["username"] = *updateRequest.Username
	}
	if updateRequest.Email != nil {
		if existing, err := dbhelper.GetUserByEmail(*updateRequest.Email); err == nil && existing.ID != id {
			WriteDomainError(w, dbhelper.ErrEmailTaken)
			return
		}
		updates["email"] = *updateRequest.Email
	}
	if updateRequest.Phone != nil {
		encrypted, err := cipher.Encrypt(*updateRequest.Phone)
		if err != nil {
			log.Println(err)
			http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
			return
		}
		updates["phone"] = encrypted
	}
	if updateRequest.Password != nil {
		// hashing happens here and only here: updates without a password
		// field never touch the stored hash
		passwordHash, err := utils.HashPassword(*updateRequest.Password)
		if err != nil {
			log.Println(err)
			http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
			return
		}
		updates["password_hash"] = passwordHash
	}
	if updateRequest.ImageURL != nil {
		updates["image_url"] = *updateRequest.ImageURL
	}
	if updateRequest.Enabled != nil {
		updates["enabled"] = *updateRequest.Enabled
	}
	user, err := dbhelper.UpdateUser(id, updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, NewUserResponse(user))
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteUser(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func CreateProfile(w http.ResponseWriter, r *http.Request) {
	profileRequest, err := DecodeValidBody[ProfileCreateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	profile, err := dbhelper.CreateProfile(models.UserProfile{
		UserID:      profileRequest.UserID,
		DisplayName: profileRequest.DisplayName,
		AvatarURL:   profileRequest.AvatarURL,
		Timezone:    profileRequest.Timezone,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, profile)
}

func GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := dbhelper.GetProfile(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

func GetProfileByUser(w http.ResponseWriter, r *http.Request) {
	profile, err := dbhelper.GetProfileByUserID(mux.Vars(r)["id"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	updateRequest, err := DecodeValidBody[ProfileUpdateRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	updates := map[string]interface{}{}
	if updateRequest.DisplayName != nil {
		updates["display_name"] = *updateRequest.DisplayName
	}
	if updateRequest.AvatarURL != nil {
		updates["avatar_url"] = *updateRequest.AvatarURL
	}
	if updateRequest.Timezone != nil {
		updates["timezone"] = *updateRequest.Timezone
	}
	profile, err := dbhelper.UpdateProfile(mux.Vars(r)["id"], updates)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

func DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := dbhelper.DeleteProfile(mux.Vars(r)["id"]); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
