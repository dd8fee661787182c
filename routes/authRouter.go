package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/utils"
)

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginAttempt struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmAttempt struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

func AuthRouter(s *mux.Router) {
	s.HandleFunc("/login", Login).Methods("POST")
	s.HandleFunc("/request_confirmation", RequestConfirmation).Methods("POST")
	s.HandleFunc("/confirm", ConfirmAccount).Methods("POST")
}

func Login(w http.ResponseWriter, r *http.Request) {
	loginAttempt, err := DecodeValidBody[LoginAttempt](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	user, err := dbhelper.LoginUserWithPassword(loginAttempt.Email, loginAttempt.Password)
	if err != nil {
		// an unknown email and a wrong password answer alike
		if errors.Is(err, dbhelper.ErrUserNotFound) || errors.Is(err, dbhelper.ErrInvalidCredentials) {
			log.Println(err)
			http.Error(w, utils.GENERIC_LOGIN_ERROR, http.StatusBadRequest)
		} else {
			WriteDomainError(w, err)
		}
		return
	}
	token, err := utils.CreateToken(
		user.Username,
		user.Email,
		cfg.JWTSecret,
		time.Hour*utils.TOKEN_DURATION_HOURS,
	)
	if err != nil {
		log.Println(err)
		http.Error(w, utils.SERVER_DOWN, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		Token:     token.TokenString,
		ExpiresAt: token.ExpiresAt,
	})
}

func RequestConfirmation(w http.ResponseWriter, r *http.Request) {
	confirmationRequest, err := DecodeValidBody[ConfirmationRequest](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	code, err := dbhelper.CreateConfirmationCode(confirmationRequest.Email)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if err := utils.SendMail(
		cfg,
		confirmationRequest.Email,
		"Confirm your HabitFlow account",
		"Your confirmation code is "+code.Code,
	); err != nil {
		log.Println(err)
	}
	WriteJSON(w, http.StatusOK, StatusResponse{Status: "Confirmation code sent!"})
}

func ConfirmAccount(w http.ResponseWriter, r *http.Request) {
	confirmAttempt, err := DecodeValidBody[ConfirmAttempt](r)
	if err != nil {
		WriteBodyError(w, err)
		return
	}
	if err := dbhelper.ConfirmUser(confirmAttempt.Email, confirmAttempt.Code); err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, StatusResponse{Status: "Account confirmed!"})
}
