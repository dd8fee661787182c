package routes

import (
	"net/http"

	"github.com/didip/tollbooth/v6"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/config"
	"github.com/habitflow/apiv1/middlewares"
	"github.com/habitflow/apiv1/utils"
)

var validate *validator.Validate
var cfg *config.Config
var cipher *utils.Cipher

func CreateRoutes(r *mux.Router, c *config.Config, ci *utils.Cipher) {
	validate = validator.New()
	cfg = c
	cipher = ci

	r.HandleFunc("/", Root).Methods("GET")
	r.HandleFunc("/health", Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	auth := middlewares.RequireAccessToken(c.JWTSecret)

	authSub := api.PathPrefix("/auth").Subrouter()
	lmt := tollbooth.NewLimiter(utils.AUTH_REQUESTS_PER_SECOND, nil)
	authSub.Use(func(next http.Handler) http.Handler {
		return tollbooth.LimitHandler(lmt, next)
	})
	AuthRouter(authSub)

	UserRouter(api.PathPrefix("/users").Subrouter(), auth)
	HabitRouter(api.PathPrefix("/habits").Subrouter(), auth)
	ChallengeRouter(api.PathPrefix("/challenges").Subrouter(), auth)
}

func Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the HabitFlow API",
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, StatusResponse{Status: "healthy"})
}
