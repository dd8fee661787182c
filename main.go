package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/habitflow/apiv1/config"
	"github.com/habitflow/apiv1/dbhelper"
	"github.com/habitflow/apiv1/routes"
	"github.com/habitflow/apiv1/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Setting up environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on the environment")
	}
	// Setting up logs
	file, err := os.OpenFile("logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatal(err)
	}
	log.SetOutput(file)
	// Loading configuration; bad key material stops the process here
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cipher, err := utils.NewCipher(cfg.CipherKey)
	if err != nil {
		log.Fatal(err)
	}
	// Setting up database
	if err := dbhelper.OpenDB(cfg.DBDSN); err != nil {
		log.Fatal(err)
	}
	if err := dbhelper.InitDB(); err != nil {
		log.Fatal(err)
	}
	// Opening the webserver
	r := mux.NewRouter()
	r.StrictSlash(true)
	routes.CreateRoutes(r, cfg, cipher)
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.ClientURL}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	if err := http.ListenAndServe(":"+cfg.Port, cors(r)); err != nil {
		log.Fatal(err)
	}
}
