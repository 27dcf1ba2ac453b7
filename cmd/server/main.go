package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Jalez/resident-committee-portal-sub004/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv := server.NewServer()
	r := srv.SetupRouter()

	srv.Log.Infof("Starting portal core on port %s", srv.Port)
	if err := r.Run(":" + srv.Port); err != nil {
		srv.Log.Fatal(err)
	}
}
