package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/velmir0/TourBooker/internal/app"
	"github.com/velmir0/TourBooker/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
