package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/config"
	"github.com/mentorship-connect/app/internal/database"
	"github.com/mentorship-connect/app/internal/handlers"
	"github.com/mentorship-connect/app/internal/server"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Env == "prod" {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	if err := handlers.LoadTemplates("web/templates"); err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	srv := server.New(":"+cfg.Port, db,
		cfg.SessionSecret, time.Duration(cfg.SessionTTLHrs)*time.Hour, log)

	log.Infof("Server starting on port %s", cfg.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
