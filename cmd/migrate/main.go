package main

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/pkg/logger"
)

// Standalone migration runner. The server applies migrations on startup as
// well; this exists for provisioning a database without starting the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Konfigürasyon yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Veritabanı bağlantısı kurulamadı", map[string]interface{}{"error": err.Error()})
	}
	defer db.Close()

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Veritabanı hazır", map[string]interface{}{"dsn": cfg.Database.DSN})
}
