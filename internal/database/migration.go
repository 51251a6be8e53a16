package database

import (
	"database/sql"
	"fmt"
	"time"

	"streamhub/pkg/logger"
)

type Migration struct {
	ID        int64
	Name      string
	AppliedAt time.Time
}

type MigrationService struct {
	db     *sql.DB
	logger logger.Logger
}

func NewMigrationService(db *sql.DB, logger logger.Logger) *MigrationService {
	return &MigrationService{
		db:     db,
		logger: logger,
	}
}

func (m *MigrationService) InitMigrationTable() error {
	query := `
    CREATE TABLE IF NOT EXISTS migrations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL UNIQUE,
        applied_at TIMESTAMP NOT NULL
    )
    `

	_, err := m.db.Exec(query)
	if err != nil {
		m.logger.Error("Migration tablosu oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return err
	}

	return nil
}

func (m *MigrationService) IsMigrationApplied(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE name = $1"
	err := m.db.QueryRow(query, name).Scan(&count)
	if err != nil {
		m.logger.Error("Migration durumu kontrol edilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return false, err
	}

	return count > 0, nil
}

func (m *MigrationService) RecordMigration(name string) error {
	query := "INSERT INTO migrations (name, applied_at) VALUES ($1, $2)"
	_, err := m.db.Exec(query, name, time.Now())
	if err != nil {
		m.logger.Error("Migration kaydedilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	return nil
}

func (m *MigrationService) ApplyMigration(name string, migrationFunc func(*sql.DB) error) error {
	applied, err := m.IsMigrationApplied(name)
	if err != nil {
		return err
	}

	if applied {
		m.logger.Info("Migration zaten uygulanmış", map[string]interface{}{"name": name})
		return nil
	}

	m.logger.Info("Migration uygulanıyor", map[string]interface{}{"name": name})

	if err := migrationFunc(m.db); err != nil {
		m.logger.Error("Migration uygulanamadı", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	if err := m.RecordMigration(name); err != nil {
		return err
	}

	m.logger.Info("Migration başarıyla uygulandı", map[string]interface{}{"name": name})
	return nil
}

func (m *MigrationService) RunMigrations() error {
	m.logger.Info("Migrationlar başlatılıyor", map[string]interface{}{})

	if err := m.InitMigrationTable(); err != nil {
		return fmt.Errorf("migration tablosu oluşturulamadı: %w", err)
	}

	migrations := []struct {
		Name string
		Func func(*sql.DB) error
	}{
		{"create_users_table", CreateUsersTable},
		{"create_channels_table", CreateChannelsTable},
		{"create_videos_table", CreateVideosTable},
	}

	for _, migration := range migrations {
		if err := m.ApplyMigration(migration.Name, migration.Func); err != nil {
			return fmt.Errorf("migration uygulanamadı %s: %w", migration.Name, err)
		}
	}

	return nil
}

func CreateUsersTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT NOT NULL UNIQUE,
        email TEXT NOT NULL UNIQUE,
        full_name TEXT NOT NULL,
        password_hash TEXT NOT NULL,
        is_active BOOLEAN NOT NULL DEFAULT 1,
        is_admin BOOLEAN NOT NULL DEFAULT 0,
        created_at TIMESTAMP NOT NULL,
        last_login TIMESTAMP
    )
    `

	_, err := db.Exec(query)
	return err
}

func CreateChannelsTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS channels (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL UNIQUE,
        category TEXT NOT NULL,
        description TEXT,
        logo_url TEXT,
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL
    )
    `

	_, err := db.Exec(query)
	return err
}

func CreateVideosTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS videos (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        title TEXT NOT NULL,
        description TEXT,
        youtube_id TEXT NOT NULL UNIQUE,
        channel_id INTEGER NOT NULL,
        thumbnail_url TEXT,
        duration INTEGER,
        view_count INTEGER NOT NULL DEFAULT 0,
        is_live BOOLEAN NOT NULL DEFAULT 0,
        is_active BOOLEAN NOT NULL DEFAULT 1,
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL,
        FOREIGN KEY (channel_id) REFERENCES channels (id)
    );

    CREATE INDEX IF NOT EXISTS videos_channel_id_idx ON videos (channel_id);
    CREATE INDEX IF NOT EXISTS videos_created_at_idx ON videos (created_at);
    `

	_, err := db.Exec(query)
	return err
}
