package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
)

type ChannelRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewChannelRepository(db *sql.DB, logger logger.Logger) domain.ChannelRepository {
	return &ChannelRepository{
		db:     db,
		logger: logger,
	}
}

const channelColumns = "id, name, category, description, logo_url, created_at, updated_at"

func scanChannel(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Channel, error) {
	var channel domain.Channel
	var description, logoURL sql.NullString

	err := scanner.Scan(
		&channel.ID,
		&channel.Name,
		&channel.Category,
		&description,
		&logoURL,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		channel.Description = &description.String
	}
	if logoURL.Valid {
		channel.LogoURL = &logoURL.String
	}

	return &channel, nil
}

func (r *ChannelRepository) FindAll(skip, limit int) ([]*domain.Channel, error) {
	query := fmt.Sprintf("SELECT %s FROM channels ORDER BY name LIMIT $1 OFFSET $2", channelColumns)

	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		r.logger.Error("Kanallar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kanallar listelenemedi: %w", err)
	}
	defer rows.Close()

	channels := make([]*domain.Channel, 0)
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("kanal satırı okunamadı: %w", err)
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kanallar listelenemedi: %w", err)
	}

	return channels, nil
}

func (r *ChannelRepository) FindByID(id int64) (*domain.Channel, error) {
	query := fmt.Sprintf("SELECT %s FROM channels WHERE id = $1", channelColumns)

	channel, err := scanChannel(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kanal ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kanal sorgulanamadı: %w", err)
	}

	return channel, nil
}

func (r *ChannelRepository) FindByName(name string) (*domain.Channel, error) {
	query := fmt.Sprintf("SELECT %s FROM channels WHERE name = $1", channelColumns)

	channel, err := scanChannel(r.db.QueryRow(query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kanal adına göre bulunamadı", map[string]interface{}{"name": name, "error": err.Error()})
		return nil, fmt.Errorf("kanal sorgulanamadı: %w", err)
	}

	return channel, nil
}

func (r *ChannelRepository) Create(channel *domain.Channel) error {
	query := `
		INSERT INTO channels (name, category, description, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	channel.CreatedAt = now
	channel.UpdatedAt = now

	err := r.db.QueryRow(
		query,
		channel.Name,
		channel.Category,
		channel.Description,
		channel.LogoURL,
		channel.CreatedAt,
		channel.UpdatedAt,
	).Scan(&channel.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(fmt.Sprintf("Channel '%s' already exists", channel.Name))
		}
		r.logger.Error("Kanal oluşturulamadı", map[string]interface{}{"name": channel.Name, "error": err.Error()})
		return fmt.Errorf("kanal oluşturulamadı: %w", err)
	}

	metrics.RecordDatabaseOperation("insert", "channel")
	return nil
}

func (r *ChannelRepository) Update(channel *domain.Channel) error {
	query := `
		UPDATE channels
		SET name = $1, category = $2, description = $3, logo_url = $4, updated_at = $5
		WHERE id = $6
	`

	channel.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		query,
		channel.Name,
		channel.Category,
		channel.Description,
		channel.LogoURL,
		channel.UpdatedAt,
		channel.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(fmt.Sprintf("Channel '%s' already exists", channel.Name))
		}
		r.logger.Error("Kanal güncellenemedi", map[string]interface{}{"id": channel.ID, "error": err.Error()})
		return fmt.Errorf("kanal güncellenemedi: %w", err)
	}

	metrics.RecordDatabaseOperation("update", "channel")
	return nil
}

func (r *ChannelRepository) Delete(id int64) error {
	query := "DELETE FROM channels WHERE id = $1"

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Kanal silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("kanal silinemedi: %w", err)
	}

	metrics.RecordDatabaseOperation("delete", "channel")
	return nil
}
