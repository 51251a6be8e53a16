package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
)

type VideoRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewVideoRepository(db *sql.DB, logger logger.Logger) domain.VideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

const videoColumns = "id, title, description, youtube_id, channel_id, thumbnail_url, duration, view_count, is_live, is_active, created_at, updated_at"

func scanVideo(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Video, error) {
	var video domain.Video
	var description, thumbnailURL sql.NullString
	var duration sql.NullInt64

	err := scanner.Scan(
		&video.ID,
		&video.Title,
		&description,
		&video.YoutubeID,
		&video.ChannelID,
		&thumbnailURL,
		&duration,
		&video.ViewCount,
		&video.IsLive,
		&video.IsActive,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		video.Description = &description.String
	}
	if thumbnailURL.Valid {
		video.ThumbnailURL = &thumbnailURL.String
	}
	if duration.Valid {
		video.Duration = &duration.Int64
	}

	return &video, nil
}

func (r *VideoRepository) FindAll(filter domain.VideoFilter) ([]*domain.Video, error) {
	query := fmt.Sprintf("SELECT %s FROM videos", videoColumns)
	args := make([]interface{}, 0, 4)

	where := ""
	if filter.ChannelID != nil {
		args = append(args, *filter.ChannelID)
		where = fmt.Sprintf(" WHERE channel_id = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		if where == "" {
			where = fmt.Sprintf(" WHERE is_active = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND is_active = $%d", len(args))
		}
	}

	args = append(args, filter.Limit, filter.Skip)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Videolar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("videolar listelenemedi: %w", err)
	}
	defer rows.Close()

	videos := make([]*domain.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("video satırı okunamadı: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("videolar listelenemedi: %w", err)
	}

	return videos, nil
}

func (r *VideoRepository) FindByID(id int64) (*domain.Video, error) {
	query := fmt.Sprintf("SELECT %s FROM videos WHERE id = $1", videoColumns)

	video, err := scanVideo(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Video ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("video sorgulanamadı: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) FindByYoutubeID(youtubeID string) (*domain.Video, error) {
	query := fmt.Sprintf("SELECT %s FROM videos WHERE youtube_id = $1", videoColumns)

	video, err := scanVideo(r.db.QueryRow(query, youtubeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Video YouTube ID'ye göre bulunamadı", map[string]interface{}{"youtube_id": youtubeID, "error": err.Error()})
		return nil, fmt.Errorf("video sorgulanamadı: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) Create(video *domain.Video) error {
	query := `
		INSERT INTO videos (title, description, youtube_id, channel_id, thumbnail_url, duration, view_count, is_live, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	err := r.db.QueryRow(
		query,
		video.Title,
		video.Description,
		video.YoutubeID,
		video.ChannelID,
		video.ThumbnailURL,
		video.Duration,
		video.ViewCount,
		video.IsLive,
		video.IsActive,
		video.CreatedAt,
		video.UpdatedAt,
	).Scan(&video.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(fmt.Sprintf("Video with YouTube ID '%s' already exists", video.YoutubeID))
		}
		r.logger.Error("Video oluşturulamadı", map[string]interface{}{"youtube_id": video.YoutubeID, "error": err.Error()})
		return fmt.Errorf("video oluşturulamadı: %w", err)
	}

	metrics.RecordDatabaseOperation("insert", "video")
	return nil
}

func (r *VideoRepository) Update(video *domain.Video) error {
	query := `
		UPDATE videos
		SET title = $1, description = $2, thumbnail_url = $3, duration = $4, view_count = $5, is_live = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`

	video.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		query,
		video.Title,
		video.Description,
		video.ThumbnailURL,
		video.Duration,
		video.ViewCount,
		video.IsLive,
		video.IsActive,
		video.UpdatedAt,
		video.ID,
	)

	if err != nil {
		r.logger.Error("Video güncellenemedi", map[string]interface{}{"id": video.ID, "error": err.Error()})
		return fmt.Errorf("video güncellenemedi: %w", err)
	}

	metrics.RecordDatabaseOperation("update", "video")
	return nil
}

func (r *VideoRepository) Delete(id int64) error {
	query := "DELETE FROM videos WHERE id = $1"

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Video silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("video silinemedi: %w", err)
	}

	metrics.RecordDatabaseOperation("delete", "video")
	return nil
}

// IncrementViewCount bumps the counter in a single UPDATE; the increment is
// atomic at the storage layer.
func (r *VideoRepository) IncrementViewCount(id int64) error {
	query := "UPDATE videos SET view_count = view_count + 1, updated_at = $1 WHERE id = $2"

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		r.logger.Error("Görüntülenme sayısı artırılamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("görüntülenme sayısı artırılamadı: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("görüntülenme sayısı artırılamadı: %w", err)
	}
	if affected == 0 {
		return domain.NotFound(fmt.Sprintf("Video with ID %d not found", id))
	}

	metrics.RecordDatabaseOperation("update", "video")
	metrics.RecordVideoView()
	return nil
}
