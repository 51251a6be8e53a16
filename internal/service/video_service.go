package service

import (
	"fmt"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
)

type VideoService struct {
	repo   domain.VideoRepository
	logger logger.Logger
}

func NewVideoService(repo domain.VideoRepository, logger logger.Logger) domain.VideoService {
	return &VideoService{
		repo:   repo,
		logger: logger,
	}
}

func (s *VideoService) ListVideos(filter domain.VideoFilter) ([]*domain.Video, error) {
	videos, err := s.repo.FindAll(filter)
	if err != nil {
		s.logger.Error("Videolar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("videolar listelenemedi: %w", err)
	}

	return videos, nil
}

func (s *VideoService) GetVideoByID(id int64) (*domain.Video, error) {
	video, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("video sorgulanamadı: %w", err)
	}

	if video == nil {
		return nil, domain.NotFound(fmt.Sprintf("Video with ID %d not found", id))
	}

	return video, nil
}

func (s *VideoService) GetVideoByYoutubeID(youtubeID string) (*domain.Video, error) {
	video, err := s.repo.FindByYoutubeID(youtubeID)
	if err != nil {
		return nil, fmt.Errorf("video sorgulanamadı: %w", err)
	}

	if video == nil {
		return nil, domain.NotFound(fmt.Sprintf("Video with YouTube ID '%s' not found", youtubeID))
	}

	return video, nil
}

func (s *VideoService) CreateVideo(video *domain.Video) error {
	existing, err := s.repo.FindByYoutubeID(video.YoutubeID)
	if err != nil {
		s.logger.Error("YouTube ID kontrolü sırasında hata oluştu", map[string]interface{}{"youtube_id": video.YoutubeID, "error": err.Error()})
		return fmt.Errorf("video oluşturulamadı: %w", err)
	}

	if existing != nil {
		return domain.Conflict(fmt.Sprintf("Video with YouTube ID '%s' already exists", video.YoutubeID))
	}

	if err := s.repo.Create(video); err != nil {
		return err
	}

	s.logger.Info("Video oluşturuldu", map[string]interface{}{"id": video.ID, "youtube_id": video.YoutubeID})
	return nil
}

func (s *VideoService) UpdateVideo(id int64, patch *domain.VideoPatch) (*domain.Video, error) {
	video, err := s.GetVideoByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		video.Title = *patch.Title
	}
	if patch.Description != nil {
		video.Description = patch.Description
	}
	if patch.ThumbnailURL != nil {
		video.ThumbnailURL = patch.ThumbnailURL
	}
	if patch.Duration != nil {
		video.Duration = patch.Duration
	}
	if patch.ViewCount != nil {
		video.ViewCount = *patch.ViewCount
	}
	if patch.IsLive != nil {
		video.IsLive = *patch.IsLive
	}
	if patch.IsActive != nil {
		video.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(video); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *VideoService) DeleteVideo(id int64) error {
	if _, err := s.GetVideoByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Video silindi", map[string]interface{}{"id": id})
	return nil
}

func (s *VideoService) IncrementViewCount(id int64) (*domain.Video, error) {
	if err := s.repo.IncrementViewCount(id); err != nil {
		return nil, err
	}

	return s.GetVideoByID(id)
}
