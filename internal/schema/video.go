package schema

import (
	"time"

	"streamhub/internal/domain"
)

type VideoCreateRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=500"`
	Description  *string `json:"description"`
	YoutubeID    string  `json:"youtube_id" validate:"required,len=11"`
	ChannelID    int64   `json:"channel_id" validate:"required,gt=0"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Duration     *int64  `json:"duration" validate:"omitempty,gte=0"`
	ViewCount    int64   `json:"view_count" validate:"gte=0"`
	IsLive       bool    `json:"is_live"`
	IsActive     *bool   `json:"is_active"`
}

func (r *VideoCreateRequest) ToDomain() *domain.Video {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Video{
		Title:        r.Title,
		Description:  r.Description,
		YoutubeID:    r.YoutubeID,
		ChannelID:    r.ChannelID,
		ThumbnailURL: r.ThumbnailURL,
		Duration:     r.Duration,
		ViewCount:    r.ViewCount,
		IsLive:       r.IsLive,
		IsActive:     isActive,
	}
}

type VideoUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=500"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Duration     *int64  `json:"duration" validate:"omitempty,gte=0"`
	ViewCount    *int64  `json:"view_count" validate:"omitempty,gte=0"`
	IsLive       *bool   `json:"is_live"`
	IsActive     *bool   `json:"is_active"`
}

func (r *VideoUpdateRequest) ToPatch() *domain.VideoPatch {
	return &domain.VideoPatch{
		Title:        r.Title,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		Duration:     r.Duration,
		ViewCount:    r.ViewCount,
		IsLive:       r.IsLive,
		IsActive:     r.IsActive,
	}
}

type VideoResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	YoutubeID    string    `json:"youtube_id"`
	ChannelID    int64     `json:"channel_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Duration     *int64    `json:"duration"`
	ViewCount    int64     `json:"view_count"`
	IsLive       bool      `json:"is_live"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewVideoResponse(video *domain.Video) *VideoResponse {
	return &VideoResponse{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		YoutubeID:    video.YoutubeID,
		ChannelID:    video.ChannelID,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		ViewCount:    video.ViewCount,
		IsLive:       video.IsLive,
		IsActive:     video.IsActive,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
}

func NewVideoListResponse(videos []*domain.Video) []*VideoResponse {
	out := make([]*VideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, NewVideoResponse(video))
	}
	return out
}
