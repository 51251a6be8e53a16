package domain

import "time"

type Video struct {
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

type VideoPatch struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	Duration     *int64
	ViewCount    *int64
	IsLive       *bool
	IsActive     *bool
}

// VideoFilter selects a page of videos; nil filters match everything.
type VideoFilter struct {
	Skip      int
	Limit     int
	ChannelID *int64
	IsActive  *bool
}

type VideoRepository interface {
	FindAll(filter VideoFilter) ([]*Video, error)
	FindByID(id int64) (*Video, error)
	FindByYoutubeID(youtubeID string) (*Video, error)
	Create(video *Video) error
	Update(video *Video) error
	Delete(id int64) error
	IncrementViewCount(id int64) error
}

type VideoService interface {
	ListVideos(filter VideoFilter) ([]*Video, error)
	GetVideoByID(id int64) (*Video, error)
	GetVideoByYoutubeID(youtubeID string) (*Video, error)
	CreateVideo(video *Video) error
	UpdateVideo(id int64, patch *VideoPatch) (*Video, error)
	DeleteVideo(id int64) error
	IncrementViewCount(id int64) (*Video, error)
}
