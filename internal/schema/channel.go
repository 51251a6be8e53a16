package schema

import (
	"time"

	"streamhub/internal/domain"
)

type ChannelCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Category    string  `json:"category" validate:"required,oneof=sport entertainment kids knowledge gaming"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=500"`
}

func (r *ChannelCreateRequest) ToDomain() *domain.Channel {
	return &domain.Channel{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		LogoURL:     r.LogoURL,
	}
}

type ChannelUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string `json:"category" validate:"omitempty,oneof=sport entertainment kids knowledge gaming"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=500"`
}

func (r *ChannelUpdateRequest) ToPatch() *domain.ChannelPatch {
	return &domain.ChannelPatch{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		LogoURL:     r.LogoURL,
	}
}

type ChannelResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	LogoURL     *string   `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewChannelResponse(channel *domain.Channel) *ChannelResponse {
	return &ChannelResponse{
		ID:          channel.ID,
		Name:        channel.Name,
		Category:    channel.Category,
		Description: channel.Description,
		LogoURL:     channel.LogoURL,
		CreatedAt:   channel.CreatedAt,
		UpdatedAt:   channel.UpdatedAt,
	}
}

func NewChannelListResponse(channels []*domain.Channel) []*ChannelResponse {
	out := make([]*ChannelResponse, 0, len(channels))
	for _, channel := range channels {
		out = append(out, NewChannelResponse(channel))
	}
	return out
}
