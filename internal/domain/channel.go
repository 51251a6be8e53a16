package domain

import "time"

const (
	CategorySport         = "sport"
	CategoryEntertainment = "entertainment"
	CategoryKids          = "kids"
	CategoryKnowledge     = "knowledge"
	CategoryGaming        = "gaming"
)

type Channel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	LogoURL     *string   `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChannelPatch carries only the fields explicitly supplied by the client;
// nil fields are left untouched on update.
type ChannelPatch struct {
	Name        *string
	Category    *string
	Description *string
	LogoURL     *string
}

type ChannelRepository interface {
	FindAll(skip, limit int) ([]*Channel, error)
	FindByID(id int64) (*Channel, error)
	FindByName(name string) (*Channel, error)
	Create(channel *Channel) error
	Update(channel *Channel) error
	Delete(id int64) error
}

type ChannelService interface {
	ListChannels(skip, limit int) ([]*Channel, error)
	GetChannelByID(id int64) (*Channel, error)
	GetChannelByName(name string) (*Channel, error)
	CreateChannel(channel *Channel) error
	UpdateChannel(id int64, patch *ChannelPatch) (*Channel, error)
	DeleteChannel(id int64) error
}
