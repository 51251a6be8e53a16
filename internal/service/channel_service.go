package service

import (
	"fmt"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
)

type ChannelService struct {
	repo   domain.ChannelRepository
	logger logger.Logger
}

func NewChannelService(repo domain.ChannelRepository, logger logger.Logger) domain.ChannelService {
	return &ChannelService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ChannelService) ListChannels(skip, limit int) ([]*domain.Channel, error) {
	channels, err := s.repo.FindAll(skip, limit)
	if err != nil {
		s.logger.Error("Kanallar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kanallar listelenemedi: %w", err)
	}

	return channels, nil
}

func (s *ChannelService) GetChannelByID(id int64) (*domain.Channel, error) {
	channel, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("kanal sorgulanamadı: %w", err)
	}

	if channel == nil {
		return nil, domain.NotFound(fmt.Sprintf("Channel with ID %d not found", id))
	}

	return channel, nil
}

func (s *ChannelService) GetChannelByName(name string) (*domain.Channel, error) {
	channel, err := s.repo.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("kanal sorgulanamadı: %w", err)
	}

	return channel, nil
}

func (s *ChannelService) CreateChannel(channel *domain.Channel) error {
	existing, err := s.repo.FindByName(channel.Name)
	if err != nil {
		s.logger.Error("Kanal adı kontrolü sırasında hata oluştu", map[string]interface{}{"name": channel.Name, "error": err.Error()})
		return fmt.Errorf("kanal oluşturulamadı: %w", err)
	}

	if existing != nil {
		return domain.Conflict(fmt.Sprintf("Channel '%s' already exists", channel.Name))
	}

	if err := s.repo.Create(channel); err != nil {
		return err
	}

	s.logger.Info("Kanal oluşturuldu", map[string]interface{}{"id": channel.ID, "name": channel.Name})
	return nil
}

func (s *ChannelService) UpdateChannel(id int64, patch *domain.ChannelPatch) (*domain.Channel, error) {
	channel, err := s.GetChannelByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != channel.Name {
		existing, err := s.repo.FindByName(*patch.Name)
		if err != nil {
			return nil, fmt.Errorf("kanal güncellenemedi: %w", err)
		}
		if existing != nil {
			return nil, domain.Conflict(fmt.Sprintf("Channel '%s' already exists", *patch.Name))
		}
		channel.Name = *patch.Name
	}
	if patch.Category != nil {
		channel.Category = *patch.Category
	}
	if patch.Description != nil {
		channel.Description = patch.Description
	}
	if patch.LogoURL != nil {
		channel.LogoURL = patch.LogoURL
	}

	if err := s.repo.Update(channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (s *ChannelService) DeleteChannel(id int64) error {
	if _, err := s.GetChannelByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Kanal silindi", map[string]interface{}{"id": id})
	return nil
}
