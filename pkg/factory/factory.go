package factory

import (
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/internal/domain"
	"streamhub/internal/repository"
	"streamhub/internal/service"
	"streamhub/pkg/logger"
	"streamhub/pkg/redis"
	"streamhub/pkg/security"
	"streamhub/pkg/tokenstore"
	"streamhub/pkg/validation"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetRedisClient() *goredis.Client
	GetValidator() *validation.Validator
	GetTokenStore() tokenstore.Store

	GetUserRepository() domain.UserRepository
	GetChannelRepository() domain.ChannelRepository
	GetVideoRepository() domain.VideoRepository

	GetAuthService() domain.AuthService
	GetChannelService() domain.ChannelService
	GetVideoService() domain.VideoService
}

type AppFactory struct {
	config      *config.Config
	logger      logger.Logger
	db          *sql.DB
	redisClient *goredis.Client
	validator   *validation.Validator
	tokenStore  tokenstore.Store

	userRepository    domain.UserRepository
	channelRepository domain.ChannelRepository
	videoRepository   domain.VideoRepository

	authService    domain.AuthService
	channelService domain.ChannelService
	videoService   domain.VideoService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("Redis bağlantısı kurulamadı: %w", err)
	}

	codec, err := security.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		return nil, err
	}

	factory := &AppFactory{
		config:      cfg,
		logger:      log,
		db:          db,
		redisClient: redisClient,
		validator:   validation.New(),
		tokenStore:  tokenstore.NewRedisStore(redisClient, log, "streamhub"),
	}

	factory.initRepositories()
	factory.initServices(codec)

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.channelRepository = repository.NewChannelRepository(f.db, f.logger)
	f.videoRepository = repository.NewVideoRepository(f.db, f.logger)
}

func (f *AppFactory) initServices(codec *security.TokenCodec) {
	f.authService = service.NewAuthService(
		f.userRepository,
		codec,
		f.tokenStore,
		f.logger,
		f.config.JWT.AccessExpire,
		f.config.JWT.RefreshExpire,
	)
	f.channelService = service.NewChannelService(f.channelRepository, f.logger)
	f.videoService = service.NewVideoService(f.videoRepository, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetRedisClient() *goredis.Client {
	return f.redisClient
}

func (f *AppFactory) GetValidator() *validation.Validator {
	return f.validator
}

func (f *AppFactory) GetTokenStore() tokenstore.Store {
	return f.tokenStore
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetChannelRepository() domain.ChannelRepository {
	return f.channelRepository
}

func (f *AppFactory) GetVideoRepository() domain.VideoRepository {
	return f.videoRepository
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetChannelService() domain.ChannelService {
	return f.channelService
}

func (f *AppFactory) GetVideoService() domain.VideoService {
	return f.videoService
}
