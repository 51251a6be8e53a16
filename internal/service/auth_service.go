package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
	"streamhub/pkg/security"
	"streamhub/pkg/tokenstore"
)

type AuthService struct {
	repo          domain.UserRepository
	codec         *security.TokenCodec
	refreshTokens tokenstore.Store
	logger        logger.Logger
	accessExpire  time.Duration
	refreshExpire time.Duration
}

func NewAuthService(
	repo domain.UserRepository,
	codec *security.TokenCodec,
	refreshTokens tokenstore.Store,
	logger logger.Logger,
	accessExpire time.Duration,
	refreshExpire time.Duration,
) domain.AuthService {
	return &AuthService{
		repo:          repo,
		codec:         codec,
		refreshTokens: refreshTokens,
		logger:        logger,
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

func (s *AuthService) Register(username, email, fullName, password string) (*domain.User, error) {
	existing, err := s.repo.FindByUsername(username)
	if err != nil {
		s.logger.Error("Kullanıcı adı kontrolü sırasında hata oluştu", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, fmt.Errorf("kayıt yapılamadı: %w", err)
	}
	if existing != nil {
		metrics.RecordAuthAttempt("register", "conflict")
		return nil, domain.Conflict(fmt.Sprintf("Username '%s' already exists", username))
	}

	existing, err = s.repo.FindByEmail(email)
	if err != nil {
		s.logger.Error("E-posta adresi kontrolü sırasında hata oluştu", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kayıt yapılamadı: %w", err)
	}
	if existing != nil {
		metrics.RecordAuthAttempt("register", "conflict")
		return nil, domain.Conflict(fmt.Sprintf("Email '%s' already exists", email))
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		s.logger.Error("Şifre hashlenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kayıt yapılamadı: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsAdmin:      false,
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, err
	}

	metrics.RecordAuthAttempt("register", "success")
	s.logger.Info("Kullanıcı kaydedildi", map[string]interface{}{"id": user.ID, "username": user.Username})
	return user, nil
}

func (s *AuthService) Authenticate(identifier, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsernameOrEmail(identifier)
	if err != nil {
		return nil, fmt.Errorf("giriş yapılamadı: %w", err)
	}

	if user == nil {
		metrics.RecordAuthAttempt("login", "failure")
		return nil, domain.Unauthorized("Invalid username or password")
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn("Şifre eşleşmiyor", map[string]interface{}{"identifier": identifier})
		metrics.RecordAuthAttempt("login", "failure")
		return nil, domain.Unauthorized("Invalid username or password")
	}

	if !user.IsActive {
		metrics.RecordAuthAttempt("login", "inactive")
		return nil, domain.Unauthorized("User account is inactive")
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(user.ID, now); err != nil {
		s.logger.Error("Son giriş zamanı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
	} else {
		user.LastLogin = &now
	}

	metrics.RecordAuthAttempt("login", "success")
	return user, nil
}

// IssueTokens creates an access/refresh pair. The refresh token carries a
// JTI registered in the token store; refresh consumes it, so each refresh
// token works exactly once.
func (s *AuthService) IssueTokens(user *domain.User) (*domain.TokenPair, error) {
	subject := strconv.FormatInt(user.ID, 10)

	accessToken, err := s.codec.Sign(subject, user.Username, security.TokenUseAccess, "", s.accessExpire)
	if err != nil {
		return nil, fmt.Errorf("access token oluşturulamadı: %w", err)
	}

	jti := uuid.NewString()
	refreshToken, err := s.codec.Sign(subject, user.Username, security.TokenUseRefresh, jti, s.refreshExpire)
	if err != nil {
		return nil, fmt.Errorf("refresh token oluşturulamadı: %w", err)
	}

	ctx := context.Background()
	if err := s.refreshTokens.Save(ctx, jti, user.ID, s.refreshExpire); err != nil {
		return nil, fmt.Errorf("refresh token kaydedilemedi: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.accessExpire.Seconds()),
	}, nil
}

func (s *AuthService) Refresh(refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.codec.Parse(refreshToken)
	if err != nil {
		metrics.RecordAuthAttempt("refresh", "failure")
		return nil, domain.Unauthorized("Invalid or expired token")
	}

	if claims.TokenUse != security.TokenUseRefresh || claims.ID == "" {
		metrics.RecordAuthAttempt("refresh", "failure")
		return nil, domain.Unauthorized("Token is not a refresh token")
	}

	ctx := context.Background()
	live, err := s.refreshTokens.Consume(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("token yenilenemedi: %w", err)
	}
	if !live {
		metrics.RecordAuthAttempt("refresh", "reuse")
		return nil, domain.Unauthorized("Refresh token has already been used or revoked")
	}

	user, err := s.userFromSubject(claims.Subject)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.Unauthorized("User account is inactive")
	}

	metrics.RecordAuthAttempt("refresh", "success")
	return s.IssueTokens(user)
}

func (s *AuthService) ResolveUser(token string) (*domain.User, error) {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, domain.Unauthorized("Invalid or expired token")
	}

	if claims.TokenUse != security.TokenUseAccess {
		return nil, domain.Unauthorized("Token is not an access token")
	}

	return s.userFromSubject(claims.Subject)
}

func (s *AuthService) userFromSubject(subject string) (*domain.User, error) {
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domain.Unauthorized("Invalid or expired token")
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı yüklenemedi: %w", err)
	}
	if user == nil {
		return nil, domain.Unauthorized("User not found")
	}

	return user, nil
}
