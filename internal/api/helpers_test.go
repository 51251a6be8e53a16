package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"streamhub/internal/api"
	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/internal/repository"
	"streamhub/internal/service"
	"streamhub/pkg/logger"
	"streamhub/pkg/security"
	"streamhub/pkg/validation"
)

type testApp struct {
	mux *http.ServeMux
	db  *sql.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrationService := database.NewMigrationService(db, log)
	require.NoError(t, migrationService.RunMigrations())

	codec, err := security.NewTokenCodec("test-secret", "HS256")
	require.NoError(t, err)

	authService := service.NewAuthService(
		repository.NewUserRepository(db, log), codec, newMemoryTokenStore(), log, time.Hour, 24*time.Hour,
	)
	channelService := service.NewChannelService(repository.NewChannelRepository(db, log), log)
	videoService := service.NewVideoService(repository.NewVideoRepository(db, log), log)

	validate := validation.New()
	responder := api.NewResponder(log, false)

	authHandler := api.NewAuthHandler(authService, validate, responder, log)
	channelHandler := api.NewChannelHandler(channelService, validate, responder, log)
	videoHandler := api.NewVideoHandler(videoService, validate, responder, log)

	mux := http.NewServeMux()
	authHandler.RegisterRoutes(mux, api.RequireAuth(authService, responder))
	channelHandler.RegisterRoutes(mux)
	videoHandler.RegisterRoutes(mux)

	return &testApp{mux: mux, db: db}
}

// memoryTokenStore mirrors the redis store's single-use semantics without
// needing a server in tests.
type memoryTokenStore struct {
	mu   sync.Mutex
	jtis map[string]int64
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{jtis: make(map[string]int64)}
}

func (s *memoryTokenStore) Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jtis[jti] = userID
	return nil
}

func (s *memoryTokenStore) Consume(ctx context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jtis[jti]; !ok {
		return false, nil
	}
	delete(s.jtis, jti)
	return true, nil
}

type envelope struct {
	Status     bool            `json:"status"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
	Count      *int            `json:"count"`
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, rec.Code, env.StatusCode)

	return rec, env
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func registerAndLogin(t *testing.T, a *testApp) (accessToken, refreshToken string) {
	t.Helper()

	rec, _ := a.do(t, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "ayse",
		"email":     "ayse@example.com",
		"full_name": "Ayşe Yılmaz",
		"password":  "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ayse",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeData(t, env, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	return tokens.AccessToken, tokens.RefreshToken
}

func createChannel(t *testing.T, a *testApp, name, category string) int64 {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/api/v1/channels/", map[string]interface{}{
		"name":     name,
		"category": category,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var channel struct {
		ID int64 `json:"id"`
	}
	decodeData(t, env, &channel)
	require.NotZero(t, channel.ID)

	return channel.ID
}

func createVideo(t *testing.T, a *testApp, title, youtubeID string, channelID int64) int64 {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/api/v1/videos/", map[string]interface{}{
		"title":      title,
		"youtube_id": youtubeID,
		"channel_id": channelID,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var video struct {
		ID int64 `json:"id"`
	}
	decodeData(t, env, &video)
	require.NotZero(t, video.ID)

	return video.ID
}
