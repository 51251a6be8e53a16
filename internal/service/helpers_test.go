package service_test

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/pkg/logger"
)

func newTestLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrationService := database.NewMigrationService(db, newTestLogger())
	require.NoError(t, migrationService.RunMigrations())

	return db
}

// memoryTokenStore is an in-process tokenstore.Store for tests; it mirrors
// the single-use semantics of the redis implementation.
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
