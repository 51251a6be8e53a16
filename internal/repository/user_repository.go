package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = "id, username, email, full_name, password_hash, is_active, is_admin, created_at, last_login"

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsAdmin,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return &user, nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = $1", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı adına göre bulunamadı", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByUsernameOrEmail(identifier string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = $1 OR email = $2", userColumns)

	user, err := r.scanUser(r.db.QueryRow(query, identifier, identifier))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı kimliğine göre bulunamadı", map[string]interface{}{"identifier": identifier, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (username, email, full_name, password_hash, is_active, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	user.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.IsActive,
		user.IsAdmin,
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Username or email already exists")
		}
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	metrics.RecordDatabaseOperation("insert", "user")
	return nil
}

func (r *UserRepository) UpdateLastLogin(id int64, at time.Time) error {
	query := "UPDATE users SET last_login = $1 WHERE id = $2"

	_, err := r.db.Exec(query, at, id)
	if err != nil {
		r.logger.Error("Son giriş zamanı güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("son giriş zamanı güncellenemedi: %w", err)
	}

	metrics.RecordDatabaseOperation("update", "user")
	return nil
}
