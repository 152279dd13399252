package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses; pgxmock satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Storage is the PostgreSQL-backed persistence layer. The only relational data
// this service owns is its user accounts (interactive logins plus the
// e-commerce service worker account the pricing flow resolves).
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

// newPgxPool is a seam that lets tests substitute a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
