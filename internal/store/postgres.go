package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists parse results and users in PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// SaveParse implements ParseStore. A repeated fingerprint overwrites the
// previous entry.
func (p *Postgres) SaveParse(ctx context.Context, result *ParseResult) error {
	profileJSON, err := json.Marshal(result.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	dataJSON, err := json.Marshal(result.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal resume data: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO parse_results (fingerprint, profile, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (fingerprint) DO UPDATE SET profile = $2, data = $3, created_at = NOW()`,
		result.Fingerprint, profileJSON, dataJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save parse result: %w", err)
	}
	return nil
}

// GetParse implements ParseStore.
func (p *Postgres) GetParse(ctx context.Context, fingerprint string) (*ParseResult, error) {
	result := ParseResult{Fingerprint: fingerprint}
	var profileJSON, dataJSON []byte

	err := p.pool.QueryRow(ctx,
		`SELECT profile, data, created_at FROM parse_results WHERE fingerprint = $1`,
		fingerprint,
	).Scan(&profileJSON, &dataJSON, &result.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &result.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := json.Unmarshal(dataJSON, &result.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &result, nil
}

// CreateUser implements UserStore.
func (p *Postgres) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	var user User
	err := p.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, password_hash, created_at`,
		name, email, passwordHash,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetUser implements UserStore.
func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail implements UserStore.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users WHERE LOWER(email) = LOWER($1)`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
