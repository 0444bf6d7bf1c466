package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a profiles table with a JSONB payload
type PostgresStore struct {
	db *pgxpool.Pool
}

// creates a new Postgres-backed profile store
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// retrieves the profile stored for an email
func (s *PostgresStore) Get(ctx context.Context, email string) (*Profile, error) {
	var data []byte

	err := s.db.QueryRow(ctx, queryGetProfile, email).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}

	return &profile, nil
}

// stores the profile for an email, replacing any previous value
func (s *PostgresStore) Put(ctx context.Context, email string, profile *Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if _, err := s.db.Exec(ctx, queryUpsertProfile, email, data); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}
