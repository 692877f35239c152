package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tracewell/covid-social-be/internal/models"
	"github.com/tracewell/covid-social-be/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

const userColumns = `id, first_name, last_name, email, password_hash, has_covid, last_exposed, vaccination_type, first_dose, second_dose, friends, date_joined`

// Store provides Postgres-backed persistence for users. The friend list is a
// TEXT[] column so friend mutation is a single-row write.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore connects to the database and runs migrations.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			has_covid BOOLEAN NOT NULL DEFAULT FALSE,
			last_exposed TIMESTAMPTZ,
			vaccination_type TEXT,
			first_dose TIMESTAMPTZ,
			second_dose TIMESTAMPTZ,
			friends TEXT[] NOT NULL DEFAULT '{}',
			date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE INDEX IF NOT EXISTS users_last_name_idx ON users (last_name);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row. A duplicate email surfaces as
// storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (id, first_name, last_name, email, password_hash, has_covid, friends, date_joined)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + userColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.HasCovid, emptyIfNil(user.Friends), user.DateJoined)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByID fetches a user by id.
func (s *Store) FindByID(ctx context.Context, id string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// ListUsers returns all users sorted by last name.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY last_name;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListByIDs returns the users whose ids appear in ids. Missing ids are
// skipped rather than reported.
func (s *Store) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY last_name;`
	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// UpdateFriends overwrites the user's friend list.
func (s *Store) UpdateFriends(ctx context.Context, id string, friends []string) error {
	const query = `UPDATE users SET friends = $2 WHERE id = $1;`
	return s.execOnUser(ctx, query, id, emptyIfNil(friends))
}

// UpdateVaccination sets the vaccination fields on the user's row.
func (s *Store) UpdateVaccination(ctx context.Context, id string, vac *models.Vaccination) error {
	const query = `UPDATE users SET vaccination_type = $2, first_dose = $3, second_dose = $4 WHERE id = $1;`
	if vac == nil {
		return s.execOnUser(ctx, query, id, nil, nil, nil)
	}
	return s.execOnUser(ctx, query, id, vac.Type, vac.FirstDose, vac.SecondDose)
}

// UpdateCovidStatus sets the covid flag and exposure timestamp.
func (s *Store) UpdateCovidStatus(ctx context.Context, id string, hasCovid bool, lastExposed *time.Time) error {
	const query = `UPDATE users SET has_covid = $2, last_exposed = $3 WHERE id = $1;`
	return s.execOnUser(ctx, query, id, hasCovid, lastExposed)
}

// DeleteUser removes the user's row. References held in other users' friend
// lists are left in place.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) execOnUser(ctx context.Context, query, id string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var vacType *string
	var firstDose, secondDose *time.Time
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordHash, &user.HasCovid, &user.LastExposed,
		&vacType, &firstDose, &secondDose, &user.Friends, &user.DateJoined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	if vacType != nil && firstDose != nil {
		user.Vaccination = &models.Vaccination{
			Type:       *vacType,
			FirstDose:  *firstDose,
			SecondDose: secondDose,
		}
	}
	if user.Friends == nil {
		user.Friends = []string{}
	}
	return user, nil
}

func emptyIfNil(friends []string) []string {
	if friends == nil {
		return []string{}
	}
	return friends
}
