package storage

import (
	"context"
	"errors"
	"time"

	"github.com/tracewell/covid-social-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict (duplicate email).
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers. It is opened
// at startup, injected into the server, and closed on shutdown.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns all users sorted by last name.
	ListUsers(ctx context.Context) ([]models.User, error)
	// ListByIDs returns the users whose ids appear in ids. Ids that no
	// longer resolve are silently skipped; the friend graph tolerates
	// dangling references.
	ListByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// UpdateFriends overwrites the user's friend list in a single-row
	// write. Concurrent writers race and the last write wins.
	UpdateFriends(ctx context.Context, id string, friends []string) error
	UpdateVaccination(ctx context.Context, id string, vac *models.Vaccination) error
	UpdateCovidStatus(ctx context.Context, id string, hasCovid bool, lastExposed *time.Time) error
	DeleteUser(ctx context.Context, id string) error
}
