package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/tennis-cup/models"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrVersionConflict is returned by Save when the stored aggregate was
	// written by someone else since it was loaded.
	ErrVersionConflict = errors.New("tournament was modified concurrently")
)

// TournamentRepository persists the tournament aggregate as one document.
// Save expects t.Version to be one higher than the stored version (or 1 for
// a new tournament).
type TournamentRepository interface {
	Load(ctx context.Context, key string) (*models.Tournament, error)
	Save(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, key string) error
}
