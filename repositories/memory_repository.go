package repositories

import (
	"context"
	"sync"

	"github.com/Dosada05/tennis-cup/models"
)

type memoryTournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[string]*models.Tournament
}

// NewMemoryTournamentRepository keeps tournaments in process memory. Stored
// values are cloned on the way in and out.
func NewMemoryTournamentRepository() TournamentRepository {
	return &memoryTournamentRepository{tournaments: make(map[string]*models.Tournament)}
}

func (r *memoryTournamentRepository) Load(ctx context.Context, key string) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tournaments[key]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return t.Clone(), nil
}

func (r *memoryTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stored int64
	if existing, ok := r.tournaments[t.Key]; ok {
		stored = existing.Version
	}
	if stored != previousVersion(t.Version) {
		return ErrVersionConflict
	}
	r.tournaments[t.Key] = t.Clone()
	return nil
}

func (r *memoryTournamentRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[key]; !ok {
		return ErrTournamentNotFound
	}
	delete(r.tournaments, key)
	return nil
}
