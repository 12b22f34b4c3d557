package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Dosada05/tennis-cup/repositories"
)

var tournamentKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if !tournamentKeyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrTournamentKeyInvalid)
	}
	return key, nil
}

func validMaxPlayers(n int) bool {
	return n >= 4 && n%2 == 0
}

// handleRepositoryError maps store errors onto the service taxonomy.
func handleRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return fmt.Errorf("%w: %w %q", ErrNotFound, ErrTournamentNotFound, key)
	default:
		return fmt.Errorf("%w: tournament %q: %w", ErrPersistenceFailure, key, err)
	}
}

// keyedMutex serialises read-modify-write cycles per tournament key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
