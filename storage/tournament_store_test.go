package storage_test

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/Dosada05/tennis-cup/repositories"
	"github.com/Dosada05/tennis-cup/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryObjects) Upload(_ context.Context, key, contentType string, r io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return &storage.UploadResult{Key: key}, nil
}

func (m *memoryObjects) Download(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func (m *memoryObjects) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryObjects) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func TestTournamentDocumentStore(t *testing.T) {
	ctx := context.Background()
	objects := newMemoryObjects()
	store := storage.NewTournamentDocumentStore(objects)

	_, err := store.Load(ctx, "club-cup")
	assert.ErrorIs(t, err, repositories.ErrTournamentNotFound)

	tour := models.NewTournament("club-cup", 4)
	tour.Participants = []string{"A", "B"}
	tour.Version = 1
	require.NoError(t, store.Save(ctx, tour))
	assert.Equal(t, "application/json", objects.types["tournaments/club-cup.json"])

	got, err := store.Load(ctx, "club-cup")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got.Participants)
	assert.Equal(t, int64(1), got.Version)

	assert.ErrorIs(t, store.Save(ctx, tour), repositories.ErrVersionConflict, "create over an existing document")

	got.Version = 2
	got.Participants = append(got.Participants, "C")
	require.NoError(t, store.Save(ctx, got))

	stale := tour.Clone()
	stale.Version = 2
	assert.ErrorIs(t, store.Save(ctx, stale), repositories.ErrVersionConflict)

	require.NoError(t, store.Delete(ctx, "club-cup"))
	assert.ErrorIs(t, store.Delete(ctx, "club-cup"), repositories.ErrTournamentNotFound)
}
