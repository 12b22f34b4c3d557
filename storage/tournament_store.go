package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/Dosada05/tennis-cup/repositories"
)

const tournamentPrefix = "tournaments/"

// TournamentDocumentStore keeps each tournament as a JSON object in a
// bucket. The version check is read-then-write and is not atomic across
// processes.
type TournamentDocumentStore struct {
	objects ObjectStore
}

var _ repositories.TournamentRepository = (*TournamentDocumentStore)(nil)

func NewTournamentDocumentStore(objects ObjectStore) *TournamentDocumentStore {
	return &TournamentDocumentStore{objects: objects}
}

func objectKey(key string) string {
	return tournamentPrefix + key + ".json"
}

func (s *TournamentDocumentStore) Load(ctx context.Context, key string) (*models.Tournament, error) {
	data, err := s.objects.Download(ctx, objectKey(key))
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, repositories.ErrTournamentNotFound
		}
		return nil, err
	}
	var t models.Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tournament %q: %w", key, err)
	}
	return &t, nil
}

func (s *TournamentDocumentStore) Save(ctx context.Context, t *models.Tournament) error {
	var stored int64
	current, err := s.Load(ctx, t.Key)
	switch {
	case err == nil:
		stored = current.Version
	case errors.Is(err, repositories.ErrTournamentNotFound):
	default:
		return err
	}
	if prev := max(t.Version-1, 0); stored != prev {
		return repositories.ErrVersionConflict
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode tournament %q: %w", t.Key, err)
	}
	_, err = s.objects.Upload(ctx, objectKey(t.Key), "application/json", bytes.NewReader(data))
	return err
}

func (s *TournamentDocumentStore) Delete(ctx context.Context, key string) error {
	exists, err := s.objects.Exists(ctx, objectKey(key))
	if err != nil {
		return err
	}
	if !exists {
		return repositories.ErrTournamentNotFound
	}
	return s.objects.Delete(ctx, objectKey(key))
}
