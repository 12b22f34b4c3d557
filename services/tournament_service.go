package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/metrics"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/Dosada05/tennis-cup/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*TournamentView, error)
	GetTournament(ctx context.Context, key string) (*TournamentView, error)
	RegisterPlayer(ctx context.Context, key string, input RegisterPlayerInput) (*TournamentView, error)
	StartTournament(ctx context.Context, key string) (*TournamentView, error)
	SubmitResult(ctx context.Context, key, matchID string, input SubmitResultInput) (*TournamentView, error)
	ResetTournament(ctx context.Context, key string) error
}

type CreateTournamentInput struct {
	Key        string `json:"key"`
	MaxPlayers int    `json:"max_players"`
}

type RegisterPlayerInput struct {
	Name string `json:"name"`
}

type SubmitResultInput struct {
	GamesP1 int `json:"games_p1"`
	GamesP2 int `json:"games_p2"`
}

// TournamentView is the read model returned to callers and published to
// subscribers: the stored aggregate plus everything derived from it.
type TournamentView struct {
	Tournament   *models.Tournament                                 `json:"tournament"`
	Phase        models.Phase                                       `json:"phase"`
	Status       string                                             `json:"status"`
	Standings    map[models.GroupLabel][]models.TournamentStanding `json:"standings"`
	FinalRanking []models.Placement                                 `json:"final_ranking,omitempty"`
}

type tournamentService struct {
	repo              repositories.TournamentRepository
	generator         brackets.FixtureGenerator
	orchestrator      *brackets.PlayoffOrchestrator
	publisher         Publisher
	metrics           metrics.Metrics
	logger            *slog.Logger
	shuffle           func([]string)
	now               func() time.Time
	defaultMaxPlayers int
	locks             keyedMutex
}

type Option func(*tournamentService)

// WithShuffle replaces the random draw, mainly for tests.
func WithShuffle(shuffle func([]string)) Option {
	return func(s *tournamentService) { s.shuffle = shuffle }
}

func WithPublisher(p Publisher) Option {
	return func(s *tournamentService) { s.publisher = p }
}

func WithDefaultMaxPlayers(n int) Option {
	return func(s *tournamentService) { s.defaultMaxPlayers = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *tournamentService) { s.now = now }
}

func NewTournamentService(
	repo repositories.TournamentRepository,
	m metrics.Metrics,
	logger *slog.Logger,
	opts ...Option,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewMock()
	}
	s := &tournamentService{
		repo:              repo,
		generator:         brackets.NewRoundRobinGenerator(),
		orchestrator:      brackets.NewPlayoffOrchestrator(logger),
		publisher:         noopPublisher{},
		metrics:           m,
		logger:            logger,
		shuffle:           shufflePlayers,
		now:               func() time.Time { return time.Now().UTC() },
		defaultMaxPlayers: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func shufflePlayers(players []string) {
	rand.Shuffle(len(players), func(i, j int) { players[i], players[j] = players[j], players[i] })
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*TournamentView, error) {
	key, err := normalizeKey(input.Key)
	if err != nil {
		return nil, err
	}
	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = s.defaultMaxPlayers
	}
	if !validMaxPlayers(maxPlayers) {
		return nil, fmt.Errorf("%w: %w (got %d)", ErrInvalidConfiguration, ErrMaxPlayersInvalid, maxPlayers)
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	if _, err := s.load(ctx, key); err == nil {
		return nil, fmt.Errorf("%w: %w %q", ErrDuplicateEntry, ErrTournamentKeyConflict, key)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	t := models.NewTournament(key, maxPlayers)
	t.CreatedAt = s.now()
	t.UpdatedAt = t.CreatedAt
	t.Version = 1
	if err := s.save(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return nil, fmt.Errorf("%w: %w %q", ErrDuplicateEntry, ErrTournamentKeyConflict, key)
		}
		return nil, err
	}

	s.logger.Info("tournament created", slog.String("tournament", key), slog.Int("max_players", maxPlayers))
	view := s.buildView(t)
	s.publish(ctx, TournamentEvent{Type: EventTournamentCreated, Key: key, View: view})
	return view, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, key string) (*TournamentView, error) {
	t, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.buildView(t), nil
}

func (s *tournamentService) RegisterPlayer(ctx context.Context, key string, input RegisterPlayerInput) (*TournamentView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrPlayerNameRequired)
	}

	return s.mutate(ctx, key, EventPlayerRegistered, func(t *models.Tournament) ([]brackets.Transition, error) {
		if brackets.CurrentPhase(t) != models.PhaseRegistration {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrRegistrationClosed)
		}
		if t.HasParticipant(name) {
			return nil, fmt.Errorf("%w: %w: %q", ErrDuplicateEntry, ErrPlayerNameConflict, name)
		}
		if len(t.Participants) >= t.MaxPlayers {
			return nil, fmt.Errorf("%w: %w (max %d)", ErrInvalidConfiguration, ErrTournamentFull, t.MaxPlayers)
		}
		t.Participants = append(t.Participants, name)
		s.logger.Info("player registered",
			slog.String("tournament", t.Key),
			slog.String("player", name),
			slog.Int("participants", len(t.Participants)))
		return nil, nil
	})
}

// StartTournament draws the two groups and generates their round-robin
// fixtures.
func (s *tournamentService) StartTournament(ctx context.Context, key string) (*TournamentView, error) {
	return s.mutate(ctx, key, EventTournamentStarted, func(t *models.Tournament) ([]brackets.Transition, error) {
		if brackets.CurrentPhase(t) != models.PhaseRegistration {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrTournamentStarted)
		}
		n := len(t.Participants)
		if n < 4 {
			return nil, fmt.Errorf("%w: %w (have %d)", ErrInvalidConfiguration, ErrNotEnoughPlayers, n)
		}
		if n%2 != 0 {
			return nil, fmt.Errorf("%w: %w (have %d)", ErrInvalidConfiguration, ErrOddPlayerCount, n)
		}

		drawn := append([]string{}, t.Participants...)
		s.shuffle(drawn)
		t.Groups = models.Groups{A: append([]string{}, drawn[:n/2]...), B: append([]string{}, drawn[n/2:]...)}

		matches := make([]*models.Match, 0, n*(n/2-1)/2)
		for _, group := range []models.GroupLabel{models.GroupA, models.GroupB} {
			matches = append(matches, s.generator.GenerateFixtures(brackets.GenerateFixturesParams{
				Group:   group,
				Players: t.Groups.Players(group),
			})...)
		}
		t.Matches = matches

		s.logger.Info("groups drawn",
			slog.String("tournament", t.Key),
			slog.String("generator", s.generator.GetName()),
			slog.Any("group_a", t.Groups.A),
			slog.Any("group_b", t.Groups.B),
			slog.Int("matches", len(matches)))
		return []brackets.Transition{{
			From:    models.PhaseRegistration,
			To:      models.PhaseGroupsInProgress,
			Created: matches,
		}}, nil
	})
}

// SubmitResult records a score and runs every phase transition it unlocks
// within the same commit.
func (s *tournamentService) SubmitResult(ctx context.Context, key, matchID string, input SubmitResultInput) (*TournamentView, error) {
	return s.mutate(ctx, key, EventResultRecorded, func(t *models.Tournament) ([]brackets.Transition, error) {
		match := t.FindMatch(matchID)
		if match == nil {
			return nil, fmt.Errorf("%w: %w %q", ErrNotFound, ErrMatchNotFound, matchID)
		}
		if err := brackets.RecordResult(match, input.GamesP1, input.GamesP2); err != nil {
			s.metrics.IncResultSubmitted(string(match.Kind), "rejected")
			return nil, fmt.Errorf("%w: %w", ErrInvalidResult, err)
		}
		s.metrics.IncResultSubmitted(string(match.Kind), "accepted")
		s.logger.Info("result recorded",
			slog.String("tournament", t.Key),
			slog.String("match", match.ID),
			slog.String("kind", string(match.Kind)),
			slog.String("winner", *match.Winner),
			slog.Int("games_p1", input.GamesP1),
			slog.Int("games_p2", input.GamesP2))

		_, transitions := s.orchestrator.Advance(t)
		return transitions, nil
	})
}

// ResetTournament deletes the stored tournament.
func (s *tournamentService) ResetTournament(ctx context.Context, key string) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	start := time.Now()
	err := s.repo.Delete(ctx, key)
	s.metrics.ObserveStoreDuration("delete", time.Since(start).Seconds())
	if err != nil {
		return handleRepositoryError(err, key)
	}

	s.logger.Info("tournament reset", slog.String("tournament", key))
	s.publish(ctx, TournamentEvent{Type: EventTournamentReset, Key: key})
	return nil
}

// mutate runs apply on a copy of the stored tournament and commits the copy
// only if apply succeeds. The stored state is never touched on failure.
func (s *tournamentService) mutate(
	ctx context.Context,
	key string,
	eventType EventType,
	apply func(t *models.Tournament) ([]brackets.Transition, error),
) (*TournamentView, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	current, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	next := current.Clone()
	transitions, err := apply(next)
	if err != nil {
		return nil, err
	}

	next.Version = current.Version + 1
	next.UpdatedAt = s.now()
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	for _, tr := range transitions {
		s.metrics.IncPhaseTransition(string(tr.To))
	}

	view := s.buildView(next)
	s.publish(ctx, TournamentEvent{Type: eventType, Key: key, View: view, Transitions: transitions})
	return view, nil
}

func (s *tournamentService) load(ctx context.Context, key string) (*models.Tournament, error) {
	start := time.Now()
	t, err := s.repo.Load(ctx, key)
	s.metrics.ObserveStoreDuration("load", time.Since(start).Seconds())
	if err != nil {
		return nil, handleRepositoryError(err, key)
	}
	if err := t.CheckMatches(); err != nil {
		return nil, fmt.Errorf("%w: tournament %q: %w", ErrPersistenceFailure, key, err)
	}
	return t, nil
}

func (s *tournamentService) save(ctx context.Context, t *models.Tournament) error {
	start := time.Now()
	err := s.repo.Save(ctx, t)
	s.metrics.ObserveStoreDuration("save", time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("failed to save tournament",
			slog.String("tournament", t.Key),
			slog.Int64("version", t.Version),
			slog.Any("error", err))
		return handleRepositoryError(err, t.Key)
	}
	return nil
}

func (s *tournamentService) publish(ctx context.Context, event TournamentEvent) {
	event.OccurredAt = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish tournament event",
			slog.String("tournament", event.Key),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
	}
}

func (s *tournamentService) buildView(t *models.Tournament) *TournamentView {
	phase := brackets.CurrentPhase(t)
	view := &TournamentView{
		Tournament: t,
		Phase:      phase,
		Status:     phase.Description(),
		Standings:  make(map[models.GroupLabel][]models.TournamentStanding, 2),
	}
	if !t.Groups.Empty() {
		view.Standings[models.GroupA] = brackets.GroupStandings(t, models.GroupA)
		view.Standings[models.GroupB] = brackets.GroupStandings(t, models.GroupB)
	}
	if ranking, ok := brackets.FinalRanking(t); ok {
		view.FinalRanking = ranking
	}
	return view
}
