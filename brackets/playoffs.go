package brackets

import (
	"log/slog"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/google/uuid"
)

// Transition records a phase change that materialised playoff matches.
type Transition struct {
	From    models.Phase    `json:"from"`
	To      models.Phase    `json:"to"`
	Created []*models.Match `json:"created"`
}

// PlayoffOrchestrator promotes group results into semifinals and semifinal
// results into the final and the third-place match. Every slot is created
// at most once; calling Advance again never overwrites an existing match.
type PlayoffOrchestrator struct {
	newID  func() string
	logger *slog.Logger
}

func NewPlayoffOrchestrator(logger *slog.Logger) *PlayoffOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayoffOrchestrator{newID: uuid.NewString, logger: logger}
}

// CurrentPhase derives the phase from the matches of the tournament.
func CurrentPhase(t *models.Tournament) models.Phase {
	if t == nil || t.Groups.Empty() {
		return models.PhaseRegistration
	}
	for _, m := range t.Matches {
		if m.Kind == models.KindGroup && !m.HasWinner() {
			return models.PhaseGroupsInProgress
		}
	}
	if len(t.Playoffs.Semifinals) == 0 {
		return models.PhaseGroupsComplete
	}
	for _, m := range t.Playoffs.Semifinals {
		if !m.HasWinner() {
			return models.PhaseSemisInProgress
		}
	}
	if t.Playoffs.ThirdPlace == nil || t.Playoffs.Final == nil {
		return models.PhaseSemisComplete
	}
	if !t.Playoffs.ThirdPlace.HasWinner() || !t.Playoffs.Final.HasWinner() {
		return models.PhaseFinalsInProgress
	}
	return models.PhaseTournamentComplete
}

// Advance applies every transition whose preconditions hold and returns the
// resulting phase. Missing preconditions are not an error: the current phase
// is simply reported back.
func (o *PlayoffOrchestrator) Advance(t *models.Tournament) (models.Phase, []Transition) {
	var transitions []Transition
	for {
		phase := CurrentPhase(t)
		var created []*models.Match
		switch phase {
		case models.PhaseGroupsComplete:
			created = o.createSemifinals(t)
		case models.PhaseSemisComplete:
			created = o.createFinals(t)
		}
		if len(created) == 0 {
			return phase, transitions
		}
		next := CurrentPhase(t)
		o.logger.Info("playoff matches created",
			slog.String("tournament", t.Key),
			slog.String("from", string(phase)),
			slog.String("to", string(next)),
			slog.Int("matches", len(created)))
		transitions = append(transitions, Transition{From: phase, To: next, Created: created})
	}
}

// createSemifinals pairs A1-B2 (SF1) and B1-A2 (SF2).
func (o *PlayoffOrchestrator) createSemifinals(t *models.Tournament) []*models.Match {
	if len(t.Playoffs.Semifinals) > 0 {
		return nil
	}
	standingsA := GroupStandings(t, models.GroupA)
	standingsB := GroupStandings(t, models.GroupB)
	if len(standingsA) < 2 || len(standingsB) < 2 {
		o.logger.Warn("semifinals need two ranked players per group",
			slog.String("tournament", t.Key),
			slog.Int("group_a", len(standingsA)),
			slog.Int("group_b", len(standingsB)))
		return nil
	}

	sf1 := o.newPlayoffMatch(models.KindSemiFinal1, standingsA[0].Player, standingsB[1].Player)
	sf2 := o.newPlayoffMatch(models.KindSemiFinal2, standingsB[0].Player, standingsA[1].Player)
	t.Playoffs.Semifinals = []*models.Match{sf1, sf2}
	return t.Playoffs.Semifinals
}

// createFinals sends semifinal losers to the third-place match and winners
// to the final. Each slot is filled only if it is still empty.
func (o *PlayoffOrchestrator) createFinals(t *models.Tournament) []*models.Match {
	sf1 := t.Semifinal(models.KindSemiFinal1)
	sf2 := t.Semifinal(models.KindSemiFinal2)
	if !sf1.HasWinner() || !sf2.HasWinner() {
		return nil
	}

	created := make([]*models.Match, 0, 2)
	if t.Playoffs.ThirdPlace == nil {
		t.Playoffs.ThirdPlace = o.newPlayoffMatch(models.KindThirdPlace, *sf1.Loser, *sf2.Loser)
		created = append(created, t.Playoffs.ThirdPlace)
	}
	if t.Playoffs.Final == nil {
		t.Playoffs.Final = o.newPlayoffMatch(models.KindFinal, *sf1.Winner, *sf2.Winner)
		created = append(created, t.Playoffs.Final)
	}
	return created
}

func (o *PlayoffOrchestrator) newPlayoffMatch(kind models.MatchKind, p1, p2 string) *models.Match {
	return &models.Match{
		ID:      o.newID(),
		Player1: p1,
		Player2: p2,
		Kind:    kind,
	}
}
