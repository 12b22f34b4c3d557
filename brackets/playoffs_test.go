package brackets_test

import (
	"testing"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPhase_Registration(t *testing.T) {
	tour := models.NewTournament("cup", 4)
	assert.Equal(t, models.PhaseRegistration, brackets.CurrentPhase(tour))
	assert.Equal(t, models.PhaseRegistration, brackets.CurrentPhase(nil))
}

func TestAdvance_DoesNothingWhileGroupsAreOpen(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)

	phase, transitions := o.Advance(tour)
	assert.Equal(t, models.PhaseGroupsInProgress, phase)
	assert.Empty(t, transitions)

	win(t, findMatch(t, tour.Matches, "A", "B"), "A", 8, 3)
	phase, transitions = o.Advance(tour)
	assert.Equal(t, models.PhaseGroupsInProgress, phase)
	assert.Empty(t, transitions)
	assert.Empty(t, tour.Playoffs.Semifinals, "no semifinal while a group match lacks a winner")
}

func TestAdvance_SemifinalsAreCrossSeeded(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)
	win(t, findMatch(t, tour.Matches, "A", "B"), "A", 8, 3)
	win(t, findMatch(t, tour.Matches, "C", "D"), "C", 8, 6)

	phase, transitions := o.Advance(tour)
	assert.Equal(t, models.PhaseSemisInProgress, phase)
	require.Len(t, transitions, 1)
	assert.Equal(t, models.PhaseGroupsComplete, transitions[0].From)
	assert.Equal(t, models.PhaseSemisInProgress, transitions[0].To)
	assert.Len(t, transitions[0].Created, 2)

	sf1 := tour.Semifinal(models.KindSemiFinal1)
	sf2 := tour.Semifinal(models.KindSemiFinal2)
	require.NotNil(t, sf1)
	require.NotNil(t, sf2)
	assert.Equal(t, []string{"A", "D"}, []string{sf1.Player1, sf1.Player2})
	assert.Equal(t, []string{"C", "B"}, []string{sf2.Player1, sf2.Player2})
	assert.Nil(t, tour.Playoffs.Final)
	assert.Nil(t, tour.Playoffs.ThirdPlace)
}

func TestAdvance_IsIdempotent(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)
	win(t, findMatch(t, tour.Matches, "A", "B"), "A", 8, 3)
	win(t, findMatch(t, tour.Matches, "C", "D"), "C", 8, 6)
	o.Advance(tour)

	sf1ID := tour.Semifinal(models.KindSemiFinal1).ID
	sf2ID := tour.Semifinal(models.KindSemiFinal2).ID
	for i := 0; i < 5; i++ {
		phase, transitions := o.Advance(tour)
		assert.Equal(t, models.PhaseSemisInProgress, phase)
		assert.Empty(t, transitions)
	}
	require.Len(t, tour.Playoffs.Semifinals, 2)
	assert.Equal(t, sf1ID, tour.Semifinal(models.KindSemiFinal1).ID)
	assert.Equal(t, sf2ID, tour.Semifinal(models.KindSemiFinal2).ID)
}

func TestDecidedMatchesKeepTheBracketConsistent(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)
	groupAB := findMatch(t, tour.Matches, "A", "B")
	win(t, groupAB, "A", 8, 3)
	win(t, findMatch(t, tour.Matches, "C", "D"), "C", 8, 6)
	o.Advance(tour)

	err := brackets.RecordResult(groupAB, 0, 8)
	require.ErrorIs(t, err, brackets.ErrMatchDecided)
	assert.Equal(t, "A", *groupAB.Winner)
	assert.Equal(t, "A", tour.Semifinal(models.KindSemiFinal1).Player1)

	sf1 := tour.Semifinal(models.KindSemiFinal1)
	win(t, sf1, "A", 8, 2)
	win(t, tour.Semifinal(models.KindSemiFinal2), "C", 8, 1)
	o.Advance(tour)
	win(t, tour.Playoffs.Final, "A", 8, 4)
	win(t, tour.Playoffs.ThirdPlace, "D", 8, 5)
	phase, _ := o.Advance(tour)
	require.Equal(t, models.PhaseTournamentComplete, phase)

	// D beating A in SF1 now would contradict the final A already played.
	err = brackets.RecordResult(sf1, 2, 8)
	require.ErrorIs(t, err, brackets.ErrMatchDecided)
	assert.Equal(t, "A", *sf1.Winner)
	assert.Equal(t, 8, *sf1.GamesP1)
	assert.Equal(t, 2, *sf1.GamesP2)

	phase, transitions := o.Advance(tour)
	assert.Equal(t, models.PhaseTournamentComplete, phase)
	assert.Empty(t, transitions)
	assert.Equal(t, []string{"A", "C"}, []string{tour.Playoffs.Final.Player1, tour.Playoffs.Final.Player2})
	assert.Equal(t, []string{"D", "B"}, []string{tour.Playoffs.ThirdPlace.Player1, tour.Playoffs.ThirdPlace.Player2})

	ranking, ok := brackets.FinalRanking(tour)
	require.True(t, ok)
	var order []string
	for _, p := range ranking {
		order = append(order, p.Player)
	}
	assert.Equal(t, []string{"A", "C", "D", "B"}, order)
}

func TestAdvance_FinalsWaitForBothSemifinals(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)
	win(t, findMatch(t, tour.Matches, "A", "B"), "A", 8, 3)
	win(t, findMatch(t, tour.Matches, "C", "D"), "C", 8, 6)
	o.Advance(tour)

	win(t, tour.Semifinal(models.KindSemiFinal1), "A", 8, 2)
	phase, transitions := o.Advance(tour)
	assert.Equal(t, models.PhaseSemisInProgress, phase)
	assert.Empty(t, transitions)
	assert.Nil(t, tour.Playoffs.Final)
	assert.Nil(t, tour.Playoffs.ThirdPlace)
}

func TestAdvance_EndToEnd(t *testing.T) {
	tour := newStartedTournament(t, []string{"A", "B"}, []string{"C", "D"})
	o := brackets.NewPlayoffOrchestrator(nil)
	require.Len(t, tour.Matches, 2)

	win(t, findMatch(t, tour.Matches, "A", "B"), "A", 8, 3)
	win(t, findMatch(t, tour.Matches, "C", "D"), "C", 8, 6)
	phase, _ := o.Advance(tour)
	require.Equal(t, models.PhaseSemisInProgress, phase)

	win(t, tour.Semifinal(models.KindSemiFinal1), "A", 8, 2)
	win(t, tour.Semifinal(models.KindSemiFinal2), "C", 8, 1)
	phase, transitions := o.Advance(tour)
	require.Equal(t, models.PhaseFinalsInProgress, phase)
	require.Len(t, transitions, 1)
	assert.Len(t, transitions[0].Created, 2)

	third, final := tour.Playoffs.ThirdPlace, tour.Playoffs.Final
	require.NotNil(t, third)
	require.NotNil(t, final)
	assert.Equal(t, models.KindThirdPlace, third.Kind)
	assert.Equal(t, []string{"D", "B"}, []string{third.Player1, third.Player2})
	assert.Equal(t, models.KindFinal, final.Kind)
	assert.Equal(t, []string{"A", "C"}, []string{final.Player1, final.Player2})

	_, ok := brackets.FinalRanking(tour)
	assert.False(t, ok, "no ranking before the final is played")

	win(t, final, "A", 8, 4)
	win(t, third, "D", 8, 5)
	phase, transitions = o.Advance(tour)
	assert.Equal(t, models.PhaseTournamentComplete, phase)
	assert.Empty(t, transitions)

	ranking, ok := brackets.FinalRanking(tour)
	require.True(t, ok)
	require.Len(t, ranking, 4)
	var order []string
	for i, p := range ranking {
		assert.Equal(t, i+1, p.Position)
		order = append(order, p.Player)
	}
	assert.Equal(t, []string{"A", "C", "D", "B"}, order)
	assert.Equal(t, models.KindFinal, ranking[0].DecidedBy)
	assert.Equal(t, models.KindThirdPlace, ranking[3].DecidedBy)
}
