package brackets_test

import (
	"testing"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalRanking_PlacesNonQualifiersByPointsThenDifferential(t *testing.T) {
	tour := newStartedTournament(t, []string{"P1", "P2", "P3"}, []string{"Q1", "Q2", "Q3"})
	o := brackets.NewPlayoffOrchestrator(nil)

	win(t, findMatch(t, tour.Matches, "P1", "P2"), "P1", 8, 0)
	win(t, findMatch(t, tour.Matches, "P1", "P3"), "P1", 8, 0)
	win(t, findMatch(t, tour.Matches, "P2", "P3"), "P2", 8, 6)
	win(t, findMatch(t, tour.Matches, "Q1", "Q2"), "Q1", 8, 0)
	win(t, findMatch(t, tour.Matches, "Q1", "Q3"), "Q1", 8, 0)
	win(t, findMatch(t, tour.Matches, "Q2", "Q3"), "Q2", 8, 7)

	o.Advance(tour)
	sf1 := tour.Semifinal(models.KindSemiFinal1)
	sf2 := tour.Semifinal(models.KindSemiFinal2)
	require.Equal(t, []string{"P1", "Q2"}, []string{sf1.Player1, sf1.Player2})
	require.Equal(t, []string{"Q1", "P2"}, []string{sf2.Player1, sf2.Player2})

	win(t, sf1, "P1", 8, 5)
	win(t, sf2, "Q1", 8, 5)
	o.Advance(tour)
	win(t, tour.Playoffs.Final, "P1", 8, 6)
	win(t, tour.Playoffs.ThirdPlace, "P2", 8, 6)
	o.Advance(tour)

	ranking, ok := brackets.FinalRanking(tour)
	require.True(t, ok)
	var order []string
	for _, p := range ranking {
		order = append(order, p.Player)
	}
	// Q3 took seven games off Q2 (70 points), P3 only six (60 points).
	assert.Equal(t, []string{"P1", "Q1", "P2", "Q2", "Q3", "P3"}, order)
	assert.Equal(t, models.KindGroup, ranking[4].DecidedBy)
	assert.Equal(t, 6, ranking[5].Position)
}

func TestFinalRanking_EqualPointsFallBackToDifferential(t *testing.T) {
	tour := newStartedTournament(t, []string{"P1", "P2", "P3"}, []string{"Q1", "Q2", "Q3"})
	o := brackets.NewPlayoffOrchestrator(nil)

	// P3 and Q3 both finish on 60 points; Q3 concedes fewer games.
	win(t, findMatch(t, tour.Matches, "P1", "P2"), "P1", 8, 0)
	win(t, findMatch(t, tour.Matches, "P1", "P3"), "P1", 10, 0)
	win(t, findMatch(t, tour.Matches, "P2", "P3"), "P2", 8, 6)
	win(t, findMatch(t, tour.Matches, "Q1", "Q2"), "Q1", 8, 0)
	win(t, findMatch(t, tour.Matches, "Q1", "Q3"), "Q1", 8, 0)
	win(t, findMatch(t, tour.Matches, "Q2", "Q3"), "Q2", 8, 6)

	o.Advance(tour)
	win(t, tour.Semifinal(models.KindSemiFinal1), "P1", 8, 5)
	win(t, tour.Semifinal(models.KindSemiFinal2), "Q1", 8, 5)
	o.Advance(tour)
	win(t, tour.Playoffs.Final, "Q1", 8, 6)
	win(t, tour.Playoffs.ThirdPlace, "Q2", 8, 6)

	ranking, ok := brackets.FinalRanking(tour)
	require.True(t, ok)
	assert.Equal(t, "Q1", ranking[0].Player)
	assert.Equal(t, "P1", ranking[1].Player)
	assert.Equal(t, "Q2", ranking[2].Player)
	assert.Equal(t, "P2", ranking[3].Player)
	assert.Equal(t, "Q3", ranking[4].Player)
	assert.Equal(t, "P3", ranking[5].Player)
}
