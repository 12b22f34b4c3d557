package brackets_test

import (
	"testing"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStandings_PointsAndOrder(t *testing.T) {
	tour := newStartedTournament(t, []string{"Ana", "Bea", "Cat"}, []string{"Dan", "Eli", "Fay"})
	matches := tour.GroupMatches(models.GroupA)
	win(t, findMatch(t, matches, "Ana", "Bea"), "Ana", 8, 3)
	win(t, findMatch(t, matches, "Bea", "Cat"), "Bea", 8, 6)

	standings := brackets.CalculateStandings(models.GroupA, tour.Groups.A, matches)
	require.Len(t, standings, 3)

	// Bea lost 3-8 and won 8-6: more points than Ana despite a negative differential.
	assert.Equal(t, "Bea", standings[0].Player)
	assert.Equal(t, 3*10+8*10+100, standings[0].Points)
	assert.Equal(t, 2, standings[0].GamesPlayed)
	assert.Equal(t, 11, standings[0].GamesFor)
	assert.Equal(t, 14, standings[0].GamesAgainst)
	assert.Equal(t, -3, standings[0].Differential())
	assert.Equal(t, 1, standings[0].Rank)

	assert.Equal(t, "Ana", standings[1].Player)
	assert.Equal(t, 180, standings[1].Points)
	assert.Equal(t, 1, standings[1].Wins)
	assert.Equal(t, 2, standings[1].Rank)

	assert.Equal(t, "Cat", standings[2].Player)
	assert.Equal(t, 60, standings[2].Points)
	assert.Equal(t, 1, standings[2].Losses)
	assert.Equal(t, 3, standings[2].Rank)
}

func TestCalculateStandings_DifferentialBreaksPointTies(t *testing.T) {
	// Bea and Cat both end on 180 points; Cat conceded fewer games.
	players := []string{"Ana", "Bea", "Cat", "Dan"}
	matches := []*models.Match{
		{ID: "1", Player1: "Bea", Player2: "Ana", Kind: models.KindGroup},
		{ID: "2", Player1: "Cat", Player2: "Dan", Kind: models.KindGroup},
	}
	require.NoError(t, brackets.RecordResult(matches[0], 8, 6))
	require.NoError(t, brackets.RecordResult(matches[1], 8, 0))

	standings := brackets.CalculateStandings(models.GroupA, players, matches)
	assert.Equal(t, "Cat", standings[0].Player)
	assert.Equal(t, "Bea", standings[1].Player)
	assert.Equal(t, standings[0].Points, standings[1].Points)
	assert.Equal(t, "Ana", standings[2].Player)
	assert.Equal(t, "Dan", standings[3].Player)
}

func TestCalculateStandings_NoResultsKeepsPlayerOrder(t *testing.T) {
	tour := newStartedTournament(t, []string{"Ana", "Bea", "Cat"}, []string{"Dan", "Eli", "Fay"})
	standings := brackets.GroupStandings(tour, models.GroupB)
	require.Len(t, standings, 3)
	for i, name := range []string{"Dan", "Eli", "Fay"} {
		assert.Equal(t, name, standings[i].Player)
		assert.Zero(t, standings[i].Points)
		assert.Equal(t, i+1, standings[i].Rank)
	}
}

func TestCalculateStandings_IsPure(t *testing.T) {
	tour := newStartedTournament(t, []string{"Ana", "Bea", "Cat", "Dan"}, []string{"Eli", "Fay", "Gus", "Hal"})
	matches := tour.GroupMatches(models.GroupA)
	win(t, findMatch(t, matches, "Ana", "Bea"), "Bea", 8, 7)
	win(t, findMatch(t, matches, "Cat", "Dan"), "Cat", 9, 7)
	win(t, findMatch(t, matches, "Ana", "Dan"), "Ana", 8, 2)
	before := tour.Clone()

	first := brackets.CalculateStandings(models.GroupA, tour.Groups.A, matches)
	second := brackets.CalculateStandings(models.GroupA, tour.Groups.A, matches)

	assert.Equal(t, first, second)
	assert.Equal(t, before, tour, "standings must not mutate matches")
}
