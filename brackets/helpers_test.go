package brackets_test

import (
	"testing"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/stretchr/testify/require"
)

// newStartedTournament draws the given groups and generates their fixtures.
func newStartedTournament(t *testing.T, groupA, groupB []string) *models.Tournament {
	t.Helper()
	tour := models.NewTournament("test-cup", len(groupA)+len(groupB))
	tour.Participants = append(append([]string{}, groupA...), groupB...)
	tour.Groups = models.Groups{A: groupA, B: groupB}

	gen := brackets.NewRoundRobinGenerator()
	tour.Matches = append(
		gen.GenerateFixtures(brackets.GenerateFixturesParams{Group: models.GroupA, Players: groupA}),
		gen.GenerateFixtures(brackets.GenerateFixturesParams{Group: models.GroupB, Players: groupB})...,
	)
	return tour
}

func findMatch(t *testing.T, matches []*models.Match, p1, p2 string) *models.Match {
	t.Helper()
	for _, m := range matches {
		if (m.Player1 == p1 && m.Player2 == p2) || (m.Player1 == p2 && m.Player2 == p1) {
			return m
		}
	}
	require.Failf(t, "match not found", "%s vs %s", p1, p2)
	return nil
}

// win records winner beating loser winnerGames to loserGames regardless of
// which side of the match each player is on.
func win(t *testing.T, m *models.Match, winner string, winnerGames, loserGames int) {
	t.Helper()
	require.NotNil(t, m)
	if m.Player1 == winner {
		require.NoError(t, brackets.RecordResult(m, winnerGames, loserGames))
	} else {
		require.NoError(t, brackets.RecordResult(m, loserGames, winnerGames))
	}
}
