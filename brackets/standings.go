package brackets

import (
	"sort"

	"github.com/Dosada05/tennis-cup/models"
)

const (
	PointsPerGame = 10
	PointsPerWin  = 100
)

// CalculateStandings derives the table of one group from its matches.
// Only matches with a recorded score count. Rows are ordered by points,
// then game differential, then games won; remaining ties keep the order of
// players. The matches are never modified.
func CalculateStandings(group models.GroupLabel, players []string, matches []*models.Match) []models.TournamentStanding {
	index := make(map[string]*models.TournamentStanding, len(players))
	standings := make([]*models.TournamentStanding, 0, len(players))
	for _, p := range players {
		if _, dup := index[p]; dup {
			continue
		}
		entry := &models.TournamentStanding{Player: p, Group: group}
		index[p] = entry
		standings = append(standings, entry)
	}

	for _, m := range matches {
		if !m.HasScore() {
			continue
		}
		entry1, entry2 := index[m.Player1], index[m.Player2]
		if entry1 == nil || entry2 == nil {
			continue
		}
		accumulate(entry1, *m.GamesP1, *m.GamesP2, m.Winner != nil && *m.Winner == m.Player1)
		accumulate(entry2, *m.GamesP2, *m.GamesP1, m.Winner != nil && *m.Winner == m.Player2)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Differential() != b.Differential() {
			return a.Differential() > b.Differential()
		}
		return a.GamesFor > b.GamesFor
	})

	out := make([]models.TournamentStanding, len(standings))
	for i, s := range standings {
		s.Rank = i + 1
		out[i] = *s
	}
	return out
}

func accumulate(s *models.TournamentStanding, own, opponent int, won bool) {
	s.GamesPlayed++
	s.GamesFor += own
	s.GamesAgainst += opponent
	s.Points += own * PointsPerGame
	if won {
		s.Wins++
		s.Points += PointsPerWin
	} else {
		s.Losses++
	}
}

// GroupStandings is a convenience wrapper computing the table of one group
// of a tournament.
func GroupStandings(t *models.Tournament, group models.GroupLabel) []models.TournamentStanding {
	return CalculateStandings(group, t.Groups.Players(group), t.GroupMatches(group))
}
