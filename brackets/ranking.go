package brackets

import (
	"sort"

	"github.com/Dosada05/tennis-cup/models"
)

// FinalRanking returns the full placement list once the final and the
// third-place match are decided; ok is false before that.
//
// Places 1-4 come from the final and the third-place match. Everyone else
// is ordered by group points, then game differential, over the group A
// table followed by the group B table.
func FinalRanking(t *models.Tournament) (ranking []models.Placement, ok bool) {
	if CurrentPhase(t) != models.PhaseTournamentComplete {
		return nil, false
	}
	final, third := t.Playoffs.Final, t.Playoffs.ThirdPlace

	ranking = make([]models.Placement, 0, len(t.Participants))
	placed := make(map[string]bool, 4)
	for _, p := range []struct {
		player string
		kind   models.MatchKind
	}{
		{*final.Winner, models.KindFinal},
		{*final.Loser, models.KindFinal},
		{*third.Winner, models.KindThirdPlace},
		{*third.Loser, models.KindThirdPlace},
	} {
		placed[p.player] = true
		ranking = append(ranking, models.Placement{Position: len(ranking) + 1, Player: p.player, DecidedBy: p.kind})
	}

	rest := make([]models.TournamentStanding, 0, len(t.Participants))
	for _, group := range []models.GroupLabel{models.GroupA, models.GroupB} {
		for _, s := range GroupStandings(t, group) {
			if !placed[s.Player] {
				rest = append(rest, s)
			}
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Points != rest[j].Points {
			return rest[i].Points > rest[j].Points
		}
		return rest[i].Differential() > rest[j].Differential()
	})
	for _, s := range rest {
		ranking = append(ranking, models.Placement{Position: len(ranking) + 1, Player: s.Player, DecidedBy: models.KindGroup})
	}
	return ranking, true
}
