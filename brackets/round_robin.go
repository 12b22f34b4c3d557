package brackets

import (
	"github.com/Dosada05/tennis-cup/models"
	"github.com/google/uuid"
)

// byeSlot pads an odd player list so the circle has an even number of seats.
const byeSlot = -1

type RoundRobinGenerator struct {
	newID func() string
}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{newID: uuid.NewString}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateFixtures pairs every player of the group with every other player
// exactly once using the circle method. Position 0 stays fixed while the
// remaining seats rotate by one after each round.
func (g *RoundRobinGenerator) GenerateFixtures(params GenerateFixturesParams) []*models.Match {
	players := params.Players
	matches := make([]*models.Match, 0)
	if len(players) <= 1 {
		return matches
	}

	slots := make([]int, len(players), len(players)+1)
	for i := range players {
		slots[i] = i
	}
	if len(slots)%2 == 1 {
		slots = append(slots, byeSlot)
	}
	count := len(slots)

	for round := 0; round < count-1; round++ {
		for i := 0; i < count/2; i++ {
			home, away := slots[i], slots[count-1-i]
			if home == byeSlot || away == byeSlot {
				continue
			}
			p1, p2 := players[home], players[away]
			if hasPairing(matches, p1, p2) {
				continue
			}
			matches = append(matches, &models.Match{
				ID:      g.newID(),
				Player1: p1,
				Player2: p2,
				Kind:    models.KindGroup,
				Group:   params.Group,
			})
		}

		last := slots[count-1]
		copy(slots[2:], slots[1:count-1])
		slots[1] = last
	}

	return matches
}

func hasPairing(matches []*models.Match, p1, p2 string) bool {
	for _, m := range matches {
		if (m.Player1 == p1 && m.Player2 == p2) || (m.Player1 == p2 && m.Player2 == p1) {
			return true
		}
	}
	return false
}
