package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKind(t *testing.T) {
	assert.True(t, KindGroup.Valid())
	assert.False(t, KindGroup.IsPlayoff())
	for _, k := range []MatchKind{KindSemiFinal1, KindSemiFinal2, KindThirdPlace, KindFinal} {
		assert.True(t, k.IsPlayoff(), string(k))
	}
	assert.False(t, MatchKind("Quarterfinal").Valid())
	assert.False(t, MatchKind("Quarterfinal").IsPlayoff())
}

func TestCheckMatches(t *testing.T) {
	valid := func() *Tournament {
		tour := NewTournament("cup", 4)
		tour.Matches = []*Match{
			{ID: "g1", Player1: "A", Player2: "B", Kind: KindGroup, Group: GroupA},
			{ID: "g2", Player1: "C", Player2: "D", Kind: KindGroup, Group: GroupB},
		}
		tour.Playoffs.Semifinals = []*Match{
			{ID: "s1", Player1: "A", Player2: "D", Kind: KindSemiFinal1},
			{ID: "s2", Player1: "C", Player2: "B", Kind: KindSemiFinal2},
		}
		tour.Playoffs.ThirdPlace = &Match{ID: "t", Player1: "D", Player2: "B", Kind: KindThirdPlace}
		tour.Playoffs.Final = &Match{ID: "f", Player1: "A", Player2: "C", Kind: KindFinal}
		return tour
	}
	assert.NoError(t, valid().CheckMatches())
	assert.NoError(t, NewTournament("empty", 4).CheckMatches())

	tests := []struct {
		name   string
		mutate func(*Tournament)
	}{
		{"playoff kind among group fixtures", func(t *Tournament) { t.Matches[0].Kind = KindFinal }},
		{"unknown group", func(t *Tournament) { t.Matches[1].Group = "C" }},
		{"unknown kind", func(t *Tournament) { t.Matches[0].Kind = "Friendly" }},
		{"group kind in a semifinal slot", func(t *Tournament) { t.Playoffs.Semifinals[0].Kind = KindGroup }},
		{"final kind in a semifinal slot", func(t *Tournament) { t.Playoffs.Semifinals[1].Kind = KindFinal }},
		{"swapped final slots", func(t *Tournament) {
			t.Playoffs.Final, t.Playoffs.ThirdPlace = t.Playoffs.ThirdPlace, t.Playoffs.Final
		}},
		{"nil semifinal", func(t *Tournament) { t.Playoffs.Semifinals[0] = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := valid()
			tt.mutate(tour)
			assert.ErrorIs(t, tour.CheckMatches(), ErrMalformedMatch)
		})
	}
}
