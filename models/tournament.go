package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrMalformedMatch = errors.New("malformed match")

// Groups holds the two group-stage partitions.
type Groups struct {
	A []string `json:"A" bson:"A"`
	B []string `json:"B" bson:"B"`
}

func (g Groups) Players(label GroupLabel) []string {
	switch label {
	case GroupA:
		return g.A
	case GroupB:
		return g.B
	}
	return nil
}

func (g Groups) Empty() bool {
	return len(g.A) == 0 && len(g.B) == 0
}

// Playoffs holds the knockout slots; each stays nil until the orchestrator creates it.
type Playoffs struct {
	Semifinals []*Match `json:"semifinals" bson:"semifinals"`
	ThirdPlace *Match   `json:"thirdPlace" bson:"thirdPlace"`
	Final      *Match   `json:"final" bson:"final"`
}

// Tournament is the persisted aggregate. It is always saved as a whole.
type Tournament struct {
	Key          string    `json:"key" bson:"_id"`
	Participants []string  `json:"participants" bson:"participants"`
	MaxPlayers   int       `json:"maxPlayers" bson:"maxPlayers"`
	Groups       Groups    `json:"groups" bson:"groups"`
	Matches      []*Match  `json:"matches" bson:"matches"`
	Playoffs     Playoffs  `json:"playoffs" bson:"playoffs"`
	Version      int64     `json:"version" bson:"version"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

func NewTournament(key string, maxPlayers int) *Tournament {
	now := time.Now().UTC()
	return &Tournament{
		Key:          key,
		Participants: []string{},
		MaxPlayers:   maxPlayers,
		Groups:       Groups{A: []string{}, B: []string{}},
		Matches:      []*Match{},
		Playoffs:     Playoffs{Semifinals: []*Match{}},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (t *Tournament) HasParticipant(name string) bool {
	for _, p := range t.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// GroupMatches returns the group fixtures of one partition, in creation order.
func (t *Tournament) GroupMatches(label GroupLabel) []*Match {
	out := make([]*Match, 0)
	for _, m := range t.Matches {
		if m.Kind == KindGroup && m.Group == label {
			out = append(out, m)
		}
	}
	return out
}

func (t *Tournament) PlayoffMatches() []*Match {
	out := make([]*Match, 0, 4)
	out = append(out, t.Playoffs.Semifinals...)
	if t.Playoffs.ThirdPlace != nil {
		out = append(out, t.Playoffs.ThirdPlace)
	}
	if t.Playoffs.Final != nil {
		out = append(out, t.Playoffs.Final)
	}
	return out
}

// FindMatch looks a match up by id across group and playoff matches.
func (t *Tournament) FindMatch(id string) *Match {
	for _, m := range t.Matches {
		if m.ID == id {
			return m
		}
	}
	for _, m := range t.PlayoffMatches() {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Semifinal returns SF1 or SF2 if it has been created.
func (t *Tournament) Semifinal(kind MatchKind) *Match {
	for _, m := range t.Playoffs.Semifinals {
		if m.Kind == kind {
			return m
		}
	}
	return nil
}

// Clone returns a deep copy of the aggregate.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	c := *t
	c.Participants = append([]string{}, t.Participants...)
	c.Groups = Groups{
		A: append([]string{}, t.Groups.A...),
		B: append([]string{}, t.Groups.B...),
	}
	c.Matches = make([]*Match, len(t.Matches))
	for i, m := range t.Matches {
		c.Matches[i] = m.Clone()
	}
	c.Playoffs.Semifinals = make([]*Match, len(t.Playoffs.Semifinals))
	for i, m := range t.Playoffs.Semifinals {
		c.Playoffs.Semifinals[i] = m.Clone()
	}
	c.Playoffs.ThirdPlace = t.Playoffs.ThirdPlace.Clone()
	c.Playoffs.Final = t.Playoffs.Final.Clone()
	return &c
}

// CheckMatches reports the first match stored in the wrong place: group
// fixtures must be Group matches of A or B, playoff slots must hold the
// matching playoff kind.
func (t *Tournament) CheckMatches() error {
	for _, m := range t.Matches {
		if m == nil || m.Kind != KindGroup || (m.Group != GroupA && m.Group != GroupB) {
			return fmt.Errorf("%w in group fixtures: %+v", ErrMalformedMatch, m)
		}
	}
	for _, m := range t.PlayoffMatches() {
		if m == nil || !m.Kind.IsPlayoff() {
			return fmt.Errorf("%w in playoff slots: %+v", ErrMalformedMatch, m)
		}
	}
	for _, m := range t.Playoffs.Semifinals {
		if m.Kind != KindSemiFinal1 && m.Kind != KindSemiFinal2 {
			return fmt.Errorf("%w: semifinal slot holds %q", ErrMalformedMatch, m.Kind)
		}
	}
	if t.Playoffs.ThirdPlace != nil && t.Playoffs.ThirdPlace.Kind != KindThirdPlace {
		return fmt.Errorf("%w: third-place slot holds %q", ErrMalformedMatch, t.Playoffs.ThirdPlace.Kind)
	}
	if t.Playoffs.Final != nil && t.Playoffs.Final.Kind != KindFinal {
		return fmt.Errorf("%w: final slot holds %q", ErrMalformedMatch, t.Playoffs.Final.Kind)
	}
	return nil
}
