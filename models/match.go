package models

// MatchKind tags a match as a group fixture or one of the playoff slots.
type MatchKind string

const (
	KindGroup      MatchKind = "Group"
	KindSemiFinal1 MatchKind = "SF1"
	KindSemiFinal2 MatchKind = "SF2"
	KindThirdPlace MatchKind = "3rdPlace"
	KindFinal      MatchKind = "Final"
)

func (k MatchKind) Valid() bool {
	switch k {
	case KindGroup, KindSemiFinal1, KindSemiFinal2, KindThirdPlace, KindFinal:
		return true
	}
	return false
}

func (k MatchKind) IsPlayoff() bool {
	return k.Valid() && k != KindGroup
}

// GroupLabel names one of the two group-stage partitions.
type GroupLabel string

const (
	GroupA GroupLabel = "A"
	GroupB GroupLabel = "B"
)

type Match struct {
	ID      string     `json:"id" bson:"id"`
	Player1 string     `json:"player1" bson:"player1"`
	Player2 string     `json:"player2" bson:"player2"`
	Kind    MatchKind  `json:"kind" bson:"kind"`
	Group   GroupLabel `json:"group,omitempty" bson:"group,omitempty"`
	GamesP1 *int       `json:"gamesP1" bson:"gamesP1"`
	GamesP2 *int       `json:"gamesP2" bson:"gamesP2"`
	Winner  *string    `json:"winner" bson:"winner"`
	Loser   *string    `json:"loser" bson:"loser"`
}

func (m *Match) HasScore() bool {
	return m != nil && m.GamesP1 != nil && m.GamesP2 != nil
}

func (m *Match) HasWinner() bool {
	return m != nil && m.Winner != nil
}

// Clone returns a deep copy so snapshots never share score pointers.
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	c.GamesP1 = cloneInt(m.GamesP1)
	c.GamesP2 = cloneInt(m.GamesP2)
	c.Winner = cloneString(m.Winner)
	c.Loser = cloneString(m.Loser)
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
