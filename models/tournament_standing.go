package models

// TournamentStanding is a derived row of a group table. It is never stored.
type TournamentStanding struct {
	Player       string     `json:"player"`
	Group        GroupLabel `json:"group"`
	Points       int        `json:"points"`
	GamesPlayed  int        `json:"games_played"`
	Wins         int        `json:"wins"`
	Losses       int        `json:"losses"`
	GamesFor     int        `json:"games_for"`
	GamesAgainst int        `json:"games_against"`
	Rank         int        `json:"rank"`
}

func (s TournamentStanding) Differential() int {
	return s.GamesFor - s.GamesAgainst
}

// Placement is one line of the final tournament ranking.
type Placement struct {
	Position int    `json:"position"`
	Player   string `json:"player"`
	// DecidedBy is the match kind that fixed the position, or Group for 5..N.
	DecidedBy MatchKind `json:"decided_by"`
}
