package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tennis-cup/models"
)

const (
	// GamesToWin is the nominal set target.
	GamesToWin = 8
	// MinWinningMargin applies to every result except the 7-8 tie-break.
	MinWinningMargin = 2
	tieBreakLow      = 7
	tieBreakHigh     = 8
)

var (
	ErrInvalidResult = errors.New("invalid match result")
	// ErrMatchDecided is returned for a match that already has a winner.
	// Decided matches feed the standings and the playoff slots, so they are
	// never rescored.
	ErrMatchDecided = errors.New("match result already recorded")
)

// ValidateResult checks a set score against the win condition: at least
// eight games with a two-game margin, or exactly 8-7 / 7-8 after a tie-break.
func ValidateResult(gamesP1, gamesP2 int) error {
	if gamesP1 < 0 || gamesP2 < 0 {
		return fmt.Errorf("%w: games cannot be negative (%d-%d)", ErrInvalidResult, gamesP1, gamesP2)
	}
	if gamesP1 == gamesP2 {
		return fmt.Errorf("%w: a set cannot end level (%d-%d)", ErrInvalidResult, gamesP1, gamesP2)
	}
	if isTieBreak(gamesP1, gamesP2) {
		return nil
	}
	high, low := max(gamesP1, gamesP2), min(gamesP1, gamesP2)
	if high < GamesToWin {
		return fmt.Errorf("%w: the winner needs at least %d games (%d-%d)", ErrInvalidResult, GamesToWin, gamesP1, gamesP2)
	}
	if high-low < MinWinningMargin {
		return fmt.Errorf("%w: the winner needs a %d-game margin unless the set ends 8-7 (%d-%d)", ErrInvalidResult, MinWinningMargin, gamesP1, gamesP2)
	}
	return nil
}

func isTieBreak(a, b int) bool {
	return (a == tieBreakHigh && b == tieBreakLow) || (a == tieBreakLow && b == tieBreakHigh)
}

// RecordResult validates the score and, only if it is valid, writes score,
// winner and loser onto the match in one step. A decided match is left as
// it is.
func RecordResult(match *models.Match, gamesP1, gamesP2 int) error {
	if match == nil {
		return errors.New("cannot record a result on a nil match")
	}
	if match.HasWinner() {
		return fmt.Errorf("%w: %s %s was won by %s", ErrMatchDecided, match.Kind, match.ID, *match.Winner)
	}
	if err := ValidateResult(gamesP1, gamesP2); err != nil {
		return err
	}

	winner, loser := match.Player1, match.Player2
	if gamesP2 > gamesP1 {
		winner, loser = match.Player2, match.Player1
	}
	match.GamesP1 = &gamesP1
	match.GamesP2 = &gamesP2
	match.Winner = &winner
	match.Loser = &loser
	return nil
}
