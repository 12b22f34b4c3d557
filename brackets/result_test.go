package brackets_test

import (
	"testing"

	"github.com/Dosada05/tennis-cup/brackets"
	"github.com/Dosada05/tennis-cup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResult(t *testing.T) {
	tests := []struct {
		name  string
		g1    int
		g2    int
		valid bool
	}{
		{"regular win", 8, 6, true},
		{"regular win for player two", 3, 8, true},
		{"long set", 9, 7, true},
		{"tie-break", 8, 7, true},
		{"tie-break for player two", 7, 8, true},
		{"level", 8, 8, false},
		{"short of eight", 7, 6, false},
		{"margin of one", 10, 9, false},
		{"nine eight", 9, 8, false},
		{"zero zero", 0, 0, false},
		{"negative", -1, 8, false},
		{"whitewash", 8, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := brackets.ValidateResult(tt.g1, tt.g2)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, brackets.ErrInvalidResult)
			}
		})
	}
}

func TestRecordResult_SetsWinnerAndLoser(t *testing.T) {
	m := &models.Match{ID: "m1", Player1: "Ana", Player2: "Bea", Kind: models.KindGroup, Group: models.GroupA}

	require.NoError(t, brackets.RecordResult(m, 5, 8))
	require.True(t, m.HasWinner())
	assert.Equal(t, "Bea", *m.Winner)
	assert.Equal(t, "Ana", *m.Loser)
	assert.Equal(t, 5, *m.GamesP1)
	assert.Equal(t, 8, *m.GamesP2)
}

func TestRecordResult_InvalidLeavesMatchUntouched(t *testing.T) {
	m := &models.Match{ID: "m1", Player1: "Ana", Player2: "Bea", Kind: models.KindGroup}

	err := brackets.RecordResult(m, 8, 8)
	assert.ErrorIs(t, err, brackets.ErrInvalidResult)
	assert.False(t, m.HasScore())
	assert.False(t, m.HasWinner())
	assert.Nil(t, m.Loser)
}

func TestRecordResult_DecidedMatchIsNotRescored(t *testing.T) {
	m := &models.Match{ID: "m1", Player1: "Ana", Player2: "Bea", Kind: models.KindGroup}
	require.NoError(t, brackets.RecordResult(m, 8, 2))

	for _, score := range [][2]int{{7, 8}, {8, 2}, {1, 1}} {
		err := brackets.RecordResult(m, score[0], score[1])
		assert.ErrorIs(t, err, brackets.ErrMatchDecided)
	}
	assert.Equal(t, "Ana", *m.Winner)
	assert.Equal(t, "Bea", *m.Loser)
	assert.Equal(t, 8, *m.GamesP1)
	assert.Equal(t, 2, *m.GamesP2)
}

func TestRecordResult_RejectedScoreLeavesMatchOpen(t *testing.T) {
	m := &models.Match{ID: "m1", Player1: "Ana", Player2: "Bea", Kind: models.KindGroup}
	require.Error(t, brackets.RecordResult(m, 8, 8))
	require.NoError(t, brackets.RecordResult(m, 7, 8))
	assert.Equal(t, "Bea", *m.Winner)
}
