package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	query := "UPDATE tournaments SET state = ?, version = ? WHERE key = ? AND version = ?"

	pg := &sqlTournamentRepository{dialect: dialectPostgres}
	assert.Equal(t, "UPDATE tournaments SET state = $1, version = $2 WHERE key = $3 AND version = $4", pg.rebind(query))

	lite := &sqlTournamentRepository{dialect: dialectSQLite}
	assert.Equal(t, query, lite.rebind(query))
	assert.Equal(t, "SELECT 1", pg.rebind("SELECT 1"))
}
