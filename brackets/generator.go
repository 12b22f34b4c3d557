package brackets

import (
	"github.com/Dosada05/tennis-cup/models"
)

type GenerateFixturesParams struct {
	Group   models.GroupLabel
	Players []string
}

// FixtureGenerator builds the group-stage matches of a single group.
type FixtureGenerator interface {
	GenerateFixtures(params GenerateFixturesParams) []*models.Match

	GetName() string
}
