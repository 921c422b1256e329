package draftorder

import (
	"github.com/Dosada05/fantasy-draft/models"
)

type LinearGenerator struct{}

func NewLinearGenerator() OrderGenerator {
	return &LinearGenerator{}
}

func (g *LinearGenerator) Mode() models.OrderingMode {
	return models.OrderingModeLinear
}

// GenerateOrder repeats the same seat order every round: round r is
// always [p1..pn].
func (g *LinearGenerator) GenerateOrder(params GenerateOrderParams) ([]models.TurnAssignment, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return buildOrder(params, func(round, pickInRound, teamCount int) int {
		return pickInRound - 1
	}), nil
}
