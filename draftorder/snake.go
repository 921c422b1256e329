package draftorder

import (
	"github.com/Dosada05/fantasy-draft/models"
)

type SnakeGenerator struct{}

func NewSnakeGenerator() OrderGenerator {
	return &SnakeGenerator{}
}

func (g *SnakeGenerator) Mode() models.OrderingMode {
	return models.OrderingModeSnake
}

// GenerateOrder reverses the seat order every other round: odd rounds
// run [p1..pn], even rounds [pn..p1]. This removes the systematic
// advantage of always picking last.
func (g *SnakeGenerator) GenerateOrder(params GenerateOrderParams) ([]models.TurnAssignment, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return buildOrder(params, func(round, pickInRound, teamCount int) int {
		if round%2 == 0 {
			return teamCount - pickInRound
		}
		return pickInRound - 1
	}), nil
}
