package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nikrus/rpsduel-go/internal/model"
)

type RulesSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

var allMoves = []model.Move{model.MoveRock, model.MovePaper, model.MoveScissors}

func (s *RulesSuite) TestRockBeatsScissors() {
	result, err := Decide(model.MoveRock, model.MoveScissors)
	s.Require().NoError(err)
	s.Equal(model.ResultSideA, result)
}

func (s *RulesSuite) TestScissorsBeatsPaper() {
	result, err := Decide(model.MoveScissors, model.MovePaper)
	s.Require().NoError(err)
	s.Equal(model.ResultSideA, result)
}

func (s *RulesSuite) TestPaperBeatsRock() {
	result, err := Decide(model.MovePaper, model.MoveRock)
	s.Require().NoError(err)
	s.Equal(model.ResultSideA, result)
}

func (s *RulesSuite) TestEqualMovesTie() {
	for _, m := range allMoves {
		result, err := Decide(m, m)
		s.Require().NoError(err)
		s.Equal(model.ResultTie, result)
	}
}

func (s *RulesSuite) TestAntiSymmetry() {
	// If (a, b) favors side A, (b, a) must favor side B and vice versa
	for _, a := range allMoves {
		for _, b := range allMoves {
			forward, err := Decide(a, b)
			s.Require().NoError(err)
			backward, err := Decide(b, a)
			s.Require().NoError(err)

			switch forward {
			case model.ResultSideA:
				s.Equal(model.ResultSideB, backward, "a=%s b=%s", a, b)
			case model.ResultSideB:
				s.Equal(model.ResultSideA, backward, "a=%s b=%s", a, b)
			case model.ResultTie:
				s.Equal(model.ResultTie, backward, "a=%s b=%s", a, b)
			}
		}
	}
}

func (s *RulesSuite) TestInvalidMoveRejected() {
	_, err := Decide("lizard", model.MoveRock)
	s.ErrorIs(err, model.ErrInvalidMove)

	_, err = Decide(model.MoveRock, "spock")
	s.ErrorIs(err, model.ErrInvalidMove)
}
