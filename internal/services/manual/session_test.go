package manual

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nikrus/rpsduel-go/internal/dependencies/mocks"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
	"github.com/nikrus/rpsduel-go/internal/storage/memory"
	"github.com/nikrus/rpsduel-go/internal/testutil"
)

const testDate = "2024-01-01"

type SessionSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	roster  *roster.Service
	session *Session
	ctx     context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()
	s.roster = roster.New(s.storage, s.clock, logger)
	s.session = NewSession(s.storage, s.roster, s.clock, DefaultDuoNames(), logger)
	s.ctx = context.Background()
}

func (s *SessionSuite) registerDuo() {
	_, err := s.roster.Register(s.ctx, "p1", "Rusya", "chat-1")
	s.Require().NoError(err)
	_, err = s.roster.Register(s.ctx, "p2", "Nikita", "chat-2")
	s.Require().NoError(err)
}

func (s *SessionSuite) createGame(mode model.Mode) *model.Game {
	game := &model.Game{
		ID:        model.NewGameID(testDate, s.clock.Now()),
		Date:      testDate,
		Mode:      mode,
		CreatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

// StartRound tests

func (s *SessionSuite) TestStartRoundSucceeds() {
	s.registerDuo()
	s.createGame(model.ModeManual)

	round, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(1, round)
	s.Equal(StateAwaitingSideA, s.session.State())
}

func (s *SessionSuite) TestStartRoundRequiresGame() {
	s.registerDuo()

	_, err := s.session.StartRound(s.ctx, testDate)
	s.ErrorIs(err, model.ErrGameNotFound)
	s.Equal(StateIdle, s.session.State())
}

func (s *SessionSuite) TestStartRoundRejectsAutoGame() {
	s.registerDuo()
	s.createGame(model.ModeAuto)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.ErrorIs(err, model.ErrWrongMode)
}

func (s *SessionSuite) TestStartRoundRejectsFinishedGame() {
	s.registerDuo()
	game := s.createGame(model.ModeManual)
	game.Finished = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	_, err := s.session.StartRound(s.ctx, testDate)
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *SessionSuite) TestStartRoundRequiresRegisteredDuo() {
	s.createGame(model.ModeManual)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *SessionSuite) TestStartRoundWhileOpenFails() {
	s.registerDuo()
	s.createGame(model.ModeManual)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)

	_, err = s.session.StartRound(s.ctx, testDate)
	s.ErrorIs(err, model.ErrRoundInProgress)
}

// Move recording tests

func (s *SessionSuite) TestMovesOutOfOrder() {
	s.registerDuo()
	s.createGame(model.ModeManual)

	err := s.session.RecordSideA(s.ctx, model.MoveRock)
	s.ErrorIs(err, model.ErrNoRoundInProgress)

	_, err = s.session.RecordSideB(s.ctx, model.MoveRock)
	s.ErrorIs(err, model.ErrNoRoundInProgress)

	_, err = s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)

	// Side B cannot move before side A
	_, err = s.session.RecordSideB(s.ctx, model.MoveRock)
	s.ErrorIs(err, model.ErrNotSideTurn)

	s.Require().NoError(s.session.RecordSideA(s.ctx, model.MoveRock))

	// Side A cannot move twice
	err = s.session.RecordSideA(s.ctx, model.MovePaper)
	s.ErrorIs(err, model.ErrNotSideTurn)
}

func (s *SessionSuite) TestInvalidMoveRejected() {
	s.registerDuo()
	s.createGame(model.ModeManual)
	_, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)

	err = s.session.RecordSideA(s.ctx, "lizard")
	s.ErrorIs(err, model.ErrInvalidMove)
	s.Equal(StateAwaitingSideA, s.session.State())
}

// Settlement tests

func (s *SessionSuite) TestDecisiveRoundFinishesGame() {
	s.registerDuo()
	game := s.createGame(model.ModeManual)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)
	s.Require().NoError(s.session.RecordSideA(s.ctx, model.MovePaper))

	settlement, err := s.session.RecordSideB(s.ctx, model.MoveRock)
	s.Require().NoError(err)

	s.Equal(model.SettleFinished, settlement.Status)
	s.Equal(1, settlement.Round)
	s.Equal("Rusya", settlement.Winner)
	s.Len(settlement.Notifications, 2)
	s.Equal(StateIdle, s.session.State())

	updated, _ := s.storage.GetGame(s.ctx, game.ID)
	s.True(updated.Finished)
	s.Equal("Rusya", updated.Winner)
	s.Equal(1, updated.MovesCount)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 1)
	s.Equal(model.TagSideAWins, rounds[0].Tag)
	s.Equal(model.PlayerID("p1"), rounds[0].PlayerA)
	s.Equal(model.PlayerID("p2"), rounds[0].PlayerB)
}

func (s *SessionSuite) TestTieOpensNextRound() {
	s.registerDuo()
	game := s.createGame(model.ModeManual)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)
	s.Require().NoError(s.session.RecordSideA(s.ctx, model.MoveRock))

	settlement, err := s.session.RecordSideB(s.ctx, model.MoveRock)
	s.Require().NoError(err)

	s.Equal(model.SettleTie, settlement.Status)
	s.Equal(1, settlement.Round)
	s.Equal(StateAwaitingSideA, s.session.State())

	updated, _ := s.storage.GetGame(s.ctx, game.ID)
	s.False(updated.Finished)
	s.Equal(model.WinnerDrawPending, updated.Winner)

	// The next round continues without another StartRound call
	s.Require().NoError(s.session.RecordSideA(s.ctx, model.MoveScissors))
	second, err := s.session.RecordSideB(s.ctx, model.MovePaper)
	s.Require().NoError(err)

	s.Equal(model.SettleFinished, second.Status)
	s.Equal(2, second.Round)
	s.Equal("Rusya", second.Winner)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 2)
	s.Equal(model.TagTie, rounds[0].Tag)
	s.Equal(model.TagSideAWins, rounds[1].Tag)
}

func (s *SessionSuite) TestSideBWinner() {
	s.registerDuo()
	s.createGame(model.ModeManual)

	_, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)
	s.Require().NoError(s.session.RecordSideA(s.ctx, model.MoveScissors))

	settlement, err := s.session.RecordSideB(s.ctx, model.MoveRock)
	s.Require().NoError(err)

	s.Equal("Nikita", settlement.Winner)
}

func (s *SessionSuite) TestRoundNumberResumesFromHistory() {
	s.registerDuo()
	game := s.createGame(model.ModeManual)

	// One tied round already recorded, e.g. before a process restart
	s.Require().NoError(s.storage.AppendRound(s.ctx, &model.MoveEvent{
		GameID:     game.ID,
		Round:      1,
		PlayerA:    "p1",
		MoveA:      model.MoveRock,
		PlayerB:    "p2",
		MoveB:      model.MoveRock,
		Tag:        model.TagTie,
		RecordedAt: s.clock.Now(),
	}))

	round, err := s.session.StartRound(s.ctx, testDate)
	s.Require().NoError(err)
	s.Equal(2, round)
}
