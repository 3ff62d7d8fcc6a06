package match

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

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	roster     *roster.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()
	s.roster = roster.New(s.storage, s.clock, logger)
	s.controller = NewController(s.storage, s.roster, s.clock, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) createGame(mode model.Mode) *model.Game {
	game := &model.Game{
		ID:        model.NewGameID(testDate, s.clock.Now()),
		Date:      testDate,
		Mode:      mode,
		CreatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

func (s *ControllerSuite) registerPlayer(id, name, chatID string) {
	_, err := s.roster.Register(s.ctx, model.PlayerID(id), name, chatID)
	s.Require().NoError(err)
}

// submitChoice advances the clock first so each choice has a distinct timestamp
func (s *ControllerSuite) submitChoice(gameID model.GameID, player string, move model.Move) {
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.controller.SubmitChoice(s.ctx, gameID, model.PlayerID(player), move))
}

// SubmitChoice tests

func (s *ControllerSuite) TestSubmitChoiceRecordsPending() {
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)

	pending, err := s.storage.GetPendingChoices(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(model.TagPendingChoice, pending[0].Tag)
	s.Equal(model.MoveRock, pending[0].MoveA)
	s.True(pending[0].IsPending())
}

func (s *ControllerSuite) TestResubmissionSupersedes() {
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p1", model.MovePaper)

	pending, err := s.storage.GetPendingChoices(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(model.MovePaper, pending[0].MoveA)
}

func (s *ControllerSuite) TestSubmitChoiceRejectsInvalidMove() {
	game := s.createGame(model.ModeAuto)

	err := s.controller.SubmitChoice(s.ctx, game.ID, "p1", "lizard")
	s.ErrorIs(err, model.ErrInvalidMove)
}

func (s *ControllerSuite) TestSubmitChoiceRejectsUnknownGame() {
	err := s.controller.SubmitChoice(s.ctx, "nope", "p1", model.MoveRock)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestSubmitChoiceRejectsManualGame() {
	game := s.createGame(model.ModeManual)

	err := s.controller.SubmitChoice(s.ctx, game.ID, "p1", model.MoveRock)
	s.ErrorIs(err, model.ErrWrongMode)
}

func (s *ControllerSuite) TestSubmitChoiceRejectsFinishedGame() {
	game := s.createGame(model.ModeAuto)
	game.Finished = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.SubmitChoice(s.ctx, game.ID, "p1", model.MoveRock)
	s.ErrorIs(err, model.ErrGameFinished)
}

// SettleDaily tests

func (s *ControllerSuite) TestSettleNoGame() {
	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)
	s.Equal(model.SettleNoGame, settlement.Status)
}

func (s *ControllerSuite) TestSettleWrongMode() {
	game := s.createGame(model.ModeManual)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)
	s.Equal(model.SettleWrongMode, settlement.Status)
	s.Equal(game.ID, settlement.GameID)
}

func (s *ControllerSuite) TestSettleNotEnoughPlayers() {
	game := s.createGame(model.ModeAuto)
	s.submitChoice(game.ID, "p1", model.MoveRock)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)
	s.Equal(model.SettleNotEnoughPlayers, settlement.Status)

	// The lone choice stays live for a later attempt
	pending, _ := s.storage.GetPendingChoices(s.ctx, game.ID)
	s.Len(pending, 1)
}

func (s *ControllerSuite) TestSettleDecisive() {
	s.registerPlayer("p1", "Rusya", "chat-1")
	s.registerPlayer("p2", "Nikita", "chat-2")
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MoveScissors)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(model.SettleFinished, settlement.Status)
	s.Equal(1, settlement.Round)
	s.Equal("Rusya", settlement.Winner)
	s.Len(settlement.Notifications, 2)

	updated, _ := s.storage.GetGame(s.ctx, game.ID)
	s.True(updated.Finished)
	s.Equal("Rusya", updated.Winner)
	s.Equal(1, updated.MovesCount)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 1)
	s.Equal(model.TagSideAWins, rounds[0].Tag)

	pending, _ := s.storage.GetPendingChoices(s.ctx, game.ID)
	s.Empty(pending)
}

func (s *ControllerSuite) TestSettleSideAIsEarlierSubmitter() {
	s.registerPlayer("p1", "Rusya", "")
	s.registerPlayer("p2", "Nikita", "")
	game := s.createGame(model.ModeAuto)

	// p2 submitted first, so p2 is side A and their scissors lose to rock
	s.submitChoice(game.ID, "p2", model.MoveScissors)
	s.submitChoice(game.ID, "p1", model.MoveRock)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal("Rusya", settlement.Winner)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 1)
	s.Equal(model.PlayerID("p2"), rounds[0].PlayerA)
	s.Equal(model.PlayerID("p1"), rounds[0].PlayerB)
	s.Equal(model.TagSideBWins, rounds[0].Tag)
}

func (s *ControllerSuite) TestSettleTieKeepsGameOpen() {
	s.registerPlayer("p1", "Rusya", "chat-1")
	s.registerPlayer("p2", "Nikita", "chat-2")
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MoveRock)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(model.SettleTie, settlement.Status)
	s.Equal(1, settlement.Round)
	s.Empty(settlement.Notifications)

	updated, _ := s.storage.GetGame(s.ctx, game.ID)
	s.False(updated.Finished)
	s.Equal(model.WinnerDrawPending, updated.Winner)

	// Tied choices are consumed; the next round needs fresh submissions
	pending, _ := s.storage.GetPendingChoices(s.ctx, game.ID)
	s.Empty(pending)
}

func (s *ControllerSuite) TestTieThenSecondRoundSettles() {
	s.registerPlayer("p1", "Rusya", "chat-1")
	s.registerPlayer("p2", "Nikita", "chat-2")
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MovePaper)
	s.submitChoice(game.ID, "p2", model.MovePaper)
	first, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)
	s.Require().Equal(model.SettleTie, first.Status)

	s.submitChoice(game.ID, "p1", model.MoveScissors)
	s.submitChoice(game.ID, "p2", model.MovePaper)
	second, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(model.SettleFinished, second.Status)
	s.Equal(2, second.Round)
	s.Equal("Rusya", second.Winner)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 2)
	s.Equal(1, rounds[0].Round)
	s.Equal(2, rounds[1].Round)

	updated, _ := s.storage.GetGame(s.ctx, game.ID)
	s.True(updated.Finished)
	s.Equal(2, updated.MovesCount)
}

func (s *ControllerSuite) TestSettleAfterFinishIsIdempotent() {
	s.registerPlayer("p1", "Rusya", "chat-1")
	s.registerPlayer("p2", "Nikita", "chat-2")
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MoveScissors)
	_, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(model.SettleAlreadyFinished, settlement.Status)
	s.Equal(game.ID, settlement.GameID)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Len(rounds, 1)
}

func (s *ControllerSuite) TestStaleVotersIgnored() {
	s.registerPlayer("p1", "Rusya", "")
	s.registerPlayer("p2", "Nikita", "")
	s.registerPlayer("p3", "Borya", "")
	game := s.createGame(model.ModeAuto)

	// p1's old choice is superseded by the two most recent submitters
	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MovePaper)
	s.submitChoice(game.ID, "p3", model.MoveScissors)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal(model.SettleFinished, settlement.Status)
	s.Equal("Borya", settlement.Winner)

	rounds, _ := s.storage.GetRounds(s.ctx, game.ID)
	s.Require().Len(rounds, 1)
	s.Equal(model.PlayerID("p2"), rounds[0].PlayerA)
	s.Equal(model.PlayerID("p3"), rounds[0].PlayerB)
}

func (s *ControllerSuite) TestWinnerFallsBackToRawID() {
	// No roster records at all
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MoveScissors)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Equal("p1", settlement.Winner)
	s.Empty(settlement.Notifications)
}

func (s *ControllerSuite) TestNotificationsSkipPlayersWithoutChat() {
	s.registerPlayer("p1", "Rusya", "chat-1")
	s.registerPlayer("p2", "Nikita", "")
	game := s.createGame(model.ModeAuto)

	s.submitChoice(game.ID, "p1", model.MoveRock)
	s.submitChoice(game.ID, "p2", model.MoveScissors)

	settlement, err := s.controller.SettleDaily(s.ctx, testDate)
	s.Require().NoError(err)

	s.Require().Len(settlement.Notifications, 1)
	s.Equal("chat-1", settlement.Notifications[0].ChatID)
	s.Contains(settlement.Notifications[0].Text, "Rusya")
}
