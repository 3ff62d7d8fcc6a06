// Package manual implements the live, round-by-round driver for manual-mode
// games. One session handles one match at a time; its state is held only in
// memory and does not survive a restart.
package manual

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
	"github.com/nikrus/rpsduel-go/internal/services/rules"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// State is the session's position in the round flow
type State string

const (
	StateIdle          State = "idle"
	StateAwaitingSideA State = "awaiting_side_a"
	StateAwaitingSideB State = "awaiting_side_b"
)

// DefaultDuoNames returns the display names used when none are configured
func DefaultDuoNames() [2]string {
	return [2]string{"Rusya", "Nikita"}
}

// Session is the sequential state machine for one manual match.
// Idle -> AwaitingSideA -> AwaitingSideB -> (Idle on a decisive result, or
// AwaitingSideA for the next round on a tie).
type Session struct {
	mu      sync.Mutex
	storage storage.Storage
	roster  *roster.Service
	clock   clock.Clock
	logger  *slog.Logger

	duoNames [2]string

	state  State
	gameID model.GameID
	round  int
	sideA  *model.Player
	sideB  *model.Player
	moveA  model.Move
	moveB  model.Move
}

// NewSession creates a manual match session for the configured duo
func NewSession(storage storage.Storage, roster *roster.Service, clock clock.Clock, duoNames [2]string, logger *slog.Logger) *Session {
	return &Session{
		storage:  storage,
		roster:   roster,
		clock:    clock,
		logger:   logger,
		duoNames: duoNames,
		state:    StateIdle,
	}
}

// State returns the session's current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartRound binds the session to the date's manual game and opens a round.
// The game must exist, be in manual mode, and not be finished; both duo
// players must be registered.
func (s *Session) StartRound(ctx context.Context, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return 0, model.ErrRoundInProgress
	}

	game, err := s.storage.GetGameByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	if game.Mode != model.ModeManual {
		return 0, model.ErrWrongMode
	}
	if game.Finished {
		return 0, model.ErrGameFinished
	}

	sideA, err := s.roster.FindByName(ctx, s.duoNames[0])
	if err != nil {
		return 0, err
	}
	sideB, err := s.roster.FindByName(ctx, s.duoNames[1])
	if err != nil {
		return 0, err
	}

	rounds, err := s.storage.GetRounds(ctx, game.ID)
	if err != nil {
		return 0, err
	}

	s.gameID = game.ID
	s.round = len(rounds) + 1
	s.sideA = sideA
	s.sideB = sideB
	s.moveA = ""
	s.moveB = ""
	s.state = StateAwaitingSideA

	s.logger.Info("manual round started",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", s.round),
	)

	return s.round, nil
}

// RecordSideA records the first player's move for the open round
func (s *Session) RecordSideA(ctx context.Context, move model.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return model.ErrNoRoundInProgress
	case StateAwaitingSideB:
		return model.ErrNotSideTurn
	}

	if _, err := model.ParseMove(string(move)); err != nil {
		return err
	}

	s.moveA = move
	s.state = StateAwaitingSideB
	return nil
}

// RecordSideB records the second player's move. Both moves are now known, so
// the round settles immediately: the settled row is appended and the game row
// updated exactly as in daily settlement, but synchronously and without the
// pending-choice table.
func (s *Session) RecordSideB(ctx context.Context, move model.Move) (*model.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return nil, model.ErrNoRoundInProgress
	case StateAwaitingSideA:
		return nil, model.ErrNotSideTurn
	}

	if _, err := model.ParseMove(string(move)); err != nil {
		return nil, err
	}
	s.moveB = move

	return s.settleRound(ctx)
}

// settleRound applies the winner rule to the held pair and writes the result.
// Caller holds s.mu.
func (s *Session) settleRound(ctx context.Context) (*model.Settlement, error) {
	result, err := rules.Decide(s.moveA, s.moveB)
	if err != nil {
		return nil, err
	}

	game, err := s.storage.GetGame(ctx, s.gameID)
	if err != nil {
		return nil, err
	}

	settled := &model.MoveEvent{
		GameID:     s.gameID,
		Round:      s.round,
		PlayerA:    s.sideA.ID,
		MoveA:      s.moveA,
		PlayerB:    s.sideB.ID,
		MoveB:      s.moveB,
		Tag:        model.TagForResult(result),
		RecordedAt: s.clock.Now(),
	}
	if err := s.storage.AppendRound(ctx, settled); err != nil {
		return nil, err
	}

	if result == model.ResultTie {
		game.Winner = model.WinnerDrawPending
		game.MovesCount = s.round
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}

		round := s.round
		s.round++
		s.moveA = ""
		s.moveB = ""
		s.state = StateAwaitingSideA

		s.logger.Info("manual round tied",
			slog.String("game_id", string(s.gameID)),
			slog.Int("round", round),
		)

		return &model.Settlement{Status: model.SettleTie, GameID: s.gameID, Round: round}, nil
	}

	winnerPlayer := s.sideA
	if result == model.ResultSideB {
		winnerPlayer = s.sideB
	}

	game.Winner = winnerPlayer.DisplayName
	game.MovesCount = s.round
	game.Finished = true
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	settlement := &model.Settlement{
		Status:        model.SettleFinished,
		GameID:        s.gameID,
		Round:         s.round,
		Winner:        winnerPlayer.DisplayName,
		Notifications: s.buildNotifications(game, winnerPlayer.DisplayName, s.round),
	}

	s.logger.Info("manual game settled",
		slog.String("game_id", string(s.gameID)),
		slog.String("winner", winnerPlayer.DisplayName),
		slog.Int("round", s.round),
	)

	s.state = StateIdle
	s.gameID = ""
	s.round = 0
	s.moveA = ""
	s.moveB = ""

	return settlement, nil
}

// buildNotifications produces the result messages for both duo members.
// Caller holds s.mu.
func (s *Session) buildNotifications(game *model.Game, winner string, round int) []model.NotificationRequest {
	text := fmt.Sprintf("Game %s: winner %s after %d round(s)", game.ID, winner, round)

	var notifications []model.NotificationRequest
	for _, p := range []*model.Player{s.sideA, s.sideB} {
		if p == nil || p.ChatID == "" {
			continue
		}
		notifications = append(notifications, model.NotificationRequest{
			ChatID: p.ChatID,
			Text:   text,
		})
	}
	return notifications
}
