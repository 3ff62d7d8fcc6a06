// Package match implements auto-mode move collection and the daily
// settlement engine.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
	"github.com/nikrus/rpsduel-go/internal/services/rules"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Controller collects pending choices and settles the day's auto-mode game
type Controller struct {
	// mu serializes settlement so a doubled daily trigger cannot write the
	// same round twice
	mu      sync.Mutex
	storage storage.Storage
	roster  *roster.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new match controller
func NewController(storage storage.Storage, roster *roster.Service, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		roster:  roster,
		clock:   clock,
		logger:  logger,
	}
}

// SubmitChoice records a player's hidden move for an auto-mode game.
// Resubmission replaces the player's earlier choice; duplicates never
// accumulate. The game must exist, be in auto mode, and not be finished.
func (c *Controller) SubmitChoice(ctx context.Context, gameID model.GameID, playerID model.PlayerID, move model.Move) error {
	if _, err := model.ParseMove(string(move)); err != nil {
		return err
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.Mode != model.ModeAuto {
		return model.ErrWrongMode
	}
	if game.Finished {
		return model.ErrGameFinished
	}

	event := &model.MoveEvent{
		GameID:     gameID,
		Round:      0,
		PlayerA:    playerID,
		MoveA:      move,
		Tag:        model.TagPendingChoice,
		RecordedAt: c.clock.Now(),
	}
	if err := c.storage.SavePendingChoice(ctx, event); err != nil {
		return err
	}

	c.logger.Info("choice recorded",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
	)

	return nil
}

// SettleDaily runs one settlement attempt for the date's game. It is safe to
// invoke any number of times: every state-changing path is guarded by the
// game's recorded state, so re-invocation after a decisive result reports
// already_finished without further mutation.
func (c *Controller) SettleDaily(ctx context.Context, date string) (*model.Settlement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGameByDate(ctx, date)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return &model.Settlement{Status: model.SettleNoGame}, nil
		}
		return nil, err
	}
	if game.Mode != model.ModeAuto {
		return &model.Settlement{Status: model.SettleWrongMode, GameID: game.ID}, nil
	}
	if game.Finished {
		return &model.Settlement{Status: model.SettleAlreadyFinished, GameID: game.ID}, nil
	}

	sideA, sideB, err := c.pickContenders(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	if sideA == nil {
		return &model.Settlement{Status: model.SettleNotEnoughPlayers, GameID: game.ID}, nil
	}

	result, err := rules.Decide(sideA.MoveA, sideB.MoveA)
	if err != nil {
		return nil, err
	}

	rounds, err := c.storage.GetRounds(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	round := len(rounds) + 1

	settled := &model.MoveEvent{
		GameID:     game.ID,
		Round:      round,
		PlayerA:    sideA.PlayerA,
		MoveA:      sideA.MoveA,
		PlayerB:    sideB.PlayerA,
		MoveB:      sideB.MoveA,
		Tag:        model.TagForResult(result),
		RecordedAt: c.clock.Now(),
	}
	if err := c.storage.AppendRound(ctx, settled); err != nil {
		return nil, err
	}

	// Consumed choices never carry over into the next round; a tie requires
	// both players to submit fresh moves
	if err := c.storage.ClearPendingChoices(ctx, game.ID); err != nil {
		return nil, err
	}

	if result == model.ResultTie {
		game.Winner = model.WinnerDrawPending
		game.MovesCount = round
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}

		c.logger.Info("round tied",
			slog.String("game_id", string(game.ID)),
			slog.Int("round", round),
		)

		return &model.Settlement{Status: model.SettleTie, GameID: game.ID, Round: round}, nil
	}

	winnerID := sideA.PlayerA
	if result == model.ResultSideB {
		winnerID = sideB.PlayerA
	}
	winner := c.roster.DisplayName(ctx, winnerID)

	game.Winner = winner
	game.MovesCount = round
	game.Finished = true
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game settled",
		slog.String("game_id", string(game.ID)),
		slog.String("winner", winner),
		slog.Int("round", round),
	)

	return &model.Settlement{
		Status:        model.SettleFinished,
		GameID:        game.ID,
		Round:         round,
		Winner:        winner,
		Notifications: c.buildNotifications(ctx, game, winner, round, sideA.PlayerA, sideB.PlayerA),
	}, nil
}

// pickContenders returns the two sides for the round, or (nil, nil, nil) when
// fewer than two distinct players have a live pending choice.
//
// Selection policy: the two most recently submitted distinct players; side A
// is the earlier submitter of the pair, so the outcome is deterministic
// however many stale voters exist.
func (c *Controller) pickContenders(ctx context.Context, gameID model.GameID) (*model.MoveEvent, *model.MoveEvent, error) {
	pending, err := c.storage.GetPendingChoices(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	// Keep the latest choice per distinct player (pending is sorted oldest
	// first, so later entries win)
	latest := map[model.PlayerID]*model.MoveEvent{}
	for _, e := range pending {
		latest[e.PlayerA] = e
	}
	if len(latest) < 2 {
		return nil, nil, nil
	}

	choices := make([]*model.MoveEvent, 0, len(latest))
	for _, e := range latest {
		choices = append(choices, e)
	}
	sort.Slice(choices, func(i, j int) bool {
		return choices[i].RecordedAt.After(choices[j].RecordedAt)
	})

	pair := choices[:2]
	if pair[0].RecordedAt.Before(pair[1].RecordedAt) {
		return pair[0], pair[1], nil
	}
	return pair[1], pair[0], nil
}

// buildNotifications produces the out-of-band result messages for both
// participants. Players with no roster record or chat address are skipped.
func (c *Controller) buildNotifications(ctx context.Context, game *model.Game, winner string, round int, participants ...model.PlayerID) []model.NotificationRequest {
	text := fmt.Sprintf("Game %s: winner %s after %d round(s)", game.ID, winner, round)

	var notifications []model.NotificationRequest
	for _, id := range participants {
		player, err := c.storage.GetPlayer(ctx, id)
		if err != nil || player.ChatID == "" {
			continue
		}
		notifications = append(notifications, model.NotificationRequest{
			ChatID: player.ChatID,
			Text:   text,
		})
	}
	return notifications
}

// Interface for dependency injection
type ControllerInterface interface {
	SubmitChoice(ctx context.Context, gameID model.GameID, playerID model.PlayerID, move model.Move) error
	SettleDaily(ctx context.Context, date string) (*model.Settlement, error)
}

var _ ControllerInterface = (*Controller)(nil)
