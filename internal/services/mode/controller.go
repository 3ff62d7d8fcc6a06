// Package mode turns independent per-player daily votes into a single
// committed game record, exactly once per day.
package mode

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Controller negotiates the daily game mode
type Controller struct {
	// mu serializes the existence check and game creation. The store has no
	// transactions, so this is the only thing keeping two agreeing votes
	// from each creating a game.
	mu      sync.Mutex
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new mode negotiation controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// SubmitVote records the caller's mode vote for the date and creates the
// day's game once two distinct players agree on a mode.
//
// A repeat vote by the same player overwrites their earlier ballot. Once a
// game exists for the date the vote is recorded but inert, and the existing
// game's id is returned with VoteAlready.
func (c *Controller) SubmitVote(ctx context.Context, playerID model.PlayerID, date string, mode model.Mode) (*model.VoteOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vote := &model.ModeVote{
		Date:     date,
		PlayerID: playerID,
		Mode:     mode,
		CastAt:   c.clock.Now(),
	}
	if err := c.storage.SaveModeVote(ctx, vote); err != nil {
		return nil, err
	}

	// A game may already exist; votes never re-open or re-mode it
	existing, err := c.storage.GetGameByDate(ctx, date)
	if err != nil && !errors.Is(err, model.ErrGameNotFound) {
		return nil, err
	}
	if existing != nil {
		return &model.VoteOutcome{Status: model.VoteAlready, GameID: existing.ID}, nil
	}

	agreed, ok, err := c.agreedMode(ctx, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &model.VoteOutcome{Status: model.VoteWaiting}, nil
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.NewGameID(date, now),
		Date:      date,
		Mode:      agreed,
		Winner:    "",
		Finished:  false,
		CreatedAt: now,
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("date", date),
		slog.String("mode", string(agreed)),
	)

	return &model.VoteOutcome{Status: model.VoteStarted, GameID: game.ID}, nil
}

// agreedMode scans the date's votes and reports the first mode backed by at
// least two distinct players
func (c *Controller) agreedMode(ctx context.Context, date string) (model.Mode, bool, error) {
	votes, err := c.storage.GetModeVotes(ctx, date)
	if err != nil {
		return "", false, err
	}

	voters := map[model.Mode]map[model.PlayerID]struct{}{}
	for _, v := range votes {
		if voters[v.Mode] == nil {
			voters[v.Mode] = map[model.PlayerID]struct{}{}
		}
		voters[v.Mode][v.PlayerID] = struct{}{}
		if len(voters[v.Mode]) >= 2 {
			return v.Mode, true, nil
		}
	}
	return "", false, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	SubmitVote(ctx context.Context, playerID model.PlayerID, date string, mode model.Mode) (*model.VoteOutcome, error)
}

var _ ControllerInterface = (*Controller)(nil)
