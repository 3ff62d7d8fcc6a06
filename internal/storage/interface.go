package storage

import (
	"context"

	"github.com/nikrus/rpsduel-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// It is a typed repository over four logical tables (players, mode votes,
// games, moves). The backing store offers no transactions or uniqueness
// constraints; every cross-row invariant is enforced by the callers.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Mode vote operations. SaveModeVote upserts on (Date, PlayerID).
	SaveModeVote(ctx context.Context, vote *model.ModeVote) error
	GetModeVotes(ctx context.Context, date string) ([]*model.ModeVote, error)

	// Game operations. GetGameByDate enforces nothing; at most one game per
	// date is the mode controller's invariant.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	GetGameByDate(ctx context.Context, date string) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)

	// Pending choice operations. SavePendingChoice supersedes any earlier
	// live choice for the same (GameID, PlayerA).
	SavePendingChoice(ctx context.Context, event *model.MoveEvent) error
	GetPendingChoices(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error)
	ClearPendingChoices(ctx context.Context, gameID model.GameID) error

	// Settled round operations. Rounds are append-only and immutable.
	AppendRound(ctx context.Context, event *model.MoveEvent) error
	GetRounds(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error)
}
