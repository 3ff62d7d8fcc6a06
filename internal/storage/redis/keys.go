package redis

import (
	"fmt"

	"github.com/nikrus/rpsduel-go/internal/model"
)

// Key prefix for all duel-related data
const keyPrefix = "rpsduel"

// Key generation functions for each table

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// voteKey returns the Redis key for a ModeVote; the per-player key makes the
// latest vote for a day supersede earlier ones
func voteKey(date string, playerID model.PlayerID) string {
	return fmt.Sprintf("%s:vote:%s:%s", keyPrefix, date, playerID)
}

// votesForDateIndexKey returns the Redis key for the SET of a date's votes
func votesForDateIndexKey(date string) string {
	return fmt.Sprintf("%s:idx:votes_for_date:%s", keyPrefix, date)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gameByDateKey returns the Redis key for the date -> game_id index
func gameByDateKey(date string) string {
	return fmt.Sprintf("%s:idx:game_by_date:%s", keyPrefix, date)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// pendingKey returns the Redis key for a player's live pending choice
func pendingKey(gameID model.GameID, playerID model.PlayerID) string {
	return fmt.Sprintf("%s:pending:%s:%s", keyPrefix, gameID, playerID)
}

// pendingForGameIndexKey returns the Redis key for the SET of a game's
// pending choice keys
func pendingForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:pending_for_game:%s", keyPrefix, gameID)
}

// roundsKey returns the Redis key for the LIST of a game's settled rounds
func roundsKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:rounds:%s", keyPrefix, gameID)
}
