package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON values, one key per row, with SET indexes for
// the per-date and per-game collections.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var player model.Player
		if err := json.Unmarshal(data, &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// Mode vote operations

func (s *Storage) SaveModeVote(ctx context.Context, vote *model.ModeVote) error {
	data, err := json.Marshal(vote)
	if err != nil {
		return err
	}

	key := voteKey(vote.Date, vote.PlayerID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, votesForDateIndexKey(vote.Date), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetModeVotes(ctx context.Context, date string) ([]*model.ModeVote, error) {
	keys, err := s.client.SMembers(ctx, votesForDateIndexKey(date)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	votes := make([]*model.ModeVote, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var vote model.ModeVote
		if err := json.Unmarshal([]byte(val.(string)), &vote); err != nil {
			continue // Skip invalid data
		}
		votes = append(votes, &vote)
	}

	sort.Slice(votes, func(i, j int) bool {
		return votes[i].CastAt.Before(votes[j].CastAt)
	})
	return votes, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	key := gameKey(game.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, gameByDateKey(game.Date), string(game.ID), 0)
	pipe.SAdd(ctx, gamesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GetGameByDate(ctx context.Context, date string) (*model.Game, error) {
	id, err := s.client.Get(ctx, gameByDateKey(date)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	return s.GetGame(ctx, model.GameID(id))
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	keys, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Game{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue // Skip invalid data
		}
		games = append(games, &game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date < games[j].Date
	})
	return games, nil
}

// Pending choice operations

func (s *Storage) SavePendingChoice(ctx context.Context, event *model.MoveEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Overwriting the per-player key is what supersedes the earlier choice
	key := pendingKey(event.GameID, event.PlayerA)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, pendingForGameIndexKey(event.GameID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPendingChoices(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error) {
	keys, err := s.client.SMembers(ctx, pendingForGameIndexKey(gameID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*model.MoveEvent, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var event model.MoveEvent
		if err := json.Unmarshal([]byte(val.(string)), &event); err != nil {
			continue // Skip invalid data
		}
		events = append(events, &event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].RecordedAt.Before(events[j].RecordedAt)
	})
	return events, nil
}

func (s *Storage) ClearPendingChoices(ctx context.Context, gameID model.GameID) error {
	indexKey := pendingForGameIndexKey(gameID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Settled round operations

func (s *Storage) AppendRound(ctx context.Context, event *model.MoveEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, roundsKey(event.GameID), data).Err()
}

func (s *Storage) GetRounds(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error) {
	values, err := s.client.LRange(ctx, roundsKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	rounds := make([]*model.MoveEvent, 0, len(values))
	for _, val := range values {
		var event model.MoveEvent
		if err := json.Unmarshal([]byte(val), &event); err != nil {
			continue // Skip invalid data
		}
		rounds = append(rounds, &event)
	}

	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Round < rounds[j].Round
	})
	return rounds, nil
}
