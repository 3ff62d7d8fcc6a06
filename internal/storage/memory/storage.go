package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	votes     map[voteKey]*model.ModeVote
	games     map[model.GameID]*model.Game
	dateIndex map[string]model.GameID
	pending   map[pendingKey]*model.MoveEvent
	rounds    map[model.GameID][]*model.MoveEvent
}

type voteKey struct {
	date     string
	playerID model.PlayerID
}

type pendingKey struct {
	gameID   model.GameID
	playerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		votes:     make(map[voteKey]*model.ModeVote),
		games:     make(map[model.GameID]*model.Game),
		dateIndex: make(map[string]model.GameID),
		pending:   make(map[pendingKey]*model.MoveEvent),
		rounds:    make(map[model.GameID][]*model.MoveEvent),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// Mode vote operations

func (s *Storage) SaveModeVote(ctx context.Context, vote *model.ModeVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[voteKey{date: vote.Date, playerID: vote.PlayerID}] = vote
	return nil
}

func (s *Storage) GetModeVotes(ctx context.Context, date string) ([]*model.ModeVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var votes []*model.ModeVote
	for key, v := range s.votes {
		if key.date == date {
			votes = append(votes, v)
		}
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].CastAt.Before(votes[j].CastAt)
	})
	return votes, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	s.dateIndex[game.Date] = game.ID
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) GetGameByDate(ctx context.Context, date string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.dateIndex[date]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].Date < games[j].Date
	})
	return games, nil
}

// Pending choice operations

func (s *Storage) SavePendingChoice(ctx context.Context, event *model.MoveEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[pendingKey{gameID: event.GameID, playerID: event.PlayerA}] = event
	return nil
}

func (s *Storage) GetPendingChoices(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []*model.MoveEvent
	for key, e := range s.pending {
		if key.gameID == gameID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].RecordedAt.Before(events[j].RecordedAt)
	})
	return events, nil
}

func (s *Storage) ClearPendingChoices(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.pending {
		if key.gameID == gameID {
			delete(s.pending, key)
		}
	}
	return nil
}

// Settled round operations

func (s *Storage) AppendRound(ctx context.Context, event *model.MoveEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[event.GameID] = append(s.rounds[event.GameID], event)
	return nil
}

func (s *Storage) GetRounds(ctx context.Context, gameID model.GameID) ([]*model.MoveEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rounds := s.rounds[gameID]
	result := make([]*model.MoveEvent, len(rounds))
	copy(result, rounds)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Round < result[j].Round
	})
	return result, nil
}
