// Package stats derives match statistics from the games table.
package stats

import (
	"context"

	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Summary is a read-only tally over all recorded games
type Summary struct {
	TotalGames    int            `json:"total_games"`
	FinishedGames int            `json:"finished_games"`
	PendingGames  int            `json:"pending_games"`
	TotalRounds   int            `json:"total_rounds"`
	WinsByPlayer  map[string]int `json:"wins_by_player"`
}

// Service computes game statistics
type Service struct {
	storage storage.Storage
}

// New creates a new stats service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Summary tallies every game in the store
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		WinsByPlayer: map[string]int{},
	}
	for _, g := range games {
		summary.TotalGames++
		summary.TotalRounds += g.MovesCount
		if g.Finished {
			summary.FinishedGames++
			if g.Winner != "" && g.Winner != model.WinnerDrawPending {
				summary.WinsByPlayer[g.Winner]++
			}
		} else {
			summary.PendingGames++
		}
	}
	return summary, nil
}
