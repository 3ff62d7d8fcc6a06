// Package roster manages player registration.
package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/storage"
)

// Service provides player registration and lookup
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates or refreshes a player record. Re-registration updates the
// display name and chat address but keeps the original registration date.
// It returns true if a new record was created.
func (s *Service) Register(ctx context.Context, id model.PlayerID, displayName, chatID string) (bool, error) {
	existing, err := s.storage.GetPlayer(ctx, id)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return false, err
	}

	player := &model.Player{
		ID:          id,
		DisplayName: displayName,
		ChatID:      chatID,
	}

	created := existing == nil
	if created {
		player.RegisteredAt = s.clock.Now()
	} else {
		player.RegisteredAt = existing.RegisteredAt
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return false, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(id)),
		slog.String("display_name", displayName),
		slog.Bool("created", created),
	)

	return created, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns all registered players
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// FindByName returns the player with the given display name
func (s *Service) FindByName(ctx context.Context, displayName string) (*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.DisplayName == displayName {
			return p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// DisplayName resolves a player id to their display name, falling back to the
// raw id when no roster record exists
func (s *Service) DisplayName(ctx context.Context, id model.PlayerID) string {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return string(id)
	}
	return player.DisplayName
}

// Interface for dependency injection
type ServiceInterface interface {
	Register(ctx context.Context, id model.PlayerID, displayName, chatID string) (bool, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	FindByName(ctx context.Context, displayName string) (*model.Player, error)
	DisplayName(ctx context.Context, id model.PlayerID) string
}

var _ ServiceInterface = (*Service)(nil)
