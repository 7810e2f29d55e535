package service

import (
	"context"
	"errors"
	"strings"

	"github.com/narathia/narathia-go/internal/model"
	"github.com/narathia/narathia-go/internal/repository"
)

var (
	ErrGameNameRequired  = errors.New("game name is required")
	ErrGameStateRequired = errors.New("game state is required")
	ErrGameNameTaken     = errors.New("a game with that name already exists")
	ErrGameNotFound      = errors.New("game not found")
	ErrOwnerNotFound     = errors.New("owner not found")
)

// GameService handles saved-game business logic. The state payload is
// opaque: it is stored and returned byte for byte, never parsed.
type GameService struct {
	repo *repository.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(repo *repository.GameRepository) *GameService {
	return &GameService{repo: repo}
}

// Save creates a new game record for the owner and returns its id.
func (s *GameService) Save(ctx context.Context, ownerID int64, req model.SaveGameRequest) (model.SaveGameResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.SaveGameResponse{}, ErrGameNameRequired
	}
	if emptyState(req.State) {
		return model.SaveGameResponse{}, ErrGameStateRequired
	}

	game := &model.Game{
		OwnerID: ownerID,
		Name:    name,
		State:   req.State,
	}

	if err := s.repo.Create(ctx, game); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateName):
			return model.SaveGameResponse{}, ErrGameNameTaken
		case errors.Is(err, repository.ErrOwnerNotFound):
			return model.SaveGameResponse{}, ErrOwnerNotFound
		}
		return model.SaveGameResponse{}, err
	}

	return model.SaveGameResponse{ID: game.ID}, nil
}

// emptyState reports whether a state payload is absent or JSON null.
func emptyState(state []byte) bool {
	return len(state) == 0 || string(state) == "null"
}

// Overwrite replaces the state of an existing game owned by ownerID.
func (s *GameService) Overwrite(ctx context.Context, ownerID int64, gameID string, req model.OverwriteGameRequest) error {
	if emptyState(req.State) {
		return ErrGameStateRequired
	}

	err := s.repo.UpdateState(ctx, ownerID, gameID, req.State)
	if errors.Is(err, repository.ErrGameNotFound) {
		return ErrGameNotFound
	}
	return err
}

// List returns summaries of all games owned by ownerID, most recent first.
func (s *GameService) List(ctx context.Context, ownerID int64) ([]model.GameSummary, error) {
	games, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if games == nil {
		games = []model.GameSummary{}
	}
	return games, nil
}

// Load returns the full state of a game owned by ownerID.
func (s *GameService) Load(ctx context.Context, ownerID int64, gameID string) (model.GameStateResponse, error) {
	state, err := s.repo.GetState(ctx, ownerID, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return model.GameStateResponse{}, ErrGameNotFound
		}
		return model.GameStateResponse{}, err
	}

	return model.GameStateResponse{State: state}, nil
}

// Delete removes a game owned by ownerID.
func (s *GameService) Delete(ctx context.Context, ownerID int64, gameID string) error {
	err := s.repo.Delete(ctx, ownerID, gameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return ErrGameNotFound
	}
	return err
}
