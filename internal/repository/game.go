package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/narathia/narathia-go/internal/model"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrDuplicateName = errors.New("game name already in use")
	ErrOwnerNotFound = errors.New("owner not found")
)

// GameRepository handles saved-game persistence operations. Every query is
// filtered by owner id in the same statement that touches the row, so a
// record belonging to another user is indistinguishable from one that does
// not exist.
type GameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create inserts a new game record for the owner, assigning a fresh id and
// setting the generated timestamp on the struct.
func (r *GameRepository) Create(ctx context.Context, game *model.Game) error {
	game.ID = uuid.NewString()

	query := `INSERT INTO games (id, owner_id, name, state, last_modified)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING last_modified`

	err := r.db.QueryRowContext(ctx, query, game.ID, game.OwnerID, game.Name, []byte(game.State)).
		Scan(&game.LastModified)
	if err != nil {
		switch {
		case isPgError(err, pgUniqueViolation):
			return ErrDuplicateName
		case isPgError(err, pgForeignKeyViolation):
			return ErrOwnerNotFound
		}
		return err
	}

	return nil
}

// UpdateState replaces a game's state and bumps last_modified, iff the
// record exists and belongs to ownerID.
func (r *GameRepository) UpdateState(ctx context.Context, ownerID int64, gameID string, state []byte) error {
	query := `UPDATE games SET state = $1, last_modified = NOW()
		WHERE id = $2 AND owner_id = $3`

	result, err := r.db.ExecContext(ctx, query, state, gameID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}

// ListByOwner retrieves all games owned by ownerID, most recently modified
// first. The state payload is withheld to keep listings cheap.
func (r *GameRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.GameSummary, error) {
	query := `SELECT id, name, last_modified FROM games
		WHERE owner_id = $1 ORDER BY last_modified DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []model.GameSummary
	for rows.Next() {
		var g model.GameSummary
		if err := rows.Scan(&g.ID, &g.Name, &g.LastModified); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// GetState retrieves the state payload of a game iff it is owned by ownerID.
func (r *GameRepository) GetState(ctx context.Context, ownerID int64, gameID string) ([]byte, error) {
	query := `SELECT state FROM games WHERE id = $1 AND owner_id = $2`

	var state []byte
	err := r.db.QueryRowContext(ctx, query, gameID, ownerID).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return state, nil
}

// Delete removes a game iff it is owned by ownerID. Deleting a game that is
// already gone reports ErrGameNotFound, the same as one that never existed.
func (r *GameRepository) Delete(ctx context.Context, ownerID int64, gameID string) error {
	query := `DELETE FROM games WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, gameID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}
