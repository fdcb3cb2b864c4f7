package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

type BracketRepository interface {
	ReplaceForDraw(ctx context.Context, exec SQLExecutor, drawID string, positions []models.BracketPosition) error
	ListByDraw(ctx context.Context, drawID string) ([]models.BracketPosition, error)
}

type postgresBracketRepository struct {
	db *sql.DB
}

func NewPostgresBracketRepository(db *sql.DB) BracketRepository {
	return &postgresBracketRepository{db: db}
}

func (r *postgresBracketRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// ReplaceForDraw swaps out the draw's bracket wholesale: delete, then insert
// the freshly assembled positions. Runs inside the caller's transaction so a
// failed collection never leaves the draw half-replaced.
func (r *postgresBracketRepository) ReplaceForDraw(ctx context.Context, exec SQLExecutor, drawID string, positions []models.BracketPosition) error {
	executor := r.getExecutor(exec)

	if _, err := executor.ExecContext(ctx,
		`DELETE FROM tournament_bracket_positions WHERE draw_id = $1`, drawID); err != nil {
		return fmt.Errorf("failed to clear bracket for draw %s: %w", drawID, err)
	}

	query := `
		INSERT INTO tournament_bracket_positions (
			draw_id, draw_position, round_number,
			participant_id, participant_name, participant_type,
			team_name, seed_number, is_bye, is_winner
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for i := range positions {
		p := &positions[i]
		if _, err := executor.ExecContext(ctx, query,
			drawID, p.DrawPosition, p.RoundNumber,
			p.ParticipantID, p.ParticipantName, p.ParticipantType,
			p.TeamName, p.SeedNumber, p.IsBye, p.IsWinner,
		); err != nil {
			return fmt.Errorf("failed to insert bracket position %d for draw %s: %w", p.DrawPosition, drawID, err)
		}
	}
	return nil
}

func (r *postgresBracketRepository) ListByDraw(ctx context.Context, drawID string) ([]models.BracketPosition, error) {
	executor := r.getExecutor(nil)
	query := `
		SELECT id, draw_id, draw_position, round_number,
			participant_id, participant_name, participant_type,
			team_name, seed_number, is_bye, is_winner
		FROM tournament_bracket_positions
		WHERE draw_id = $1
		ORDER BY draw_position`

	rows, err := executor.QueryContext(ctx, query, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bracket for draw %s: %w", drawID, err)
	}
	defer rows.Close()

	positions := []models.BracketPosition{}
	for rows.Next() {
		var p models.BracketPosition
		if err := rows.Scan(
			&p.ID, &p.DrawID, &p.DrawPosition, &p.RoundNumber,
			&p.ParticipantID, &p.ParticipantName, &p.ParticipantType,
			&p.TeamName, &p.SeedNumber, &p.IsBye, &p.IsWinner,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bracket row: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
