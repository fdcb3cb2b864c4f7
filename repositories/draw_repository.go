package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

var ErrDrawNotFound = errors.New("draw not found")

type DrawRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, draw *models.Draw) error
	GetByID(ctx context.Context, drawID string) (*models.Draw, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Draw, error)
	CountByTournament(ctx context.Context, tournamentID string) (int, error)
}

type postgresDrawRepository struct {
	db *sql.DB
}

func NewPostgresDrawRepository(db *sql.DB) DrawRepository {
	return &postgresDrawRepository{db: db}
}

func (r *postgresDrawRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const drawColumns = `
	draw_id, tournament_id, event_id, draw_name, draw_type, draw_size,
	draw_active, draw_completed, event_type, gender, match_up_format,
	updated_at_api, created_at, updated_at`

func scanDraw(row interface{ Scan(...interface{}) error }, d *models.Draw) error {
	return row.Scan(
		&d.DrawID, &d.TournamentID, &d.EventID, &d.DrawName, &d.DrawType, &d.DrawSize,
		&d.DrawActive, &d.DrawCompleted, &d.EventType, &d.Gender, &d.MatchUpFormat,
		&d.UpdatedAtAPI, &d.CreatedAt, &d.UpdatedAt,
	)
}

// Upsert writes the draw keyed by its upstream draw_id, so repeated
// collection runs refresh rather than duplicate.
func (r *postgresDrawRepository) Upsert(ctx context.Context, exec SQLExecutor, d *models.Draw) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournament_draws (
			draw_id, tournament_id, event_id, draw_name, draw_type, draw_size,
			draw_active, draw_completed, event_type, gender, match_up_format, updated_at_api
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (draw_id) DO UPDATE SET
			tournament_id = EXCLUDED.tournament_id,
			event_id = EXCLUDED.event_id,
			draw_name = EXCLUDED.draw_name,
			draw_type = EXCLUDED.draw_type,
			draw_size = EXCLUDED.draw_size,
			draw_active = EXCLUDED.draw_active,
			draw_completed = EXCLUDED.draw_completed,
			event_type = EXCLUDED.event_type,
			gender = EXCLUDED.gender,
			match_up_format = EXCLUDED.match_up_format,
			updated_at_api = EXCLUDED.updated_at_api,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := executor.QueryRowContext(ctx, query,
		d.DrawID, d.TournamentID, d.EventID, d.DrawName, d.DrawType, d.DrawSize,
		d.DrawActive, d.DrawCompleted, d.EventType, d.Gender, d.MatchUpFormat, d.UpdatedAtAPI,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert draw %s: %w", d.DrawID, err)
	}
	return nil
}

func (r *postgresDrawRepository) GetByID(ctx context.Context, drawID string) (*models.Draw, error) {
	executor := r.getExecutor(nil)
	query := `SELECT` + drawColumns + ` FROM tournament_draws WHERE draw_id = $1`

	d := &models.Draw{}
	err := scanDraw(executor.QueryRowContext(ctx, query, drawID), d)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDrawNotFound
		}
		return nil, fmt.Errorf("failed to get draw %s: %w", drawID, err)
	}
	return d, nil
}

func (r *postgresDrawRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Draw, error) {
	executor := r.getExecutor(nil)
	query := `SELECT` + drawColumns + `
		FROM tournament_draws
		WHERE tournament_id = $1
		ORDER BY event_id, draw_name, draw_id`

	rows, err := executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draws for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	draws := []models.Draw{}
	for rows.Next() {
		var d models.Draw
		if err := scanDraw(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan draw row: %w", err)
		}
		draws = append(draws, d)
	}
	return draws, rows.Err()
}

func (r *postgresDrawRepository) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	executor := r.getExecutor(nil)
	var count int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tournament_draws WHERE tournament_id = $1`, tournamentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count draws for tournament %s: %w", tournamentID, err)
	}
	return count, nil
}
