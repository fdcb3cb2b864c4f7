package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

var ErrEventNotFound = errors.New("tournament event not found")

type EventRepository interface {
	ListAll(ctx context.Context) ([]models.TournamentEvent, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.TournamentEvent, error)
	Upsert(ctx context.Context, exec SQLExecutor, event *models.TournamentEvent) error
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const eventColumns = `event_id, tournament_id, gender, event_type, created_at, updated_at`

func (r *postgresEventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]models.TournamentEvent, error) {
	executor := r.getExecutor(nil)
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.TournamentEvent{}
	for rows.Next() {
		var e models.TournamentEvent
		if err := rows.Scan(&e.EventID, &e.TournamentID, &e.Gender, &e.EventType, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *postgresEventRepository) ListAll(ctx context.Context) ([]models.TournamentEvent, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM tournament_events ORDER BY tournament_id, event_id`)
}

func (r *postgresEventRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.TournamentEvent, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM tournament_events WHERE tournament_id = $1 ORDER BY event_id`,
		tournamentID)
}

func (r *postgresEventRepository) Upsert(ctx context.Context, exec SQLExecutor, e *models.TournamentEvent) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournament_events (event_id, tournament_id, gender, event_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO UPDATE SET
			tournament_id = EXCLUDED.tournament_id,
			gender = EXCLUDED.gender,
			event_type = EXCLUDED.event_type,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := executor.QueryRowContext(ctx, query, e.EventID, e.TournamentID, e.Gender, e.EventType).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert event %s: %w", e.EventID, err)
	}
	return nil
}
