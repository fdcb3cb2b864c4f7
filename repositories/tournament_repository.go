package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	GetByID(ctx context.Context, tournamentID string) (*models.Tournament, error)
	List(ctx context.Context, limit, offset int) ([]models.Tournament, int, error)
	Upsert(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const tournamentColumns = `
	tournament_id, name, start_date_time, end_date_time,
	location_name, organization_name, tournament_type, created_at, updated_at`

func scanTournament(row interface{ Scan(...interface{}) error }, t *models.Tournament) error {
	return row.Scan(
		&t.TournamentID, &t.Name, &t.StartDateTime, &t.EndDateTime,
		&t.LocationName, &t.OrganizationName, &t.TournamentType, &t.CreatedAt, &t.UpdatedAt,
	)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	executor := r.getExecutor(nil)
	query := `SELECT` + tournamentColumns + ` FROM tournaments WHERE tournament_id = $1`

	t := &models.Tournament{}
	err := scanTournament(executor.QueryRowContext(ctx, query, tournamentID), t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", tournamentID, err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, limit, offset int) ([]models.Tournament, int, error) {
	executor := r.getExecutor(nil)

	var total int
	if err := executor.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournaments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tournaments: %w", err)
	}

	query := `SELECT` + tournamentColumns + `
		FROM tournaments
		ORDER BY start_date_time DESC NULLS LAST, tournament_id
		LIMIT $1 OFFSET $2`

	rows, err := executor.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0, limit)
	for rows.Next() {
		var t models.Tournament
		if err := scanTournament(rows, &t); err != nil {
			return nil, 0, fmt.Errorf("failed to scan tournament row: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *postgresTournamentRepository) Upsert(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournaments (
			tournament_id, name, start_date_time, end_date_time,
			location_name, organization_name, tournament_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tournament_id) DO UPDATE SET
			name = EXCLUDED.name,
			start_date_time = EXCLUDED.start_date_time,
			end_date_time = EXCLUDED.end_date_time,
			location_name = EXCLUDED.location_name,
			organization_name = EXCLUDED.organization_name,
			tournament_type = EXCLUDED.tournament_type,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := executor.QueryRowContext(ctx, query,
		t.TournamentID, t.Name, t.StartDateTime, t.EndDateTime,
		t.LocationName, t.OrganizationName, t.TournamentType,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert tournament %s: %w", t.TournamentID, err)
	}
	return nil
}
