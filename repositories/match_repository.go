package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

type MatchRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, match *models.TournamentMatch) error
	ListByDraw(ctx context.Context, drawID string, stage *string) ([]models.TournamentMatch, error)
	StageCountsByDraw(ctx context.Context, drawID string) (map[string]int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, match_up_id, draw_id, tournament_id, event_id,
	round_name, round_number, round_position,
	match_type, match_format, match_status, stage, structure_name,
	side1_participant_id, side1_participant_name, side1_draw_position, side1_seed_number,
	side1_school_name, side1_school_id,
	side1_player1_id, side1_player1_name, side1_player2_id, side1_player2_name,
	side2_participant_id, side2_participant_name, side2_draw_position, side2_seed_number,
	side2_school_name, side2_school_id,
	side2_player1_id, side2_player1_name, side2_player2_id, side2_player2_name,
	winning_side, winner_participant_id, winner_participant_name,
	score_side1, score_side2,
	scheduled_date, scheduled_time, venue_name,
	created_at_api, updated_at_api, created_at, updated_at`

func scanMatch(row interface{ Scan(...interface{}) error }, m *models.TournamentMatch) error {
	return row.Scan(
		&m.ID, &m.MatchUpID, &m.DrawID, &m.TournamentID, &m.EventID,
		&m.RoundName, &m.RoundNumber, &m.RoundPosition,
		&m.MatchType, &m.MatchFormat, &m.MatchStatus, &m.Stage, &m.StructureName,
		&m.Side1.ParticipantID, &m.Side1.ParticipantName, &m.Side1.DrawPosition, &m.Side1.SeedNumber,
		&m.Side1.SchoolName, &m.Side1.SchoolID,
		&m.Side1.Player1ID, &m.Side1.Player1Name, &m.Side1.Player2ID, &m.Side1.Player2Name,
		&m.Side2.ParticipantID, &m.Side2.ParticipantName, &m.Side2.DrawPosition, &m.Side2.SeedNumber,
		&m.Side2.SchoolName, &m.Side2.SchoolID,
		&m.Side2.Player1ID, &m.Side2.Player1Name, &m.Side2.Player2ID, &m.Side2.Player2Name,
		&m.WinningSide, &m.WinnerParticipantID, &m.WinnerParticipantName,
		&m.ScoreSide1, &m.ScoreSide2,
		&m.ScheduledDate, &m.ScheduledTime, &m.VenueName,
		&m.CreatedAtAPI, &m.UpdatedAtAPI, &m.CreatedAt, &m.UpdatedAt,
	)
}

// Upsert writes the match keyed by its upstream match_up_id so repeated
// collection runs refresh results in place.
func (r *postgresMatchRepository) Upsert(ctx context.Context, exec SQLExecutor, m *models.TournamentMatch) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournament_matches (
			match_up_id, draw_id, tournament_id, event_id,
			round_name, round_number, round_position,
			match_type, match_format, match_status, stage, structure_name,
			side1_participant_id, side1_participant_name, side1_draw_position, side1_seed_number,
			side1_school_name, side1_school_id,
			side1_player1_id, side1_player1_name, side1_player2_id, side1_player2_name,
			side2_participant_id, side2_participant_name, side2_draw_position, side2_seed_number,
			side2_school_name, side2_school_id,
			side2_player1_id, side2_player1_name, side2_player2_id, side2_player2_name,
			winning_side, winner_participant_id, winner_participant_name,
			score_side1, score_side2,
			scheduled_date, scheduled_time, venue_name,
			created_at_api, updated_at_api
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27, $28, $29, $30, $31, $32,
			$33, $34, $35, $36, $37, $38, $39, $40, $41, $42
		)
		ON CONFLICT (match_up_id) DO UPDATE SET
			draw_id = EXCLUDED.draw_id,
			tournament_id = EXCLUDED.tournament_id,
			event_id = EXCLUDED.event_id,
			round_name = EXCLUDED.round_name,
			round_number = EXCLUDED.round_number,
			round_position = EXCLUDED.round_position,
			match_type = EXCLUDED.match_type,
			match_format = EXCLUDED.match_format,
			match_status = EXCLUDED.match_status,
			stage = EXCLUDED.stage,
			structure_name = EXCLUDED.structure_name,
			side1_participant_id = EXCLUDED.side1_participant_id,
			side1_participant_name = EXCLUDED.side1_participant_name,
			side1_draw_position = EXCLUDED.side1_draw_position,
			side1_seed_number = EXCLUDED.side1_seed_number,
			side1_school_name = EXCLUDED.side1_school_name,
			side1_school_id = EXCLUDED.side1_school_id,
			side1_player1_id = EXCLUDED.side1_player1_id,
			side1_player1_name = EXCLUDED.side1_player1_name,
			side1_player2_id = EXCLUDED.side1_player2_id,
			side1_player2_name = EXCLUDED.side1_player2_name,
			side2_participant_id = EXCLUDED.side2_participant_id,
			side2_participant_name = EXCLUDED.side2_participant_name,
			side2_draw_position = EXCLUDED.side2_draw_position,
			side2_seed_number = EXCLUDED.side2_seed_number,
			side2_school_name = EXCLUDED.side2_school_name,
			side2_school_id = EXCLUDED.side2_school_id,
			side2_player1_id = EXCLUDED.side2_player1_id,
			side2_player1_name = EXCLUDED.side2_player1_name,
			side2_player2_id = EXCLUDED.side2_player2_id,
			side2_player2_name = EXCLUDED.side2_player2_name,
			winning_side = EXCLUDED.winning_side,
			winner_participant_id = EXCLUDED.winner_participant_id,
			winner_participant_name = EXCLUDED.winner_participant_name,
			score_side1 = EXCLUDED.score_side1,
			score_side2 = EXCLUDED.score_side2,
			scheduled_date = EXCLUDED.scheduled_date,
			scheduled_time = EXCLUDED.scheduled_time,
			venue_name = EXCLUDED.venue_name,
			created_at_api = EXCLUDED.created_at_api,
			updated_at_api = EXCLUDED.updated_at_api,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := executor.QueryRowContext(ctx, query,
		m.MatchUpID, m.DrawID, m.TournamentID, m.EventID,
		m.RoundName, m.RoundNumber, m.RoundPosition,
		m.MatchType, m.MatchFormat, m.MatchStatus, m.Stage, m.StructureName,
		m.Side1.ParticipantID, m.Side1.ParticipantName, m.Side1.DrawPosition, m.Side1.SeedNumber,
		m.Side1.SchoolName, m.Side1.SchoolID,
		m.Side1.Player1ID, m.Side1.Player1Name, m.Side1.Player2ID, m.Side1.Player2Name,
		m.Side2.ParticipantID, m.Side2.ParticipantName, m.Side2.DrawPosition, m.Side2.SeedNumber,
		m.Side2.SchoolName, m.Side2.SchoolID,
		m.Side2.Player1ID, m.Side2.Player1Name, m.Side2.Player2ID, m.Side2.Player2Name,
		m.WinningSide, m.WinnerParticipantID, m.WinnerParticipantName,
		m.ScoreSide1, m.ScoreSide2,
		m.ScheduledDate, m.ScheduledTime, m.VenueName,
		m.CreatedAtAPI, m.UpdatedAtAPI,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert match %s: %w", m.MatchUpID, err)
	}
	return nil
}

// ListByDraw returns a draw's matches in bracket walk order. A non-nil stage
// restricts the result to that stage.
func (r *postgresMatchRepository) ListByDraw(ctx context.Context, drawID string, stage *string) ([]models.TournamentMatch, error) {
	executor := r.getExecutor(nil)
	query := `SELECT` + matchColumns + `
		FROM tournament_matches
		WHERE draw_id = $1`
	args := []interface{}{drawID}

	if stage != nil {
		query += ` AND stage = $2`
		args = append(args, *stage)
	}
	query += ` ORDER BY round_number, round_position, match_up_id`

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for draw %s: %w", drawID, err)
	}
	defer rows.Close()

	matches := []models.TournamentMatch{}
	for rows.Next() {
		var m models.TournamentMatch
		if err := scanMatch(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// StageCountsByDraw reports how many matches each stage of the draw holds.
func (r *postgresMatchRepository) StageCountsByDraw(ctx context.Context, drawID string) (map[string]int, error) {
	executor := r.getExecutor(nil)
	rows, err := executor.QueryContext(ctx,
		`SELECT stage, COUNT(*) FROM tournament_matches WHERE draw_id = $1 GROUP BY stage`, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to count stages for draw %s: %w", drawID, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count row: %w", err)
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}
