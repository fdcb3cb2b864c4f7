package models

import "time"

// Match statuses as reported by the upstream API.
const (
	MatchStatusCompleted = "COMPLETED"
	MatchStatusScheduled = "SCHEDULED"
)

// MatchSide holds the fully denormalized identity of one side of a match.
// Every field may be absent: byes and placeholder sides are valid records.
type MatchSide struct {
	ParticipantID   *string `json:"participant_id,omitempty"`
	ParticipantName *string `json:"participant_name,omitempty"`
	DrawPosition    *int    `json:"draw_position,omitempty"`
	SeedNumber      *int    `json:"seed_number,omitempty"`
	SchoolName      *string `json:"school_name,omitempty"`
	SchoolID        *string `json:"school_id,omitempty"`
	Player1ID       *string `json:"player1_id,omitempty"`
	Player1Name     *string `json:"player1_name,omitempty"`
	Player2ID       *string `json:"player2_id,omitempty"`
	Player2Name     *string `json:"player2_name,omitempty"`
}

// TournamentMatch is one reconstructed match within a draw, keyed by the
// normalized match_up_id. Re-collection upserts the row in place.
type TournamentMatch struct {
	ID            int64  `json:"id"`
	MatchUpID     string `json:"match_up_id"`
	DrawID        string `json:"draw_id"`
	TournamentID  string `json:"tournament_id"`
	EventID       string `json:"event_id"`
	RoundName     string `json:"round_name"`
	RoundNumber   int    `json:"round_number"`
	RoundPosition int    `json:"round_position"`
	MatchType     string `json:"match_type"`
	MatchFormat   string `json:"match_format"`
	MatchStatus   string `json:"match_status"`
	Stage         string `json:"stage"`
	StructureName string `json:"structure_name"`

	Side1 MatchSide `json:"side1"`
	Side2 MatchSide `json:"side2"`

	WinningSide           *int    `json:"winning_side,omitempty"`
	WinnerParticipantID   *string `json:"winner_participant_id,omitempty"`
	WinnerParticipantName *string `json:"winner_participant_name,omitempty"`

	ScoreSide1 string `json:"score_side1"`
	ScoreSide2 string `json:"score_side2"`

	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	VenueName     *string `json:"venue_name,omitempty"`

	CreatedAtAPI *time.Time `json:"created_at_api,omitempty"`
	UpdatedAtAPI *time.Time `json:"updated_at_api,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Side returns the side struct for a declared side number, or nil for any
// number outside {1,2}.
func (m *TournamentMatch) Side(number int) *MatchSide {
	switch number {
	case 1:
		return &m.Side1
	case 2:
		return &m.Side2
	default:
		return nil
	}
}
