package models

import "time"

// EventType classifies a draw as singles or doubles play.
type EventType string

const (
	EventTypeSingles EventType = "SINGLES"
	EventTypeDoubles EventType = "DOUBLES"
)

// Gender is the competition gender inferred from the draw name. The upstream
// payload has no structured field for it, so this is best-effort.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderMixed   Gender = "MIXED"
	GenderUnknown Gender = "UNKNOWN"
)

// Draw is one bracket within a tournament event, keyed by the normalized
// draw_id. Re-collection updates the row in place.
type Draw struct {
	DrawID        string     `json:"draw_id" db:"draw_id"`
	TournamentID  string     `json:"tournament_id" db:"tournament_id"`
	EventID       string     `json:"event_id" db:"event_id"`
	DrawName      string     `json:"draw_name" db:"draw_name"`
	DrawType      string     `json:"draw_type" db:"draw_type"`
	DrawSize      int        `json:"draw_size" db:"draw_size"`
	DrawActive    bool       `json:"draw_active" db:"draw_active"`
	DrawCompleted bool       `json:"draw_completed" db:"draw_completed"`
	EventType     EventType  `json:"event_type" db:"event_type"`
	Gender        Gender     `json:"gender" db:"gender"`
	MatchUpFormat string     `json:"match_up_format" db:"match_up_format"`
	UpdatedAtAPI  *time.Time `json:"updated_at_api,omitempty" db:"updated_at_api"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
