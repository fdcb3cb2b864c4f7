package models

import "time"

// Tournament mirrors the upstream tournament record. It is created by the
// tournament-list collector and only referenced by the draw pipeline.
type Tournament struct {
	TournamentID     string     `json:"tournament_id" db:"tournament_id"`
	Name             string     `json:"name" db:"name"`
	StartDateTime    *time.Time `json:"start_date_time,omitempty" db:"start_date_time"`
	EndDateTime      *time.Time `json:"end_date_time,omitempty" db:"end_date_time"`
	LocationName     *string    `json:"location_name,omitempty" db:"location_name"`
	OrganizationName *string    `json:"organization_name,omitempty" db:"organization_name"`
	TournamentType   *string    `json:"tournament_type,omitempty" db:"tournament_type"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// TournamentEvent is one gender×discipline competition within a tournament,
// e.g. "boys singles". Rows are the work list for collection sweeps.
type TournamentEvent struct {
	EventID      string    `json:"event_id" db:"event_id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Gender       string    `json:"gender" db:"gender"`
	EventType    string    `json:"event_type" db:"event_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
