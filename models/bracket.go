package models

// BracketPosition is one occupied slot of a draw's rendered bracket, keyed by
// (draw_id, draw_position). Positions are derived entirely from the draw's
// matches and replaced wholesale on every re-collection.
type BracketPosition struct {
	ID              int64           `json:"id"`
	DrawID          string          `json:"draw_id"`
	DrawPosition    int             `json:"draw_position"`
	RoundNumber     int             `json:"round_number"`
	ParticipantID   string          `json:"participant_id"`
	ParticipantName string          `json:"participant_name"`
	ParticipantType ParticipantType `json:"participant_type"`
	TeamName        *string         `json:"team_name,omitempty"`
	SeedNumber      *int            `json:"seed_number,omitempty"`
	IsBye           bool            `json:"is_bye"`
	IsWinner        bool            `json:"is_winner"`
}
