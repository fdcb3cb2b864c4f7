package tennisapi

// Typed schema for the tournamentPublicEventData payload. The payload is
// decoded once here at the boundary; downstream components never traverse
// raw maps. Fields the collector does not consume are omitted on purpose.

// EventPayload is the inner document of one (tournament, event) response.
// Participants live at the top level, draws under eventData.
type EventPayload struct {
	Participants []RawParticipant `json:"participants"`
	EventData    EventData        `json:"eventData"`
}

type EventData struct {
	DrawsData []RawDraw `json:"drawsData"`
}

// RawParticipant is one entrant record: an individual player or a doubles
// pair referencing its members through individualParticipantIds.
type RawParticipant struct {
	ParticipantID            string   `json:"participantId"`
	ParticipantName          string   `json:"participantName"`
	ParticipantType          string   `json:"participantType"`
	IndividualParticipantIDs []string `json:"individualParticipantIds"`
	Teams                    []RawTeam `json:"teams"`
}

// RawTeam carries the school affiliation of a participant. The display name
// lives in participantOtherName with participantName as fallback, and the id
// in teamId with participantId as fallback.
type RawTeam struct {
	ParticipantOtherName string `json:"participantOtherName"`
	ParticipantName      string `json:"participantName"`
	TeamID               string `json:"teamId"`
	ParticipantID        string `json:"participantId"`
}

type RawDraw struct {
	DrawID        string         `json:"drawId"`
	DrawName      string         `json:"drawName"`
	DrawType      string         `json:"drawType"`
	DrawActive    bool           `json:"drawActive"`
	DrawCompleted bool           `json:"drawCompleted"`
	MatchUpFormat string         `json:"matchUpFormat"`
	UpdatedAt     string         `json:"updatedAt"`
	Structures    []RawStructure `json:"structures"`
}

// RawStructure is a sub-section of a draw (main, consolation, qualifying)
// with its own position assignments and round-indexed match lists.
type RawStructure struct {
	StructureName       string                  `json:"structureName"`
	PositionAssignments []PositionAssignment    `json:"positionAssignments"`
	RoundMatchUps       map[string][]RawMatchUp `json:"roundMatchUps"`
}

type PositionAssignment struct {
	DrawPosition  int    `json:"drawPosition"`
	ParticipantID string `json:"participantId"`
	Bye           bool   `json:"bye"`
}

type RawMatchUp struct {
	MatchUpID     string      `json:"matchUpId"`
	DrawID        string      `json:"drawId"`
	RoundName     string      `json:"roundName"`
	RoundNumber   int         `json:"roundNumber"`
	RoundPosition int         `json:"roundPosition"`
	MatchUpType   string      `json:"matchUpType"`
	MatchUpFormat string      `json:"matchUpFormat"`
	MatchUpStatus string      `json:"matchUpStatus"`
	Stage         string      `json:"stage"`
	StructureName string      `json:"structureName"`
	WinningSide   *int        `json:"winningSide"`
	Sides         []RawSide   `json:"sides"`
	Score         RawScore    `json:"score"`
	Schedule      RawSchedule `json:"schedule"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

type RawSide struct {
	SideNumber    int    `json:"sideNumber"`
	ParticipantID string `json:"participantId"`
	DrawPosition  *int   `json:"drawPosition"`
	SeedNumber    *int   `json:"seedNumber"`
	Bye           bool   `json:"bye"`
}

type RawScore struct {
	ScoreStringSide1 string `json:"scoreStringSide1"`
	ScoreStringSide2 string `json:"scoreStringSide2"`
}

type RawSchedule struct {
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	VenueName     string `json:"venueName"`
}
