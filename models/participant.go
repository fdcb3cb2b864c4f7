package models

// ParticipantType distinguishes individual entrants from doubles pairs.
type ParticipantType string

const (
	ParticipantIndividual ParticipantType = "INDIVIDUAL"
	ParticipantPair       ParticipantType = "PAIR"
)

// ResolvedParticipant is the in-memory result of participant resolution for
// one collection run. It is never persisted as its own row; matches and
// bracket positions copy the resolved values instead.
type ResolvedParticipant struct {
	ID          string
	Name        string
	Type        ParticipantType
	PlayerIDs   []string
	PlayerNames []string
	SchoolName  *string
	SchoolID    *string
}
