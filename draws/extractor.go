package draws

import (
	"strings"
	"time"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

// ExtractDraw normalizes one raw draw payload into a Draw record.
//
// drawSize is the position count of the first structure only; draws that
// combine main and qualifying structures under one draw id are undercounted.
// Event type and gender come from substring checks on the display name
// because the upstream supplies no structured field for either, so both are
// best-effort classifications.
func ExtractDraw(raw tennisapi.RawDraw, tournamentID, eventID string) models.Draw {
	return models.Draw{
		DrawID:        normalize.ID(raw.DrawID),
		TournamentID:  normalize.ID(tournamentID),
		EventID:       normalize.ID(eventID),
		DrawName:      raw.DrawName,
		DrawType:      raw.DrawType,
		DrawSize:      drawSize(raw),
		DrawActive:    raw.DrawActive,
		DrawCompleted: raw.DrawCompleted,
		EventType:     InferEventType(raw.DrawName),
		Gender:        InferGender(raw.DrawName),
		MatchUpFormat: raw.MatchUpFormat,
		UpdatedAtAPI:  parseAPITime(raw.UpdatedAt),
	}
}

func drawSize(raw tennisapi.RawDraw) int {
	if len(raw.Structures) == 0 {
		return 0
	}
	return len(raw.Structures[0].PositionAssignments)
}

// InferEventType classifies a draw from its display name.
func InferEventType(drawName string) models.EventType {
	if strings.Contains(strings.ToLower(drawName), "doubles") {
		return models.EventTypeDoubles
	}
	return models.EventTypeSingles
}

// InferGender classifies a draw's gender from its display name. Draws whose
// name carries no gender marker come back UNKNOWN rather than guessed.
func InferGender(drawName string) models.Gender {
	name := strings.ToLower(drawName)
	switch {
	case strings.Contains(name, "mixed"):
		return models.GenderMixed
	case strings.Contains(name, "women") || strings.Contains(name, "female"):
		return models.GenderFemale
	case strings.Contains(name, "men") || strings.Contains(name, "male"):
		return models.GenderMale
	default:
		return models.GenderUnknown
	}
}

// parseAPITime decodes upstream timestamps, which arrive as RFC3339 with or
// without an offset. Unparseable values degrade to nil.
func parseAPITime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
