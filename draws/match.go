package draws

import (
	"errors"
	"log/slog"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

// ErrMissingMatchUpID marks a raw match-up without a usable identifier. The
// caller skips the record and keeps processing siblings.
var ErrMissingMatchUpID = errors.New("match-up has no id")

// ExtractMatch reconstructs one fully denormalized match record from a raw
// round match-up. Side fields are filled independently by declared side
// number; a side number outside {1,2} is logged and ignored. An unknown
// participant id degrades to the Unknown Player record instead of failing
// the match. Winner fields are derived strictly from winningSide once both
// sides are populated; an absent winningSide leaves them unset.
func ExtractMatch(raw tennisapi.RawMatchUp, lookup map[string]models.ResolvedParticipant, tournamentID, eventID string, logger *slog.Logger) (models.TournamentMatch, error) {
	matchUpID := normalize.ID(raw.MatchUpID)
	if matchUpID == "" {
		return models.TournamentMatch{}, ErrMissingMatchUpID
	}

	match := models.TournamentMatch{
		MatchUpID:     matchUpID,
		DrawID:        normalize.ID(raw.DrawID),
		TournamentID:  normalize.ID(tournamentID),
		EventID:       normalize.ID(eventID),
		RoundName:     raw.RoundName,
		RoundNumber:   raw.RoundNumber,
		RoundPosition: raw.RoundPosition,
		MatchType:     raw.MatchUpType,
		MatchFormat:   raw.MatchUpFormat,
		MatchStatus:   raw.MatchUpStatus,
		Stage:         raw.Stage,
		StructureName: raw.StructureName,
		WinningSide:   raw.WinningSide,
		ScoreSide1:    raw.Score.ScoreStringSide1,
		ScoreSide2:    raw.Score.ScoreStringSide2,
		ScheduledDate: optional(raw.Schedule.ScheduledDate),
		ScheduledTime: optional(raw.Schedule.ScheduledTime),
		VenueName:     optional(raw.Schedule.VenueName),
		CreatedAtAPI:  parseAPITime(raw.CreatedAt),
		UpdatedAtAPI:  parseAPITime(raw.UpdatedAt),
	}

	for _, rawSide := range raw.Sides {
		side := match.Side(rawSide.SideNumber)
		if side == nil {
			logger.Warn("ignoring side with invalid side number",
				slog.String("match_up_id", matchUpID),
				slog.Int("side_number", rawSide.SideNumber))
			continue
		}

		participantID := normalize.ID(rawSide.ParticipantID)
		if participantID == "" {
			// Bye placeholder: the side stays empty without invalidating
			// the match record.
			continue
		}

		participant, ok := lookup[participantID]
		if !ok {
			participant = UnknownParticipant(participantID)
		}

		side.ParticipantID = &participant.ID
		side.ParticipantName = &participant.Name
		side.DrawPosition = rawSide.DrawPosition
		side.SeedNumber = rawSide.SeedNumber
		side.SchoolName = participant.SchoolName
		side.SchoolID = participant.SchoolID

		if len(participant.PlayerIDs) >= 1 {
			side.Player1ID = &participant.PlayerIDs[0]
			side.Player1Name = playerName(participant.PlayerNames, 0)
		}
		if len(participant.PlayerIDs) >= 2 {
			side.Player2ID = &participant.PlayerIDs[1]
			side.Player2Name = playerName(participant.PlayerNames, 1)
		}
	}

	switch {
	case match.WinningSide != nil && *match.WinningSide == 1:
		match.WinnerParticipantID = match.Side1.ParticipantID
		match.WinnerParticipantName = match.Side1.ParticipantName
	case match.WinningSide != nil && *match.WinningSide == 2:
		match.WinnerParticipantID = match.Side2.ParticipantID
		match.WinnerParticipantName = match.Side2.ParticipantName
	}

	return match, nil
}

func playerName(names []string, idx int) *string {
	if idx < len(names) {
		return &names[idx]
	}
	unknown := unknownPlayerName
	return &unknown
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
