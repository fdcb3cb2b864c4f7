package draws

import (
	"math"
	"sort"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

// RoundsCount returns the number of rounds a single-elimination draw of the
// given size needs. Sizes of one or less yield a single round instead of a
// math-domain error.
func RoundsCount(drawSize int) int {
	if drawSize <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(drawSize))))
}

// AssembleBracket derives the position-indexed bracket of one draw from its
// matches. Matches are walked in (round_number, round_position) order and
// each draw position is assigned from the first side seen occupying it:
// a position's occupant is set once at bracket entry and later rounds never
// overwrite it. Output is sorted by draw position ascending.
func AssembleBracket(matches []models.TournamentMatch) []models.BracketPosition {
	ordered := make([]models.TournamentMatch, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].RoundNumber != ordered[j].RoundNumber {
			return ordered[i].RoundNumber < ordered[j].RoundNumber
		}
		return ordered[i].RoundPosition < ordered[j].RoundPosition
	})

	positions := make([]models.BracketPosition, 0, len(ordered)*2)
	seen := make(map[int]bool)

	for i := range ordered {
		match := &ordered[i]
		for _, sideNumber := range []int{1, 2} {
			side := match.Side(sideNumber)
			if side.ParticipantID == nil || side.DrawPosition == nil {
				continue
			}
			if seen[*side.DrawPosition] {
				continue
			}
			seen[*side.DrawPosition] = true

			roundNumber := match.RoundNumber
			if roundNumber < 1 {
				roundNumber = 1
			}

			positions = append(positions, models.BracketPosition{
				DrawID:          match.DrawID,
				DrawPosition:    *side.DrawPosition,
				RoundNumber:     roundNumber,
				ParticipantID:   *side.ParticipantID,
				ParticipantName: deref(side.ParticipantName),
				ParticipantType: sideParticipantType(side),
				TeamName:        side.SchoolName,
				SeedNumber:      side.SeedNumber,
				IsWinner:        match.WinningSide != nil && *match.WinningSide == sideNumber,
			})
		}
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].DrawPosition < positions[j].DrawPosition
	})
	return positions
}

// sideParticipantType recovers the participant kind from the denormalized
// side fields: only pairs carry a second player.
func sideParticipantType(side *models.MatchSide) models.ParticipantType {
	if side.Player2ID != nil {
		return models.ParticipantPair
	}
	return models.ParticipantIndividual
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
