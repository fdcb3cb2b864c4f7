// Package draws is the tournament draw reconstruction engine: it resolves
// participant identities, extracts draws and matches from the raw event
// payload, and assembles position-indexed brackets for rendering.
package draws

import (
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

const unknownPlayerName = "Unknown Player"

// placeholderName synthesizes a display name from an id fragment for pair
// members that cannot be resolved against the participant batch.
func placeholderName(id string) string {
	fragment := id
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return "Player_" + fragment
}

// UnknownParticipant is the degraded record used when a match side references
// a participant id missing from the lookup. Reconstruction of the match
// continues instead of aborting.
func UnknownParticipant(id string) models.ResolvedParticipant {
	return models.ResolvedParticipant{
		ID:          id,
		Name:        unknownPlayerName,
		Type:        models.ParticipantIndividual,
		PlayerIDs:   []string{id},
		PlayerNames: []string{unknownPlayerName},
	}
}

// BuildParticipantLookup resolves the raw participant list into a lookup
// table keyed by normalized participant id.
//
// Resolution is two-pass: individuals first, then pairs. A pair member is
// resolved against the same raw batch, falling back to the individual table
// from the first pass; a member that resolves through neither path keeps a
// synthesized placeholder name so the pair record survives. A pair inherits
// the school of its first resolvable member when it carries no affiliation of
// its own.
func BuildParticipantLookup(participants []tennisapi.RawParticipant) map[string]models.ResolvedParticipant {
	lookup := make(map[string]models.ResolvedParticipant, len(participants))

	// Index the raw batch by normalized id so pair members can be resolved
	// even when their individual entry appears later in the list.
	batch := make(map[string]tennisapi.RawParticipant, len(participants))
	for _, p := range participants {
		if id := normalize.ID(p.ParticipantID); id != "" {
			batch[id] = p
		}
	}

	for _, p := range participants {
		id := normalize.ID(p.ParticipantID)
		if id == "" || p.ParticipantType == string(models.ParticipantPair) {
			continue
		}
		name := p.ParticipantName
		if name == "" {
			name = unknownPlayerName
		}
		schoolName, schoolID := schoolFromTeams(p.Teams)
		lookup[id] = models.ResolvedParticipant{
			ID:          id,
			Name:        name,
			Type:        models.ParticipantIndividual,
			PlayerIDs:   []string{id},
			PlayerNames: []string{name},
			SchoolName:  schoolName,
			SchoolID:    schoolID,
		}
	}

	for _, p := range participants {
		id := normalize.ID(p.ParticipantID)
		if id == "" || p.ParticipantType != string(models.ParticipantPair) {
			continue
		}

		memberIDs := normalize.IDs(p.IndividualParticipantIDs)
		memberNames := make([]string, 0, len(memberIDs))
		pairSchoolName, pairSchoolID := schoolFromTeams(p.Teams)

		for _, memberID := range memberIDs {
			var memberName string
			var memberSchoolName, memberSchoolID *string

			if raw, ok := batch[memberID]; ok && raw.ParticipantName != "" {
				memberName = raw.ParticipantName
				memberSchoolName, memberSchoolID = schoolFromTeams(raw.Teams)
			} else if resolved, ok := lookup[memberID]; ok {
				memberName = resolved.Name
				memberSchoolName = resolved.SchoolName
				memberSchoolID = resolved.SchoolID
			} else {
				memberName = placeholderName(memberID)
			}

			memberNames = append(memberNames, memberName)

			if pairSchoolName == nil && memberSchoolName != nil {
				pairSchoolName = memberSchoolName
				pairSchoolID = memberSchoolID
			}
		}

		lookup[id] = models.ResolvedParticipant{
			ID:          id,
			Name:        p.ParticipantName,
			Type:        models.ParticipantPair,
			PlayerIDs:   memberIDs,
			PlayerNames: memberNames,
			SchoolName:  pairSchoolName,
			SchoolID:    pairSchoolID,
		}
	}

	return lookup
}

// schoolFromTeams extracts the school affiliation from the first team entry.
func schoolFromTeams(teams []tennisapi.RawTeam) (name, id *string) {
	if len(teams) == 0 {
		return nil, nil
	}
	team := teams[0]

	schoolName := team.ParticipantOtherName
	if schoolName == "" {
		schoolName = team.ParticipantName
	}
	if schoolName != "" {
		name = &schoolName
	}

	schoolID := team.TeamID
	if schoolID == "" {
		schoolID = team.ParticipantID
	}
	if normalized := normalize.ID(schoolID); normalized != "" {
		id = &normalized
	}
	return name, id
}
