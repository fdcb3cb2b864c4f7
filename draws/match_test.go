package draws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

func testLookup() map[string]models.ResolvedParticipant {
	stanford := "Stanford"
	return map[string]models.ResolvedParticipant{
		"P-1": {
			ID: "P-1", Name: "Jane Smith", Type: models.ParticipantIndividual,
			PlayerIDs: []string{"P-1"}, PlayerNames: []string{"Jane Smith"},
			SchoolName: &stanford,
		},
		"P-2": {
			ID: "P-2", Name: "Amy Jones", Type: models.ParticipantIndividual,
			PlayerIDs: []string{"P-2"}, PlayerNames: []string{"Amy Jones"},
		},
		"PAIR-1": {
			ID: "PAIR-1", Name: "Smith/Jones", Type: models.ParticipantPair,
			PlayerIDs:   []string{"P-1", "P-2"},
			PlayerNames: []string{"Jane Smith", "Amy Jones"},
			SchoolName:  &stanford,
		},
	}
}

func TestExtractMatchSinglesWithWinner(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID:     "m-1",
		DrawID:        "d-1",
		RoundName:     "Final",
		RoundNumber:   2,
		RoundPosition: 1,
		MatchUpType:   "SINGLES",
		MatchUpStatus: models.MatchStatusCompleted,
		Stage:         "MAIN",
		WinningSide:   intPtr(2),
		Sides: []tennisapi.RawSide{
			{SideNumber: 1, ParticipantID: "p-1", DrawPosition: intPtr(1), SeedNumber: intPtr(1)},
			{SideNumber: 2, ParticipantID: "p-2", DrawPosition: intPtr(3)},
		},
		Score: tennisapi.RawScore{ScoreStringSide1: "4-6 4-6", ScoreStringSide2: "6-4 6-4"},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "M-1", match.MatchUpID)
	assert.Equal(t, "D-1", match.DrawID)

	require.NotNil(t, match.Side1.ParticipantID)
	assert.Equal(t, "P-1", *match.Side1.ParticipantID)
	assert.Equal(t, "Jane Smith", *match.Side1.ParticipantName)
	assert.Equal(t, "Stanford", *match.Side1.SchoolName)
	assert.Equal(t, 1, *match.Side1.SeedNumber)
	assert.Nil(t, match.Side1.Player2ID)

	// Winner fields mirror the side named by winningSide.
	require.NotNil(t, match.WinnerParticipantID)
	assert.Equal(t, "P-2", *match.WinnerParticipantID)
	assert.Equal(t, "Amy Jones", *match.WinnerParticipantName)
	assert.Equal(t, "6-4 6-4", match.ScoreSide2)
}

func TestExtractMatchDoublesFillsBothPlayers(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID: "m-2",
		Sides: []tennisapi.RawSide{
			{SideNumber: 1, ParticipantID: "pair-1", DrawPosition: intPtr(2)},
		},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	require.NotNil(t, match.Side1.Player1ID)
	require.NotNil(t, match.Side1.Player2ID)
	assert.Equal(t, "P-1", *match.Side1.Player1ID)
	assert.Equal(t, "Jane Smith", *match.Side1.Player1Name)
	assert.Equal(t, "P-2", *match.Side1.Player2ID)
	assert.Equal(t, "Amy Jones", *match.Side1.Player2Name)
	assert.Nil(t, match.WinnerParticipantID)
}

func TestExtractMatchByeSideStaysEmpty(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID: "m-3",
		Sides: []tennisapi.RawSide{
			{SideNumber: 1, ParticipantID: "p-1", DrawPosition: intPtr(1)},
			{SideNumber: 2, ParticipantID: "", Bye: true},
		},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	assert.NotNil(t, match.Side1.ParticipantID)
	assert.Nil(t, match.Side2.ParticipantID)
	assert.Nil(t, match.Side2.ParticipantName)
}

func TestExtractMatchUnknownParticipant(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID: "m-4",
		Sides: []tennisapi.RawSide{
			{SideNumber: 1, ParticipantID: "p-404"},
		},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	require.NotNil(t, match.Side1.ParticipantName)
	assert.Equal(t, "Unknown Player", *match.Side1.ParticipantName)
	assert.Equal(t, "P-404", *match.Side1.ParticipantID)
}

func TestExtractMatchInvalidSideNumberIgnored(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID: "m-5",
		Sides: []tennisapi.RawSide{
			{SideNumber: 3, ParticipantID: "p-1"},
			{SideNumber: 1, ParticipantID: "p-2"},
		},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	require.NotNil(t, match.Side1.ParticipantID)
	assert.Equal(t, "P-2", *match.Side1.ParticipantID)
	assert.Nil(t, match.Side2.ParticipantID)
}

func TestExtractMatchMissingID(t *testing.T) {
	_, err := ExtractMatch(tennisapi.RawMatchUp{MatchUpID: "  "}, nil, "t", "e", discardLogger())
	assert.ErrorIs(t, err, ErrMissingMatchUpID)
}

func TestExtractMatchSchedule(t *testing.T) {
	raw := tennisapi.RawMatchUp{
		MatchUpID: "m-6",
		Schedule: tennisapi.RawSchedule{
			ScheduledDate: "2025-09-14",
			VenueName:     "Court 3",
		},
	}

	match, err := ExtractMatch(raw, testLookup(), "t-1", "e-1", discardLogger())
	require.NoError(t, err)

	require.NotNil(t, match.ScheduledDate)
	assert.Equal(t, "2025-09-14", *match.ScheduledDate)
	assert.Nil(t, match.ScheduledTime)
	assert.Equal(t, "Court 3", *match.VenueName)
}
