package draws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

func TestExtractDraw(t *testing.T) {
	raw := tennisapi.RawDraw{
		DrawID:        "draw-1",
		DrawName:      "Men's Singles Main Draw",
		DrawType:      "SINGLE_ELIMINATION",
		DrawActive:    true,
		DrawCompleted: false,
		MatchUpFormat: "SET3-S:6/TB7",
		UpdatedAt:     "2025-09-14T10:30:00Z",
		Structures: []tennisapi.RawStructure{{
			StructureName: "MAIN",
			PositionAssignments: []tennisapi.PositionAssignment{
				{DrawPosition: 1}, {DrawPosition: 2}, {DrawPosition: 3}, {DrawPosition: 4},
			},
		}},
	}

	draw := ExtractDraw(raw, "t-1", "e-1")

	assert.Equal(t, "DRAW-1", draw.DrawID)
	assert.Equal(t, "T-1", draw.TournamentID)
	assert.Equal(t, "E-1", draw.EventID)
	assert.Equal(t, 4, draw.DrawSize)
	assert.Equal(t, models.EventTypeSingles, draw.EventType)
	assert.Equal(t, models.GenderMale, draw.Gender)
	require.NotNil(t, draw.UpdatedAtAPI)
	assert.Equal(t, 2025, draw.UpdatedAtAPI.Year())
}

func TestExtractDrawNoStructures(t *testing.T) {
	draw := ExtractDraw(tennisapi.RawDraw{DrawID: "d"}, "t", "e")
	assert.Equal(t, 0, draw.DrawSize)
	assert.Nil(t, draw.UpdatedAtAPI)
}

func TestDrawSizeUsesFirstStructureOnly(t *testing.T) {
	raw := tennisapi.RawDraw{Structures: []tennisapi.RawStructure{
		{PositionAssignments: make([]tennisapi.PositionAssignment, 8)},
		{PositionAssignments: make([]tennisapi.PositionAssignment, 4)},
	}}
	assert.Equal(t, 8, drawSize(raw))
}

func TestInferEventType(t *testing.T) {
	assert.Equal(t, models.EventTypeDoubles, InferEventType("Women's Doubles"))
	assert.Equal(t, models.EventTypeDoubles, InferEventType("MIXED DOUBLES"))
	assert.Equal(t, models.EventTypeSingles, InferEventType("Men's Singles"))
	assert.Equal(t, models.EventTypeSingles, InferEventType("Flight A"))
}

func TestInferGender(t *testing.T) {
	tests := []struct {
		name string
		want models.Gender
	}{
		{"Mixed Doubles", models.GenderMixed},
		{"Women's Singles", models.GenderFemale},
		{"Female Open", models.GenderFemale},
		{"Men's Singles", models.GenderMale},
		{"Male Qualifier", models.GenderMale},
		{"Flight A Singles", models.GenderUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferGender(tt.name), tt.name)
	}
}

func TestParseAPITime(t *testing.T) {
	require.NotNil(t, parseAPITime("2025-09-14T10:30:00Z"))
	require.NotNil(t, parseAPITime("2025-09-14T10:30:00"))
	assert.Nil(t, parseAPITime(""))
	assert.Nil(t, parseAPITime("yesterday"))
}
