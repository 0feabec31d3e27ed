package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMadhushan18/boq-engine/internal/model"
	"github.com/BMadhushan18/boq-engine/internal/standards"
)

func newTestEngine() *Engine {
	return NewEngine(standards.Defaults())
}

func mkMeasurement(room string, dim model.Dimension, value float64, source model.Source) model.Measurement {
	return model.Measurement{
		RoomKey:    model.RoomKeyFor(room),
		RoomName:   room,
		Dimension:  dim,
		Value:      value,
		Source:     source,
		Confidence: model.SourceWeight(source),
	}
}

func TestFuseSingleMeasurementIsExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source model.Source
		weight float64
	}{
		{model.SourceAR, 0.90},
		{model.SourceFloorPlan, 0.70},
		{model.SourcePhoto, 0.60},
		{model.SourceVoice, 0.50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.source), func(t *testing.T) {
			t.Parallel()

			rooms, _ := newTestEngine().Fuse([]model.Measurement{
				mkMeasurement("Bedroom", model.DimLength, 4.2, tt.source),
			}, nil)
			require.Len(t, rooms, 1)
			assert.Equal(t, 4.2, rooms[0].Dimensions.LengthM)
			assert.Equal(t, tt.weight, rooms[0].Confidence)
		})
	}
}

func TestFuseRejectsOutlier(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Kitchen", model.DimLength, 3.0, model.SourceFloorPlan),
		mkMeasurement("Kitchen", model.DimLength, 3.1, model.SourceFloorPlan),
		mkMeasurement("Kitchen", model.DimLength, 3.2, model.SourceFloorPlan),
		mkMeasurement("Kitchen", model.DimLength, 50.0, model.SourceFloorPlan),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)

	// Equal weights, so the consensus of the survivors is their mean.
	assert.InDelta(t, 3.1, rooms[0].Dimensions.LengthM, 1e-9)
	assert.Equal(t, 3, rooms[0].MeasurementsFused)
}

func TestFuseNeverDiscardsEverything(t *testing.T) {
	t.Parallel()

	// Two wildly disagreeing values each look like an outlier next to
	// the other; the full set must be retained.
	ms := []model.Measurement{
		mkMeasurement("Hall", model.DimLength, 2.0, model.SourceAR),
		mkMeasurement("Hall", model.DimLength, 10.0, model.SourceVoice),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.Equal(t, 2, rooms[0].MeasurementsFused)
	assert.InDelta(t, (2.0*0.9+10.0*0.5)/1.4, rooms[0].Dimensions.LengthM, 1e-9)
}

func TestFuseIdenticalValuesNoPenalty(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Bedroom", model.DimLength, 4.0, model.SourceAR),
		mkMeasurement("Bedroom", model.DimLength, 4.0, model.SourceFloorPlan),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.InDelta(t, 4.0, rooms[0].Dimensions.LengthM, 1e-9)
	// Zero spread, so confidence is the plain average of the weights.
	assert.InDelta(t, (0.9+0.7)/2, rooms[0].Confidence, 1e-9)
}

func TestFuseConfidenceStaysInRange(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Shed", model.DimLength, 0.1, model.SourceVoice),
		mkMeasurement("Shed", model.DimLength, 0.9, model.SourceVoice),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.GreaterOrEqual(t, rooms[0].Confidence, 0.0)
	assert.LessOrEqual(t, rooms[0].Confidence, 1.0)
}

func TestFuseDerivesAreaFromLengthAndWidth(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Bedroom", model.DimLength, 4.0, model.SourceAR),
		mkMeasurement("Bedroom", model.DimWidth, 3.0, model.SourceFloorPlan),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.InDelta(t, 12.0, rooms[0].Dimensions.AreaSqm, 1e-9)
}

func TestFuseObservedAreaWinsOverDerivation(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Bedroom", model.DimLength, 4.0, model.SourceAR),
		mkMeasurement("Bedroom", model.DimWidth, 3.0, model.SourceAR),
		mkMeasurement("Bedroom", model.DimArea, 11.5, model.SourceFloorPlan),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.InDelta(t, 11.5, rooms[0].Dimensions.AreaSqm, 1e-9)
}

func TestFuseUnknownRoomTypeAlwaysValid(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Storage Nook", model.DimLength, 0.5, model.SourceVoice),
		mkMeasurement("Storage Nook", model.DimWidth, 0.5, model.SourceVoice),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.Equal(t, model.RoomUnknown, rooms[0].Type)
	assert.True(t, rooms[0].IsValid)
	assert.Empty(t, rooms[0].ValidationMessage)
}

func TestFuseValidationNamesViolations(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Bathroom", model.DimLength, 1.0, model.SourceAR),
		mkMeasurement("Bathroom", model.DimWidth, 1.0, model.SourceAR),
		mkMeasurement("Bathroom", model.DimHeight, 3.0, model.SourceAR),
	}

	rooms, _ := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)
	assert.False(t, rooms[0].IsValid)
	assert.Contains(t, rooms[0].ValidationMessage, "area")
	assert.Contains(t, rooms[0].ValidationMessage, "length")
	assert.Contains(t, rooms[0].ValidationMessage, "width")
}

func TestFuseTypeHintOverridesNameInference(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Room 3", model.DimLength, 4.0, model.SourceAR),
		mkMeasurement("Room 3", model.DimWidth, 3.5, model.SourceAR),
	}
	hints := map[string]model.RoomType{"room 3": model.RoomKitchen}

	rooms, _ := newTestEngine().Fuse(ms, hints)
	require.Len(t, rooms, 1)
	assert.Equal(t, model.RoomKitchen, rooms[0].Type)
}

func TestFuseMasterBedroomConsensus(t *testing.T) {
	t.Parallel()

	ms := []model.Measurement{
		mkMeasurement("Master Bedroom", model.DimLength, 3.5, model.SourceAR),
		mkMeasurement("Master Bedroom", model.DimLength, 3.4, model.SourceFloorPlan),
		mkMeasurement("Master Bedroom", model.DimWidth, 4.2, model.SourceAR),
		mkMeasurement("Master Bedroom", model.DimWidth, 4.3, model.SourceFloorPlan),
	}

	rooms, meta := newTestEngine().Fuse(ms, nil)
	require.Len(t, rooms, 1)

	room := rooms[0]
	assert.InDelta(t, (3.5*0.9+3.4*0.7)/(0.9+0.7), room.Dimensions.LengthM, 1e-9)
	assert.Equal(t, model.RoomBedroom, room.Type)
	assert.True(t, room.IsValid)
	assert.ElementsMatch(t, []model.Source{model.SourceAR, model.SourceFloorPlan}, room.SourcesUsed)
	assert.Equal(t, 1, meta.TotalRoomsDetected)
	assert.InDelta(t, room.Confidence, meta.OverallConfidence, 1e-9)
}

func TestFuseEmptyInput(t *testing.T) {
	t.Parallel()

	rooms, meta := newTestEngine().Fuse(nil, nil)
	assert.Empty(t, rooms)
	assert.Zero(t, meta.TotalRoomsDetected)
	assert.Zero(t, meta.OverallConfidence)
}

func TestRejectOutliersLeaveOneOut(t *testing.T) {
	t.Parallel()

	group := []model.Measurement{
		mkMeasurement("x", model.DimLength, 3.0, model.SourceFloorPlan),
		mkMeasurement("x", model.DimLength, 3.1, model.SourceFloorPlan),
		mkMeasurement("x", model.DimLength, 3.2, model.SourceFloorPlan),
		mkMeasurement("x", model.DimLength, 50.0, model.SourceFloorPlan),
	}

	survivors := rejectOutliers(group)
	require.Len(t, survivors, 3)
	for _, m := range survivors {
		assert.Less(t, m.Value, 4.0)
	}
}
