package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantRooms   int
		wantName    string
		wantType    string
		wantLengthM float64
		wantWidthM  float64
	}{
		{
			name:        "feet by feet",
			text:        "The master bedroom is 12 feet by 10 feet",
			wantRooms:   1,
			wantName:    "Master Bedroom",
			wantType:    "bedroom",
			wantLengthM: 12 * 0.3048,
			wantWidthM:  10 * 0.3048,
		},
		{
			name:        "meters",
			text:        "kitchen is 3.5 meters by 2.8 meters",
			wantRooms:   1,
			wantName:    "Kitchen",
			wantType:    "kitchen",
			wantLengthM: 3.5,
			wantWidthM:  2.8,
		},
		{
			name:        "width larger than length gets swapped",
			text:        "the living room is 3 m by 5 m",
			wantRooms:   1,
			wantName:    "Living Room",
			wantType:    "living_room",
			wantLengthM: 5,
			wantWidthM:  3,
		},
		{
			name:        "centimeters",
			text:        "the toilet is 150 cm by 120 centimeters",
			wantRooms:   1,
			wantName:    "Toilet",
			wantType:    "bathroom",
			wantLengthM: 1.5,
			wantWidthM:  1.2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext := Extract(tt.text)
			require.Len(t, ext.Rooms, tt.wantRooms)

			room := ext.Rooms[0]
			assert.Equal(t, tt.wantName, room.Name)
			assert.Equal(t, tt.wantType, room.Type)
			assert.InDelta(t, tt.wantLengthM, room.LengthM, 1e-9)
			assert.InDelta(t, tt.wantWidthM, room.WidthM, 1e-9)
			assert.InDelta(t, 3.0, room.HeightM, 1e-9)
		})
	}
}

func TestExtractMultipleRooms(t *testing.T) {
	t.Parallel()

	ext := Extract("The master bedroom is 12 feet by 10 feet and the bathroom is 8 feet by 6 feet")
	require.Len(t, ext.Rooms, 2)

	// The first room's name must not absorb the rest of the sentence.
	assert.Equal(t, "Master Bedroom", ext.Rooms[0].Name)
	assert.Equal(t, "bedroom", ext.Rooms[0].Type)
	assert.InDelta(t, 12*0.3048, ext.Rooms[0].LengthM, 1e-9)

	assert.Equal(t, "Bathroom", ext.Rooms[1].Name)
	assert.Equal(t, "bathroom", ext.Rooms[1].Type)
	assert.InDelta(t, 8*0.3048, ext.Rooms[1].LengthM, 1e-9)
}

func TestExtractRoomCounts(t *testing.T) {
	t.Parallel()

	ext := Extract("The house has three bedrooms and 2 bathrooms")
	require.NotNil(t, ext.RoomCounts)
	assert.Equal(t, 3, ext.RoomCounts["bedroom"])
	assert.Equal(t, 2, ext.RoomCounts["bathroom"])
}

func TestExtractBuildingInfo(t *testing.T) {
	t.Parallel()

	ext := Extract("It is a two storey house and the ceiling height is 10 feet")
	assert.Equal(t, 2, ext.BuildingInfo.Floors)
	assert.InDelta(t, 10*0.3048, ext.BuildingInfo.CeilingHeightM, 1e-9)
}

func TestExtractNoDimensions(t *testing.T) {
	t.Parallel()

	ext := Extract("please build me a nice house")
	assert.Empty(t, ext.Rooms)
	assert.Nil(t, ext.RoomCounts)
	assert.Zero(t, ext.BuildingInfo.Floors)
}
