package boq

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	building := model.Building{
		ID:   "b-1",
		Name: "Test House",
		Rooms: []model.FusedRoom{
			bedroom(),
			{
				ID:   "bathroom",
				Name: "Bathroom",
				Type: model.RoomBathroom,
				Dimensions: model.RoomDimensions{
					LengthM: 2.0, WidthM: 1.5, HeightM: 3.0, AreaSqm: 3.0,
				},
			},
		},
	}
	bill := newTestCalculator().Generate(building)
	bill.GeneratedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "boq.xlsx")
	require.NoError(t, WriteXLSX(bill, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)
	assert.Equal(t, "Summary", f.Sheets[0].Name)
	assert.Equal(t, "Rooms", f.Sheets[1].Name)

	// Header plus one row per room.
	rooms := f.Sheets[1]
	require.Len(t, rooms.Rows, 3)
	assert.Equal(t, "Master Bedroom", rooms.Rows[1].Cells[0].String())
	assert.Equal(t, "Bathroom", rooms.Rows[2].Cells[0].String())
	assert.Equal(t, "-", rooms.Rows[1].Cells[10].String(), "no wall tiles for a bedroom")
	assert.NotEqual(t, "-", rooms.Rows[2].Cells[10].String())
}
