package standards

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "standards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestSeedAndLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.Seed(ctx, Defaults()))

	loaded, err := db.Load(ctx)
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, want.Rooms, loaded.Rooms)
	assert.Equal(t, want.Materials.Paint, loaded.Materials.Paint)
	assert.Equal(t, want.Materials.Putty, loaded.Materials.Putty)
	assert.Equal(t, want.Materials.FloorTile, loaded.Materials.FloorTile)
	assert.Equal(t, want.Materials.WallTile, loaded.Materials.WallTile)
}

func TestSeedReplacesExistingRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.Seed(ctx, Defaults()))

	modified := Defaults()
	modified.Rooms[model.RoomBedroom] = RoomStandard{MinAreaSqm: 9.0, MinLengthM: 3.0, MinWidthM: 2.7}
	modified.Materials.Paint.PriceLKRPerLiter = 1850
	require.NoError(t, db.Seed(ctx, modified))

	loaded, err := db.Load(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, loaded.Rooms[model.RoomBedroom].MinAreaSqm, 1e-9)
	assert.InDelta(t, 1850, loaded.Materials.Paint.PriceLKRPerLiter, 1e-9)
}

func TestLoadEmptyDatabaseFallsBackToDefaultMaterials(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	loaded, err := db.Load(ctx)
	require.NoError(t, err)

	// No rooms were seeded, but material pricing still comes from the
	// built-in table.
	assert.Empty(t, loaded.Rooms)
	assert.Equal(t, Defaults().Materials, loaded.Materials)
}
