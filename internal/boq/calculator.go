// Package boq turns fused room dimensions into material quantities and
// costs. Every computation here is pure arithmetic over the dimensions
// and the standards table, so identical input always yields an
// identical bill.
package boq

import (
	"math"
	"time"

	"github.com/BMadhushan18/boq-engine/internal/model"
	"github.com/BMadhushan18/boq-engine/internal/standards"
)

type Calculator struct {
	std *standards.Standards
}

func NewCalculator(std *standards.Standards) *Calculator {
	return &Calculator{std: std}
}

// Room computes the bill for a single room. A room with zero floor
// area yields all-zero quantities rather than an error; unmeasured
// rooms are a normal degenerate case.
func (c *Calculator) Room(room model.FusedRoom) model.RoomBOQ {
	out := model.RoomBOQ{
		RoomID:     room.ID,
		RoomName:   room.Name,
		RoomType:   room.Type,
		Dimensions: room.Dimensions,
	}

	floorArea := room.Dimensions.AreaSqm
	if floorArea <= 0 {
		return out
	}

	// Four walls, no door or window subtraction.
	wallArea := 2 * (room.Dimensions.LengthM + room.Dimensions.WidthM) * room.Dimensions.HeightM
	out.Areas = model.RoomAreas{
		WallAreaSqm:  wallArea,
		FloorAreaSqm: floorArea,
	}

	out.Paint = c.paint(wallArea)
	out.Putty = c.putty(wallArea)
	out.FloorTiles = c.tiles(c.std.Materials.FloorTile, floorArea)
	if standards.WallTilingApplies(room.Type) {
		wt := c.tiles(c.std.Materials.WallTile, wallArea)
		out.WallTiles = &wt
	}

	out.TotalCostLKR = out.Paint.CostLKR + out.Putty.CostLKR + out.FloorTiles.CostLKR
	if out.WallTiles != nil {
		out.TotalCostLKR += out.WallTiles.CostLKR
	}
	return out
}

func (c *Calculator) paint(wallArea float64) model.PaintItem {
	p := c.std.Materials.Paint
	liters := ceilToTenth(wallArea * float64(p.Coats) / p.CoverageSqmPerLiter * (1 + p.Wastage))
	return model.PaintItem{
		Liters:      liters,
		CoverageSqm: wallArea,
		Coats:       p.Coats,
		CostLKR:     liters * p.PriceLKRPerLiter,
	}
}

func (c *Calculator) putty(wallArea float64) model.PuttyItem {
	p := c.std.Materials.Putty
	kg := wallArea * float64(p.Coats) / p.CoverageSqmPerKg * (1 + p.Wastage)
	return model.PuttyItem{
		Kg:          kg,
		CoverageSqm: wallArea,
		Coats:       p.Coats,
		CostLKR:     kg * p.PriceLKRPerKg,
	}
}

// tiles prices a tiled surface by covered area, not per piece.
func (c *Calculator) tiles(t standards.TileStandard, surfaceArea float64) model.TileItem {
	count := int(math.Ceil(surfaceArea * (1 + t.Wastage) / t.TileAreaSqm))
	coveredArea := float64(count) * t.TileAreaSqm
	return model.TileItem{
		TilesCount: count,
		TileSize:   t.SizeMM,
		AreaSqm:    surfaceArea,
		AdhesiveKg: surfaceArea * t.AdhesiveKgSqm,
		GroutKg:    surfaceArea * t.GroutKgSqm,
		WastagePct: int(t.Wastage * 100),
		CostLKR:    coveredArea * t.PriceLKRPerSqm,
	}
}

// Generate computes the bill for every room in the building and the
// aggregate summary.
func (c *Calculator) Generate(building model.Building) model.BOQ {
	bills := make([]model.RoomBOQ, len(building.Rooms))
	for i, room := range building.Rooms {
		bills[i] = c.Room(room)
	}
	return Assemble(building.ID, building.Name, bills)
}

// Assemble builds the complete bill from per-room results, which may
// have been computed concurrently.
func Assemble(buildingID, buildingName string, bills []model.RoomBOQ) model.BOQ {
	out := model.BOQ{
		BuildingID:     buildingID,
		BuildingName:   buildingName,
		GeneratedAt:    time.Now().UTC(),
		RoomsBreakdown: bills,
	}
	for _, bill := range bills {
		out.Summary.TotalPaintLiters += bill.Paint.Liters
		out.Summary.TotalPuttyKg += bill.Putty.Kg
		out.Summary.TotalFloorTilesCount += bill.FloorTiles.TilesCount
		if bill.WallTiles != nil {
			out.Summary.TotalWallTilesCount += bill.WallTiles.TilesCount
		}
		out.Summary.TotalEstimatedCostLKR += bill.TotalCostLKR
		out.Summary.TotalFloorAreaSqm += bill.Areas.FloorAreaSqm
	}
	out.Summary.TotalRooms = len(bills)
	return out
}

// ceilToTenth rounds up to the next 0.1.
func ceilToTenth(v float64) float64 {
	return math.Ceil(v*10) / 10
}
