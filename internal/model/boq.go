package model

import "time"

// PaintItem is the emulsion paint requirement for one room.
type PaintItem struct {
	Liters      float64 `json:"liters"`
	CoverageSqm float64 `json:"coverage_sqm"`
	Coats       int     `json:"coats"`
	CostLKR     float64 `json:"cost_lkr"`
}

// PuttyItem is the wall putty requirement for one room.
type PuttyItem struct {
	Kg          float64 `json:"kg"`
	CoverageSqm float64 `json:"coverage_sqm"`
	Coats       int     `json:"coats"`
	CostLKR     float64 `json:"cost_lkr"`
}

// TileItem is a tiling requirement (floor or wall) for one room.
// AdhesiveKg and GroutKg are informational quantities; their cost is not
// part of the room total.
type TileItem struct {
	TilesCount  int     `json:"tiles_count"`
	TileSize    string  `json:"tile_size"`
	AreaSqm     float64 `json:"area_sqm"`
	AdhesiveKg  float64 `json:"adhesive_kg"`
	GroutKg     float64 `json:"grout_kg"`
	WastagePct  int     `json:"wastage_percent"`
	CostLKR     float64 `json:"cost_lkr"`
}

// RoomAreas breaks down the surface areas a room's BOQ is computed from.
type RoomAreas struct {
	WallAreaSqm  float64 `json:"wall_area_sqm"`
	FloorAreaSqm float64 `json:"floor_area_sqm"`
}

// RoomBOQ is the per-room material requirement, derived deterministically
// from one FusedRoom. WallTiles is nil for room types that are not tiled.
type RoomBOQ struct {
	RoomID       string         `json:"room_id"`
	RoomName     string         `json:"room_name"`
	RoomType     RoomType       `json:"room_type"`
	Dimensions   RoomDimensions `json:"dimensions"`
	Areas        RoomAreas      `json:"areas"`
	Paint        PaintItem      `json:"paint"`
	Putty        PuttyItem      `json:"putty"`
	FloorTiles   TileItem       `json:"floor_tiles"`
	WallTiles    *TileItem      `json:"wall_tiles,omitempty"`
	TotalCostLKR float64        `json:"total_cost_lkr"`
}

// BOQSummary aggregates quantities and costs across all rooms.
type BOQSummary struct {
	TotalPaintLiters      float64 `json:"total_paint_liters"`
	TotalPuttyKg          float64 `json:"total_putty_kg"`
	TotalFloorTilesCount  int     `json:"total_floor_tiles_count"`
	TotalWallTilesCount   int     `json:"total_wall_tiles_count"`
	TotalEstimatedCostLKR float64 `json:"total_estimated_cost_lkr"`
	TotalRooms            int     `json:"total_rooms"`
	TotalFloorAreaSqm     float64 `json:"total_floor_area_sqm"`
}

// BOQ is the complete bill of quantities for a building.
type BOQ struct {
	BuildingID     string     `json:"building_id"`
	BuildingName   string     `json:"building_name"`
	GeneratedAt    time.Time  `json:"generated_at"`
	RoomsBreakdown []RoomBOQ  `json:"rooms_breakdown"`
	Summary        BOQSummary `json:"summary"`
}
