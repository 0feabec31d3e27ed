// Package standards is the read-only repository of regional construction
// standards: minimum room dimensions for validation and material constants
// (coverage rates, wastage, unit prices) for BOQ calculation. Loaded once at
// startup and safe for concurrent reads afterward.
package standards

import "github.com/BMadhushan18/boq-engine/internal/model"

// RoomStandard holds the building-code minimums for one room type.
type RoomStandard struct {
	MinAreaSqm float64 `yaml:"min_area_sqm"`
	MinLengthM float64 `yaml:"min_length_m"`
	MinWidthM  float64 `yaml:"min_width_m"`
}

// PaintStandard holds emulsion paint constants.
type PaintStandard struct {
	CoverageSqmPerLiter float64 `yaml:"coverage_sqm_per_liter"`
	Coats               int     `yaml:"coats"`
	Wastage             float64 `yaml:"wastage"`
	PriceLKRPerLiter    float64 `yaml:"price_lkr_per_liter"`
}

// PuttyStandard holds wall putty constants.
type PuttyStandard struct {
	CoverageSqmPerKg float64 `yaml:"coverage_sqm_per_kg"`
	Coats            int     `yaml:"coats"`
	Wastage          float64 `yaml:"wastage"`
	PriceLKRPerKg    float64 `yaml:"price_lkr_per_kg"`
}

// TileStandard holds tile constants for one application (floor or wall).
// Tiles are priced by covered area, not per piece.
type TileStandard struct {
	SizeMM         string  `yaml:"size_mm"` // "600x600"
	TileAreaSqm    float64 `yaml:"tile_area_sqm"`
	Wastage        float64 `yaml:"wastage"`
	PriceLKRPerSqm float64 `yaml:"price_lkr_per_sqm"`
	AdhesiveKgSqm  float64 `yaml:"adhesive_kg_per_sqm"`
	GroutKgSqm     float64 `yaml:"grout_kg_per_sqm"`
}

// Materials groups the material constants used by the BOQ calculator.
type Materials struct {
	Paint     PaintStandard `yaml:"paint"`
	Putty     PuttyStandard `yaml:"putty"`
	FloorTile TileStandard  `yaml:"floor_tile"`
	WallTile  TileStandard  `yaml:"wall_tile"`
}

// Standards is the full standards repository.
type Standards struct {
	Rooms          map[model.RoomType]RoomStandard `yaml:"rooms"`
	Materials      Materials                       `yaml:"materials"`
	DefaultHeightM float64                         `yaml:"default_height_m"`
}

// Defaults returns the built-in standards table (UDA guideline minimums and
// current market LKR prices). Used when no database or override file is
// configured, and as the seed for `standards init`.
func Defaults() *Standards {
	return &Standards{
		Rooms: map[model.RoomType]RoomStandard{
			model.RoomBedroom:    {MinAreaSqm: 7.5, MinLengthM: 2.4, MinWidthM: 2.4},
			model.RoomLivingRoom: {MinAreaSqm: 12.0, MinLengthM: 3.0, MinWidthM: 3.0},
			model.RoomDiningRoom: {MinAreaSqm: 8.0, MinLengthM: 2.4, MinWidthM: 2.4},
			model.RoomKitchen:    {MinAreaSqm: 5.5, MinLengthM: 2.1, MinWidthM: 1.8},
			model.RoomBathroom:   {MinAreaSqm: 3.0, MinLengthM: 1.5, MinWidthM: 1.2},
			model.RoomBalcony:    {MinAreaSqm: 3.0, MinLengthM: 1.5, MinWidthM: 1.2},
			// Garage intentionally absent: no regulated minimum, always valid.
		},
		Materials: Materials{
			Paint: PaintStandard{
				CoverageSqmPerLiter: 12.0,
				Coats:               2,
				Wastage:             0.05,
				PriceLKRPerLiter:    1600,
			},
			Putty: PuttyStandard{
				CoverageSqmPerKg: 15.0,
				Coats:            2,
				Wastage:          0.08,
				PriceLKRPerKg:    800,
			},
			FloorTile: TileStandard{
				SizeMM:         "600x600",
				TileAreaSqm:    0.36,
				Wastage:        0.10,
				PriceLKRPerSqm: 1200,
				AdhesiveKgSqm:  5.0,
				GroutKgSqm:     1.5,
			},
			WallTile: TileStandard{
				SizeMM:         "300x600",
				TileAreaSqm:    0.18,
				Wastage:        0.10,
				PriceLKRPerSqm: 900,
				AdhesiveKgSqm:  4.5,
				GroutKgSqm:     1.0,
			},
		},
		DefaultHeightM: 3.0,
	}
}

// RoomStandardFor returns the minimums for a room type. The second return is
// false when no minimums are defined for the type (unknown, garage).
func (s *Standards) RoomStandardFor(t model.RoomType) (RoomStandard, bool) {
	std, ok := s.Rooms[t]
	return std, ok
}

// WallTilingApplies reports whether a room type gets full-height wall tiling.
func WallTilingApplies(t model.RoomType) bool {
	return t == model.RoomBathroom || t == model.RoomKitchen
}
