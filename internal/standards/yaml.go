package standards

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

// LoadYAML reads a standards override file and applies it on top of base.
// The file may specify any subset of fields; unset fields keep their base
// values. Zero-valued overrides are treated as unset.
func LoadYAML(path string, base *Standards) (*Standards, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "standards: read overrides %s", path)
	}

	var override Standards
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, eris.Wrapf(err, "standards: parse overrides %s", path)
	}

	merged := *base
	merged.Rooms = make(map[model.RoomType]RoomStandard, len(base.Rooms))
	for t, std := range base.Rooms {
		merged.Rooms[t] = std
	}
	for t, std := range override.Rooms {
		merged.Rooms[t] = std
	}

	applyPaint(&merged.Materials.Paint, override.Materials.Paint)
	applyPutty(&merged.Materials.Putty, override.Materials.Putty)
	applyTile(&merged.Materials.FloorTile, override.Materials.FloorTile)
	applyTile(&merged.Materials.WallTile, override.Materials.WallTile)
	if override.DefaultHeightM > 0 {
		merged.DefaultHeightM = override.DefaultHeightM
	}

	return &merged, nil
}

func applyPaint(dst *PaintStandard, src PaintStandard) {
	if src.CoverageSqmPerLiter > 0 {
		dst.CoverageSqmPerLiter = src.CoverageSqmPerLiter
	}
	if src.Coats > 0 {
		dst.Coats = src.Coats
	}
	if src.Wastage > 0 {
		dst.Wastage = src.Wastage
	}
	if src.PriceLKRPerLiter > 0 {
		dst.PriceLKRPerLiter = src.PriceLKRPerLiter
	}
}

func applyPutty(dst *PuttyStandard, src PuttyStandard) {
	if src.CoverageSqmPerKg > 0 {
		dst.CoverageSqmPerKg = src.CoverageSqmPerKg
	}
	if src.Coats > 0 {
		dst.Coats = src.Coats
	}
	if src.Wastage > 0 {
		dst.Wastage = src.Wastage
	}
	if src.PriceLKRPerKg > 0 {
		dst.PriceLKRPerKg = src.PriceLKRPerKg
	}
}

func applyTile(dst *TileStandard, src TileStandard) {
	if src.SizeMM != "" {
		dst.SizeMM = src.SizeMM
	}
	if src.TileAreaSqm > 0 {
		dst.TileAreaSqm = src.TileAreaSqm
	}
	if src.Wastage > 0 {
		dst.Wastage = src.Wastage
	}
	if src.PriceLKRPerSqm > 0 {
		dst.PriceLKRPerSqm = src.PriceLKRPerSqm
	}
	if src.AdhesiveKgSqm > 0 {
		dst.AdhesiveKgSqm = src.AdhesiveKgSqm
	}
	if src.GroutKgSqm > 0 {
		dst.GroutKgSqm = src.GroutKgSqm
	}
}
