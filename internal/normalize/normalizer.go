// Package normalize converts heterogeneous source payloads into the
// canonical Measurement records consumed by the fusion engine.
//
// Each source keeps its dimension labels as given. Unit conversion and
// defaulting happen here so downstream code only ever sees meters.
package normalize

import (
	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

// DefaultHeightMM is assumed when a floor-plan room carries no height.
const DefaultHeightMM = 3000.0

// FloorPlan converts floor-plan room records into measurements. Room
// dimensions arrive in millimeters, or in pixel units when a scale
// ratio is set. Rooms missing both length and width are dropped.
func FloorPlan(input model.FloorPlanInput, defaultHeightMM float64) []model.Measurement {
	if defaultHeightMM <= 0 {
		defaultHeightMM = DefaultHeightMM
	}
	scale := input.ScaleRatio
	if scale <= 0 {
		scale = 1.0
	}

	var out []model.Measurement
	for _, room := range input.Rooms {
		lengthM := room.LengthMM * scale / 1000
		widthM := room.WidthMM * scale / 1000
		if lengthM <= 0 && widthM <= 0 {
			zap.L().Warn("normalize: floor-plan room has no usable dimensions",
				zap.String("room", room.Name))
			continue
		}

		heightM := room.HeightMM * scale / 1000
		if heightM <= 0 {
			heightM = defaultHeightMM / 1000
		}

		out = appendMeasurement(out, room.Name, model.DimLength, lengthM, model.SourceFloorPlan, 0)
		out = appendMeasurement(out, room.Name, model.DimWidth, widthM, model.SourceFloorPlan, 0)
		out = appendMeasurement(out, room.Name, model.DimHeight, heightM, model.SourceFloorPlan, 0)
		if lengthM > 0 && widthM > 0 {
			out = appendMeasurement(out, room.Name, model.DimArea, lengthM*widthM, model.SourceFloorPlan, 0)
		}
	}
	return out
}

// ARPlanes converts detected AR surfaces into measurements. Floor and
// ceiling planes contribute LENGTH and WIDTH (floors additionally an
// observed AREA); wall planes contribute HEIGHT from their vertical
// extent. A per-plane confidence below the fixed source weight
// overrides it; higher values are capped at the source weight.
func ARPlanes(planes []model.ARPlaneInput) []model.Measurement {
	var out []model.Measurement
	for _, plane := range planes {
		conf := model.SourceWeight(model.SourceAR)
		if plane.Confidence > 0 && plane.Confidence < conf {
			conf = plane.Confidence
		}

		switch plane.Type {
		case model.PlaneFloor, model.PlaneCeiling:
			if plane.Length <= 0 && plane.Width <= 0 {
				zap.L().Warn("normalize: ar plane has no usable dimensions",
					zap.String("room", plane.Room),
					zap.String("plane_type", string(plane.Type)))
				continue
			}
			out = appendMeasurement(out, plane.Room, model.DimLength, plane.Length, model.SourceAR, conf)
			out = appendMeasurement(out, plane.Room, model.DimWidth, plane.Width, model.SourceAR, conf)
			if plane.Type == model.PlaneFloor && plane.Length > 0 && plane.Width > 0 {
				out = appendMeasurement(out, plane.Room, model.DimArea, plane.Length*plane.Width, model.SourceAR, conf)
			}
		case model.PlaneWall:
			// For a vertical plane the reported width is the
			// floor-to-ceiling extent.
			out = appendMeasurement(out, plane.Room, model.DimHeight, plane.Width, model.SourceAR, conf)
		default:
			zap.L().Warn("normalize: unknown ar plane type",
				zap.String("room", plane.Room),
				zap.String("plane_type", string(plane.Type)))
		}
	}
	return out
}

// Voice converts dimensions extracted from a transcript. Values are
// already in meters.
func Voice(rooms []model.RoomDimension) []model.Measurement {
	return fromRoomDimensions(rooms, model.SourceVoice)
}

// Photo converts photogrammetry room estimates. Values are already in
// meters.
func Photo(input model.PhotoInput) []model.Measurement {
	return fromRoomDimensions(input.Rooms, model.SourcePhoto)
}

func fromRoomDimensions(rooms []model.RoomDimension, source model.Source) []model.Measurement {
	var out []model.Measurement
	for _, room := range rooms {
		if room.LengthM <= 0 && room.WidthM <= 0 {
			zap.L().Warn("normalize: room dimension record has no usable dimensions",
				zap.String("room", room.Name),
				zap.String("source", string(source)))
			continue
		}
		out = appendMeasurement(out, room.Name, model.DimLength, room.LengthM, source, 0)
		out = appendMeasurement(out, room.Name, model.DimWidth, room.WidthM, source, 0)
		out = appendMeasurement(out, room.Name, model.DimHeight, room.HeightM, source, 0)
	}
	return out
}

// appendMeasurement adds one record, skipping non-positive values. A
// zero confidence means "use the fixed source weight".
func appendMeasurement(ms []model.Measurement, roomName string, dim model.Dimension, value float64, source model.Source, confidence float64) []model.Measurement {
	if value <= 0 {
		return ms
	}
	if confidence <= 0 {
		confidence = model.SourceWeight(source)
	}
	return append(ms, model.Measurement{
		RoomKey:    model.RoomKeyFor(roomName),
		RoomName:   roomName,
		Dimension:  dim,
		Value:      value,
		Source:     source,
		Confidence: confidence,
	})
}
