// Package fusion reconciles measurements of the same physical dimension
// reported by independent sources into a single consensus value.
//
// Fusion runs per room and per dimension: outliers are rejected by
// z-score, the survivors are combined by confidence-weighted average,
// and the spread of the surviving values discounts the resulting
// confidence.
package fusion

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/model"
	"github.com/BMadhushan18/boq-engine/internal/standards"
)

const (
	// outlierZScore is the z-score at or above which a measurement is
	// discarded from its group.
	outlierZScore = 2.0

	// spreadPenalty scales the coefficient of variation subtracted
	// from the consensus confidence.
	spreadPenalty = 0.2
)

// Engine fuses normalized measurements and validates the result against
// minimum room standards.
type Engine struct {
	standards *standards.Standards
}

func NewEngine(std *standards.Standards) *Engine {
	return &Engine{standards: std}
}

// fusedValue is the consensus for one (room, dimension) group.
type fusedValue struct {
	value      float64
	confidence float64
	sources    []model.Source
	fusedCount int
}

// Fuse groups measurements by room and dimension and produces one
// FusedRoom per room, in first-seen input order. Rooms without any
// usable measurement do not appear in the output. typeHints maps room
// keys to types asserted by a source payload; rooms without a hint get
// their type inferred from the room name.
func (e *Engine) Fuse(measurements []model.Measurement, typeHints map[string]model.RoomType) ([]model.FusedRoom, model.FusionMetadata) {
	type roomGroup struct {
		name string
		dims map[model.Dimension][]model.Measurement
	}

	var order []string
	rooms := make(map[string]*roomGroup)
	for _, m := range measurements {
		g, ok := rooms[m.RoomKey]
		if !ok {
			g = &roomGroup{name: m.RoomName, dims: make(map[model.Dimension][]model.Measurement)}
			rooms[m.RoomKey] = g
			order = append(order, m.RoomKey)
		}
		g.dims[m.Dimension] = append(g.dims[m.Dimension], m)
	}

	allSources := make(map[model.Source]struct{})
	var fused []model.FusedRoom
	var confidenceSum float64

	for _, key := range order {
		g := rooms[key]

		byDim := make(map[model.Dimension]fusedValue, len(g.dims))
		for dim, group := range g.dims {
			byDim[dim] = fuseGroup(group)
		}

		room := e.assembleRoom(key, g.name, typeHints[key], byDim)
		for _, s := range room.SourcesUsed {
			allSources[s] = struct{}{}
		}
		confidenceSum += room.Confidence
		fused = append(fused, room)

		zap.L().Debug("fusion: room fused",
			zap.String("room", room.Name),
			zap.String("type", string(room.Type)),
			zap.Float64("confidence", room.Confidence),
			zap.Bool("valid", room.IsValid),
		)
	}

	meta := model.FusionMetadata{
		SourcesUsed:        sortedSources(allSources),
		TotalRoomsDetected: len(fused),
	}
	if len(fused) > 0 {
		meta.OverallConfidence = confidenceSum / float64(len(fused))
	}
	return fused, meta
}

// assembleRoom turns per-dimension consensus values into a FusedRoom,
// deriving area from length and width when no source observed it.
func (e *Engine) assembleRoom(key, name string, hint model.RoomType, byDim map[model.Dimension]fusedValue) model.FusedRoom {
	length := byDim[model.DimLength]
	width := byDim[model.DimWidth]
	height := byDim[model.DimHeight]

	area, areaObserved := byDim[model.DimArea]
	if !areaObserved {
		area = fusedValue{
			value:      length.value * width.value,
			confidence: minNonZero(length.confidence, width.confidence),
		}
	}

	roomType := hint
	if roomType == "" || roomType == model.RoomUnknown {
		roomType = model.InferRoomType(name)
	}

	room := model.FusedRoom{
		ID:   strings.ReplaceAll(key, " ", "_"),
		Name: name,
		Type: roomType,
		Dimensions: model.RoomDimensions{
			LengthM: length.value,
			WidthM:  width.value,
			HeightM: height.value,
			AreaSqm: area.value,
		},
	}

	sources := make(map[model.Source]struct{})
	var confSum float64
	var confCount int
	for _, fv := range []fusedValue{length, width, height} {
		if fv.fusedCount == 0 {
			continue
		}
		confSum += fv.confidence
		confCount++
		room.MeasurementsFused += fv.fusedCount
		for _, s := range fv.sources {
			sources[s] = struct{}{}
		}
	}
	if areaObserved {
		room.MeasurementsFused += area.fusedCount
		for _, s := range area.sources {
			sources[s] = struct{}{}
		}
	}
	if confCount > 0 {
		room.Confidence = clamp01(confSum / float64(confCount))
	}
	room.SourcesUsed = sortedSources(sources)

	room.IsValid, room.ValidationMessage = e.validate(roomType, room.Dimensions)
	return room
}

// validate checks fused dimensions against the minimums for the room
// type. Types without a standards entry are always valid.
func (e *Engine) validate(roomType model.RoomType, dims model.RoomDimensions) (bool, string) {
	std, ok := e.standards.RoomStandardFor(roomType)
	if !ok {
		return true, ""
	}

	var violations []string
	if std.MinAreaSqm > 0 && dims.AreaSqm < std.MinAreaSqm {
		violations = append(violations, fmt.Sprintf("area %.2f sqm is %.2f below the %.2f sqm minimum",
			dims.AreaSqm, std.MinAreaSqm-dims.AreaSqm, std.MinAreaSqm))
	}
	if std.MinLengthM > 0 && dims.LengthM < std.MinLengthM {
		violations = append(violations, fmt.Sprintf("length %.2f m is %.2f below the %.2f m minimum",
			dims.LengthM, std.MinLengthM-dims.LengthM, std.MinLengthM))
	}
	if std.MinWidthM > 0 && dims.WidthM < std.MinWidthM {
		violations = append(violations, fmt.Sprintf("width %.2f m is %.2f below the %.2f m minimum",
			dims.WidthM, std.MinWidthM-dims.WidthM, std.MinWidthM))
	}
	if len(violations) == 0 {
		return true, ""
	}
	return false, strings.Join(violations, "; ")
}

// fuseGroup produces the consensus for one group of measurements of the
// same dimension. A single measurement passes through untouched.
func fuseGroup(group []model.Measurement) fusedValue {
	if len(group) == 0 {
		return fusedValue{}
	}
	if len(group) == 1 {
		m := group[0]
		return fusedValue{
			value:      m.Value,
			confidence: clamp01(m.Confidence),
			sources:    []model.Source{m.Source},
			fusedCount: 1,
		}
	}

	survivors := rejectOutliers(group)

	var weightedSum, weightSum float64
	values := make([]float64, len(survivors))
	sources := make(map[model.Source]struct{})
	for i, m := range survivors {
		weightedSum += m.Value * m.Confidence
		weightSum += m.Confidence
		values[i] = m.Value
		sources[m.Source] = struct{}{}
	}

	consensus := weightedSum / weightSum
	avgWeight := weightSum / float64(len(survivors))

	// Disagreement among the surviving values lowers confidence in
	// proportion to the coefficient of variation.
	confidence := avgWeight
	if consensus > 0 {
		confidence -= stddev(values) / consensus * spreadPenalty
	}

	return fusedValue{
		value:      consensus,
		confidence: clamp01(confidence),
		sources:    sortedSources(sources),
		fusedCount: len(survivors),
	}
}

// rejectOutliers drops measurements whose z-score meets the threshold.
// Each value is scored against the mean and population stddev of the
// remaining values, so a single wild reading cannot inflate its own
// baseline and hide. If every measurement would be dropped, the full
// group is kept rather than returning an empty consensus.
func rejectOutliers(group []model.Measurement) []model.Measurement {
	values := make([]float64, len(group))
	for i, m := range group {
		values[i] = m.Value
	}
	if stddev(values) == 0 {
		return group
	}

	survivors := make([]model.Measurement, 0, len(group))
	for i, m := range group {
		rest := make([]float64, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		mu := mean(rest)
		sigma := stddev(rest)

		var outlier bool
		if sigma == 0 {
			// The rest agree exactly; any deviation from them
			// is an outlier.
			outlier = m.Value != mu
		} else {
			z := (m.Value - mu) / sigma
			if z < 0 {
				z = -z
			}
			outlier = z >= outlierZScore
		}

		if outlier {
			zap.L().Debug("fusion: outlier rejected",
				zap.String("room", m.RoomName),
				zap.String("dimension", string(m.Dimension)),
				zap.Float64("value", m.Value),
			)
			continue
		}
		survivors = append(survivors, m)
	}
	if len(survivors) == 0 {
		return group
	}
	return survivors
}

func sortedSources(set map[model.Source]struct{}) []model.Source {
	out := make([]model.Source, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func minNonZero(a, b float64) float64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
