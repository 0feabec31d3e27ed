// Package model defines the typed records shared across the fusion and BOQ
// pipeline: measurements, fused rooms, and bill-of-quantities structures.
package model

import "strings"

// Source identifies where a measurement came from.
type Source string

const (
	SourceAR        Source = "ar_measurement"
	SourceFloorPlan Source = "floor_plan"
	SourcePhoto     Source = "photos"
	SourceVoice     Source = "voice_input"
)

// SourceWeight returns the fixed trust weight for a measurement source.
// AR hardware (LiDAR/depth) is the most accurate, human memory the least.
func SourceWeight(s Source) float64 {
	switch s {
	case SourceAR:
		return 0.90
	case SourceFloorPlan:
		return 0.70
	case SourcePhoto:
		return 0.60
	case SourceVoice:
		return 0.50
	default:
		return 0.50
	}
}

// Dimension is the physical quantity a measurement observes.
type Dimension string

const (
	DimLength Dimension = "length"
	DimWidth  Dimension = "width"
	DimHeight Dimension = "height"
	DimArea   Dimension = "area"
)

// Measurement is one observed value for one (room, dimension) pair.
// Values are canonical meters (square meters for area). Created once by the
// normalizer and never mutated afterward.
type Measurement struct {
	RoomKey    string    `json:"room_key"`
	RoomName   string    `json:"room_name"`
	Dimension  Dimension `json:"dimension"`
	Value      float64   `json:"value"`
	Source     Source    `json:"source"`
	Confidence float64   `json:"confidence"`
}

// RoomKeyFor canonicalizes a room name for cross-source identity matching.
// Matching is case-insensitive string equality on the trimmed name.
func RoomKeyFor(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
