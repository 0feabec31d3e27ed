package model

// RoomDimensions holds the fused dimensions of one room, in meters.
type RoomDimensions struct {
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
	AreaSqm float64 `json:"area_sqm"`
}

// FusedRoom is the reconciled result for one physical room. Created once by
// the fusion engine and read-only afterward.
type FusedRoom struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Type              RoomType       `json:"type"`
	Dimensions        RoomDimensions `json:"dimensions"`
	Confidence        float64        `json:"confidence"`
	SourcesUsed       []Source       `json:"sources_used"`
	MeasurementsFused int            `json:"measurements_fused"`
	IsValid           bool           `json:"is_valid"`
	ValidationMessage string         `json:"validation_message,omitempty"`
}

// Building aggregates the fused rooms with building-level metrics.
type Building struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	TotalFloorAreaSqm float64     `json:"total_floor_area_sqm"`
	TotalRooms        int         `json:"total_rooms"`
	Rooms             []FusedRoom `json:"rooms"`
}

// FusionMetadata summarizes a fusion run for the caller.
type FusionMetadata struct {
	SourcesUsed        []Source `json:"sources_used"`
	TotalRoomsDetected int      `json:"total_rooms_detected"`
	OverallConfidence  float64  `json:"overall_confidence"`
}
