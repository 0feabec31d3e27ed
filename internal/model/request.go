package model

// FloorPlanRoom is one room record produced by the floor-plan recognition
// pipeline. LengthMM/WidthMM are millimeters unless the parent input carries
// a pixel scale ratio, in which case they are pixel extents.
type FloorPlanRoom struct {
	Name     string  `json:"name"`
	Type     string  `json:"type,omitempty"`
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm,omitempty"`
}

// FloorPlanInput is the floor-plan source payload. ScaleRatio converts pixel
// extents to millimeters; zero means the extents are already millimeters.
type FloorPlanInput struct {
	Rooms      []FloorPlanRoom `json:"rooms"`
	ScaleRatio float64         `json:"scale_ratio,omitempty"`
}

// PlaneType classifies an AR-detected surface.
type PlaneType string

const (
	PlaneFloor   PlaneType = "floor"
	PlaneWall    PlaneType = "wall"
	PlaneCeiling PlaneType = "ceiling"
)

// ARPlaneInput is one plane record from the AR subsystem, meters throughout.
// For wall planes, Width is the vertical extent and Length the horizontal
// run. Confidence is the device-reported per-record confidence.
type ARPlaneInput struct {
	Room       string    `json:"room"`
	Type       PlaneType `json:"type"`
	Width      float64   `json:"width"`
	Length     float64   `json:"length"`
	Confidence float64   `json:"confidence,omitempty"`
}

// VoiceInput carries the raw transcript of a spoken building description.
type VoiceInput struct {
	Text string `json:"text"`
}

// RoomDimension is one unit-converted room observation, meters throughout.
// Produced by the voice extractor and by the photo estimation pipeline.
type RoomDimension struct {
	Name    string  `json:"name"`
	Type    string  `json:"type,omitempty"`
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m,omitempty"`
}

// PhotoInput is the photogrammetry source payload.
type PhotoInput struct {
	Rooms []RoomDimension `json:"rooms"`
}

// EstimateRequest is the one-call fusion-and-generate input. Any source may
// be nil; a request with every source nil or empty is rejected.
type EstimateRequest struct {
	BuildingID   string          `json:"building_id,omitempty"`
	BuildingName string          `json:"building_name,omitempty"`
	FloorPlan    *FloorPlanInput `json:"floor_plan_data,omitempty"`
	AR           []ARPlaneInput  `json:"ar_data,omitempty"`
	Voice        *VoiceInput     `json:"voice_data,omitempty"`
	Photo        *PhotoInput     `json:"photo_data,omitempty"`
}

// EstimateResult is the combined fusion + BOQ output. ModelURL is reserved
// for the 3-D model pipeline and is always null here.
type EstimateResult struct {
	Success        bool           `json:"success"`
	Building       Building       `json:"building"`
	BOQ            BOQ            `json:"boq"`
	ModelURL       *string        `json:"model_url"`
	FusionMetadata FusionMetadata `json:"fusion_metadata"`
}
