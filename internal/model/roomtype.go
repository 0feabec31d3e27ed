package model

import "strings"

// RoomType classifies a room for standards validation and material rules.
type RoomType string

const (
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomKitchen    RoomType = "kitchen"
	RoomLivingRoom RoomType = "living_room"
	RoomDiningRoom RoomType = "dining_room"
	RoomGarage     RoomType = "garage"
	RoomBalcony    RoomType = "balcony"
	RoomUnknown    RoomType = "unknown"
)

// roomKeywords maps each room type to the name fragments that identify it.
// Synonyms follow local floor-plan labelling conventions (hall for living
// room, pantry for kitchen, verandah for balcony).
var roomKeywords = []struct {
	Type     RoomType
	Keywords []string
}{
	{RoomLivingRoom, []string{"living room", "living", "hall", "lounge", "drawing room", "sitting room"}},
	{RoomDiningRoom, []string{"dining room", "dining"}},
	{RoomBathroom, []string{"bathroom", "bath", "washroom", "toilet", "wc", "powder room"}},
	{RoomKitchen, []string{"kitchen", "pantry"}},
	{RoomBedroom, []string{"bedroom", "bed room", "sleeping room"}},
	{RoomGarage, []string{"garage", "carport"}},
	{RoomBalcony, []string{"balcony", "terrace", "verandah"}},
}

// InferRoomType derives a RoomType from a room name by case-insensitive
// keyword matching. Names that match nothing return RoomUnknown.
func InferRoomType(name string) RoomType {
	lower := strings.ToLower(name)
	for _, rk := range roomKeywords {
		for _, kw := range rk.Keywords {
			if strings.Contains(lower, kw) {
				return rk.Type
			}
		}
	}
	return RoomUnknown
}

// ParseRoomType converts a wire-format type string to a RoomType, falling
// back to name inference when the string is empty or unrecognized.
func ParseRoomType(s, name string) RoomType {
	t := RoomType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomDiningRoom, RoomGarage, RoomBalcony:
		return t
	case "master_bedroom":
		return RoomBedroom
	case "toilet":
		return RoomBathroom
	}
	return InferRoomType(name)
}
