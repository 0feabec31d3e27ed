// Package voice extracts room dimensions from transcribed speech using
// pattern matching, e.g. "the master bedroom is 12 feet by 10 feet".
package voice

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

const defaultHeightM = 3.0

// dimensionPattern matches "<room> is <n> <unit> by <n> <unit>" and the
// common phrasing variants (measuring, sized, x, *).
var dimensionPattern = regexp.MustCompile(
	`([\w\s]*?(?:bedroom|room|kitchen|bathroom|toilet|hall|balcony|garage))\s+` +
		`(?:is|which is|measuring|measures|sized)?\s*` +
		`(\d+(?:\.\d+)?)\s*(feet|foot|ft|meters?|centimeters?|cm|m)\s+` +
		`(?:by|x|\*)\s+` +
		`(\d+(?:\.\d+)?)\s*(feet|foot|ft|meters?|centimeters?|cm|m)`)

// floorPattern matches "<n> floors" / "two storey" style phrases.
var floorPattern = regexp.MustCompile(`(\d+|one|two|three)\s+(?:floor|storey|story|stories|storeys)`)

// heightPattern matches "ceiling height is <n> <unit>".
var heightPattern = regexp.MustCompile(`(?:ceiling height|height)\s+(?:is|of)?\s*(\d+(?:\.\d+)?)\s*(feet|foot|ft|meters?|centimeters?|cm|m)`)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// BuildingInfo carries building-level facts mentioned in the transcript.
type BuildingInfo struct {
	Floors         int     `json:"floors,omitempty"`
	CeilingHeightM float64 `json:"ceiling_height_m,omitempty"`
}

// Extraction is the full result of parsing one transcript.
type Extraction struct {
	Rooms        []model.RoomDimension `json:"rooms"`
	RoomCounts   map[string]int        `json:"room_counts,omitempty"`
	BuildingInfo BuildingInfo          `json:"building_info"`
}

// Extract parses a transcript into room dimensions, room counts, and
// building info. All dimensions are converted to meters; the longer
// horizontal dimension is reported as length.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)

	ext := Extraction{
		Rooms:      extractRooms(lower),
		RoomCounts: extractRoomCounts(lower),
	}

	if m := floorPattern.FindStringSubmatch(lower); m != nil {
		if n, ok := numberWords[m[1]]; ok {
			ext.BuildingInfo.Floors = n
		} else if n, err := strconv.Atoi(m[1]); err == nil {
			ext.BuildingInfo.Floors = n
		}
	}
	if m := heightPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			ext.BuildingInfo.CeilingHeightM = toMeters(v, m[2])
		}
	}

	zap.L().Debug("voice: extraction complete",
		zap.Int("rooms", len(ext.Rooms)),
		zap.Int("room_counts", len(ext.RoomCounts)),
	)

	return ext
}

func extractRooms(lower string) []model.RoomDimension {
	var rooms []model.RoomDimension

	for _, m := range dimensionPattern.FindAllStringSubmatch(lower, -1) {
		name := stripArticles(strings.TrimSpace(m[1]))
		d1, err1 := strconv.ParseFloat(m[2], 64)
		d2, err2 := strconv.ParseFloat(m[4], 64)
		if err1 != nil || err2 != nil {
			continue
		}

		lengthM := toMeters(d1, m[3])
		widthM := toMeters(d2, m[5])
		if widthM > lengthM {
			lengthM, widthM = widthM, lengthM
		}

		rooms = append(rooms, model.RoomDimension{
			Name:    titleCase(name),
			Type:    string(model.InferRoomType(name)),
			LengthM: lengthM,
			WidthM:  widthM,
			HeightM: defaultHeightM,
		})
	}

	return rooms
}

// extractRoomCounts finds phrases like "three bedrooms" or "2 bathrooms".
func extractRoomCounts(lower string) map[string]int {
	counts := make(map[string]int)

	countKeywords := map[string]string{
		"bedroom": "bedroom", "bathroom": "bathroom", "kitchen": "kitchen",
		"living room": "living_room", "dining room": "dining_room",
		"garage": "garage", "balcony": "balcony", "toilet": "bathroom",
	}
	for keyword, roomType := range countKeywords {
		digitPattern := regexp.MustCompile(`(\d+)\s+` + regexp.QuoteMeta(keyword) + `s?`)
		if m := digitPattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				counts[roomType] += n
			}
			continue
		}
		for word, n := range numberWords {
			wordPattern := regexp.MustCompile(word + `\s+` + regexp.QuoteMeta(keyword) + `s?`)
			if wordPattern.MatchString(lower) {
				counts[roomType] += n
				break
			}
		}
	}

	if len(counts) == 0 {
		return nil
	}
	return counts
}

func toMeters(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "feet", "foot", "ft":
		return value * 0.3048
	case "cm", "centimeter", "centimeters":
		return value / 100
	default: // meter, meters, m
		return value
	}
}

// stripArticles removes leading filler words so "the master bedroom"
// and "master bedroom" produce the same room name.
func stripArticles(s string) string {
	for _, prefix := range []string{"the ", "a ", "an ", "my ", "our ", "and ", "also "} {
		for strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
		}
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
