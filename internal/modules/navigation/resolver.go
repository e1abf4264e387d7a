// README: Location resolver maps free text to a campus building.
package navigation

import (
	"regexp"
	"strconv"
	"strings"
)

// roomPattern matches an optional "room" prefix followed by a room token:
// optional single letter, optional hyphen, 3-4 digits (e.g. "201", "N-305").
var roomPattern = regexp.MustCompile(`(?i)(?:room\s*)?([A-Za-z]?-?\d{3,4})`)

// keywordEntry pins the lookup order; first contained key wins.
type keywordEntry struct {
	key      string
	building string
}

var knownLocations = []keywordEntry{
	{"main entrance", BuildingMain},
	{"entrance", BuildingMain},
	{"library", BuildingLibrary},
	{"cafeteria", BuildingCafeteria},
	{"science building", BuildingScience},
	{"gym", BuildingGymnasium},
	{"auditorium", BuildingAuditorium},
	{"student center", BuildingStudentCenter},
}

// extractRoom pulls a room token out of text and infers the owning building
// from its prefix letter or numeric range. Returns ok=false when no token
// matches. The token keeps its original case for display.
func extractRoom(text string) (Descriptor, bool) {
	m := roomPattern.FindStringSubmatch(text)
	if m == nil {
		return Descriptor{}, false
	}
	token := m[1]

	switch {
	case strings.HasPrefix(token, "N"), strings.HasPrefix(token, "n"):
		return Descriptor{Building: BuildingNorth, Room: token}, true
	case strings.HasPrefix(token, "S"), strings.HasPrefix(token, "s"):
		return Descriptor{Building: BuildingSouth, Room: token}, true
	}

	n, err := strconv.Atoi(token)
	switch {
	case err == nil && n >= 100 && n < 200:
		return Descriptor{Building: BuildingMain, Room: token}, true
	case err == nil && n >= 200 && n < 300:
		return Descriptor{Building: BuildingScience, Room: token}, true
	default:
		// Unparseable prefixes and out-of-range numbers land in Main.
		return Descriptor{Building: BuildingMain, Room: token}, true
	}
}

// Resolve maps any location description to a building. It is total: the empty
// string and unrecognized text default to Main Building with no room.
// A room-number match short-circuits keyword matching.
func Resolve(text string) Descriptor {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if d, ok := extractRoom(text); ok {
		return d
	}

	for _, e := range knownLocations {
		if strings.Contains(normalized, e.key) {
			return Descriptor{Building: e.building}
		}
	}

	switch {
	case strings.Contains(normalized, "science"), strings.Contains(normalized, "lab"):
		return Descriptor{Building: BuildingScience}
	case strings.Contains(normalized, "north"), strings.Contains(normalized, "n-"):
		return Descriptor{Building: BuildingNorth}
	case strings.Contains(normalized, "south"), strings.Contains(normalized, "s-"):
		return Descriptor{Building: BuildingSouth}
	default:
		return Descriptor{Building: BuildingMain}
	}
}

// Recognized reports whether the text carries any location signal at all:
// a room token, a known keyword, or a generic building/room mention.
func Recognized(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if _, ok := extractRoom(normalized); ok {
		return true
	}
	for _, e := range knownLocations {
		if strings.Contains(normalized, e.key) {
			return true
		}
	}
	return strings.Contains(normalized, "building") || strings.Contains(normalized, "room")
}
