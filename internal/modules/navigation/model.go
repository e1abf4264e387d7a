// README: Campus navigation value types (buildings, resolved locations, routes).
package navigation

// Campus buildings form a fixed closed set; every location string resolves to
// exactly one of them.
const (
	BuildingMain          = "Main Building"
	BuildingScience       = "Science Building"
	BuildingNorth         = "North Building"
	BuildingSouth         = "South Building"
	BuildingLibrary       = "Library"
	BuildingCafeteria     = "Cafeteria"
	BuildingStudentCenter = "Student Center"
	BuildingGymnasium     = "Gymnasium"
	BuildingAuditorium    = "Auditorium"
)

// Descriptor is the resolved form of a free-text location. Room carries the
// token exactly as it appeared in the input ("" when no room number matched).
type Descriptor struct {
	Building string `json:"building"`
	Room     string `json:"room,omitempty"`
}

// Step is a single human-readable direction.
type Step struct {
	Instruction string `json:"instruction"`
	Details     string `json:"details,omitempty"`
}

// Route is the full navigation answer for one (from, to) pair.
// Buildings holds the resolved [from, to] pair in that order.
type Route struct {
	Steps         []Step    `json:"steps"`
	EstimatedTime string    `json:"estimatedTime"`
	Distance      string    `json:"distance"`
	Buildings     [2]string `json:"buildings"`
}
