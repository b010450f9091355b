package coursegeo

import (
	"fmt"

	"github.com/windshift/coursegeo/geo"
)

// MarkRole says what job a mark does on the course; it selects which
// wind-relative bearing applies when the course is adjusted.
type MarkRole string

const (
	RoleWindward    MarkRole = "windward"
	RoleLeeward     MarkRole = "leeward"
	RoleWing        MarkRole = "wing"
	RoleOffset      MarkRole = "offset"
	RoleTurningMark MarkRole = "turning_mark"
	RolePin         MarkRole = "pin"
	RoleStartBoat   MarkRole = "start_boat"
	RoleFinish      MarkRole = "finish"
	RoleGate        MarkRole = "gate"
	RoleOther       MarkRole = "other"
)

// GateSide distinguishes the two members of a gate.
type GateSide string

const (
	GatePort      GateSide = "port"
	GateStarboard GateSide = "starboard"
)

// CourseType selects the course topology.
type CourseType string

const (
	WindwardLeeward CourseType = "windward_leeward"
	Triangle        CourseType = "triangle"
	Trapezoid       CourseType = "trapezoid"
)

// BoatClass selects the reach angles; faster hulls sail hotter reaches.
type BoatClass string

const (
	ClassDinghy   BoatClass = "dinghy"
	ClassSkiff    BoatClass = "skiff"
	ClassKeelboat BoatClass = "keelboat"
)

// Mark is one buoy position, as handed over by the persistence/UI layer.
// Order is the mark's place in the rounding sequence; marks outside the
// sequence (pin, start boat, custom marks) carry a negative Order.
type Mark struct {
	ID string `json:"id"`

	geo.Latlong // embedded, so marks get all the geo routines directly

	Role         MarkRole `json:"role"`
	Order        int      `json:"order"`
	IsGate       bool     `json:"is_gate,omitempty"`
	GateSide     GateSide `json:"gate_side,omitempty"`
	IsCourseMark bool     `json:"is_course_mark,omitempty"`
}

func (m Mark)String() string {
	str := fmt.Sprintf("%s[%s] %s", m.ID, m.Role, m.Latlong)
	if m.IsGate {
		str += fmt.Sprintf(" gate/%s", m.GateSide)
	}
	return str
}

// HasOrder says whether the mark takes part in the rounding sequence.
func (m Mark)HasOrder() bool { return m.Order >= 0 }

// WindReading is the current wind as reported by the weather collaborator.
// Direction is where the wind blows from, degrees true. Speed is not used by
// the geometry but is carried through for display.
type WindReading struct {
	DirectionDeg float64 `json:"direction_deg"`
	SpeedKts     float64 `json:"speed_kts,omitempty"`
}
