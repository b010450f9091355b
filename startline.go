package coursegeo

import "github.com/windshift/coursegeo/geo"

// StartLine picks the pin and committee-boat marks out of a mark list.
// Either may be missing.
func StartLine(marks []Mark) (pin, boat *Mark) {
	for i := range marks {
		switch marks[i].Role {
		case RolePin:
			if pin == nil { pin = &marks[i] }
		case RoleStartBoat:
			if boat == nil { boat = &marks[i] }
		}
	}
	return
}

// StartLineCenter is the reference point the rounding sequence hangs off:
// the midpoint of the start line, or whichever end exists alone. ok==false
// means no start line at all, and no automated adjustment can run.
//
// Averaging raw lat/lng is fine here; start lines are a few hundred meters
// at most.
func StartLineCenter(marks []Mark) (geo.Latlong, bool) {
	pin, boat := StartLine(marks)

	switch {
	case pin != nil && boat != nil:
		return geo.Latlong{
			Lat: (pin.Lat + boat.Lat) / 2.0,
			Lng: (pin.Lng + boat.Lng) / 2.0,
		}, true
	case pin != nil:
		return pin.Latlong, true
	case boat != nil:
		return boat.Latlong, true
	}
	return geo.Latlong{}, false
}

// StartLineBearing is the bearing along the line from pin to boat, when
// both exist.
func StartLineBearing(marks []Mark) (float64, bool) {
	pin, boat := StartLine(marks)
	if pin == nil || boat == nil {
		return 0, false
	}
	return pin.BearingTowards(boat.Latlong), true
}
