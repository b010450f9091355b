package coursegeo

import "fmt"

// Validation is the outcome of the precondition checks; Valid is the AND of
// every check, and each failure contributes a warning. This never panics;
// bad input is a user problem, not a programming error.
type Validation struct {
	Valid    bool
	Warnings []string
}

// ValidateMarksForAdjustment checks whether a mark list is fit for the
// sequential wind adjustment: a start line to hang the sequence off, a
// usable unique order per mark, and a declared side for every gate member.
func ValidateMarksForAdjustment(marks []Mark, hasStartLine bool) Validation {
	v := Validation{Valid: true}

	if !hasStartLine {
		v.Valid = false
		v.Warnings = append(v.Warnings, "no start line; nothing to anchor the rounding sequence to")
	}

	seen := map[int]string{}
	for _, m := range marks {
		if !m.HasOrder() {
			v.Valid = false
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("mark %s has no usable rounding order", m.ID))
			continue
		}
		if otherID, dup := seen[m.Order]; dup {
			v.Valid = false
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("duplicate order %d on marks %s and %s", m.Order, otherID, m.ID))
		} else {
			seen[m.Order] = m.ID
		}
	}

	for _, m := range marks {
		if m.IsGate && m.GateSide != GatePort && m.GateSide != GateStarboard {
			v.Valid = false
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("gate mark %s has no declared side", m.ID))
		}
	}

	return v
}
