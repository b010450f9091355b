// Provides routines to render a course as a printable PDF sheet: the marks
// and legs to scale, a wind arrow, and a per-leg table for the race officer.
package fpdf

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/stats"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

// The course box is from NW(20,30) to SE(190,170); the leg table goes below.
var (
	CourseBoxOffsetX = 20.0
	CourseBoxOffsetY = 30.0
	CourseBoxWidth   = 170.0
	CourseBoxHeight  = 140.0

	CourseBoxPaddingM = 60.0 // meters of water kept around the outermost marks
)

// }}}

// {{{ CourseSheet

// CourseSheet writes a one-page A4 PDF of the course to w.
func CourseSheet(w io.Writer, title string, marks []coursegeo.Mark, wind coursegeo.WindReading) error {
	if len(marks) == 0 {
		return fmt.Errorf("CourseSheet: no marks to draw")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Text(CourseBoxOffsetX, 20.0, title)
	pdf.SetFont("Arial", "", 9)
	pdf.Text(CourseBoxOffsetX+100.0, 20.0,
		fmt.Sprintf("wind %03.0f at %.0fkts", wind.DirectionDeg, wind.SpeedKts))

	proj := NewCourseProjector(marks)

	// Work out the square meter range that fits every mark.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, m := range marks {
		x, y := proj.Project(m.Latlong)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	half := math.Max(maxX-minX, maxY-minY)/2.0 + CourseBoxPaddingM
	cx, cy := (minX+maxX)/2.0, (minY+maxY)/2.0

	grid := CourseGrid{
		Fpdf:    pdf,
		OffsetU: CourseBoxOffsetX, OffsetV: CourseBoxOffsetY,
		W: CourseBoxWidth, H: CourseBoxHeight,
		MinX: cx - half, MaxX: cx + half,
		MinY: cy - half, MaxY: cy + half,
		GridlineEveryM: gridlineSpacing(half * 2.0),
		TickFmt:        "%.0fm",
	}
	grid.DrawGridlines()

	drawLegs(grid, proj, marks)
	drawMarks(grid, proj, marks)
	drawWindArrow(pdf, wind.DirectionDeg)
	drawLegTable(pdf, marks, wind.DirectionDeg)

	return pdf.Output(w)
}

// }}}

// gridlineSpacing picks a round spacing giving a handful of lines.
func gridlineSpacing(spanM float64) float64 {
	for _, s := range []float64{50, 100, 200, 500, 1000, 2000} {
		if spanM/s <= 8 { return s }
	}
	return 5000
}

// {{{ drawLegs, drawMarks

func drawLegs(grid CourseGrid, proj CourseProjector, marks []coursegeo.Mark) {
	ordered := sequenced(marks)
	if len(ordered) == 0 {
		return
	}

	grid.SetLineWidth(0.4)
	grid.SetDrawColor(0x30, 0x60, 0xc0)

	if center, ok := coursegeo.StartLineCenter(marks); ok {
		x1, y1 := proj.Project(center)
		x2, y2 := proj.Project(ordered[0].Latlong)
		grid.Line(x1, y1, x2, y2)
	}
	for i := 0; i+1 < len(ordered); i++ {
		x1, y1 := proj.Project(ordered[i].Latlong)
		x2, y2 := proj.Project(ordered[i+1].Latlong)
		grid.Line(x1, y1, x2, y2)
	}

	// start line itself, dashed
	if pin, boat := coursegeo.StartLine(marks); pin != nil && boat != nil {
		grid.SetDrawColor(0x20, 0x20, 0x20)
		grid.SetDashPattern([]float64{1.5, 1.5}, 0)
		x1, y1 := proj.Project(pin.Latlong)
		x2, y2 := proj.Project(boat.Latlong)
		grid.Line(x1, y1, x2, y2)
		grid.SetDashPattern([]float64{}, 0)
	}

	grid.SetDrawColor(0, 0, 0)
}

func drawMarks(grid CourseGrid, proj CourseProjector, marks []coursegeo.Mark) {
	grid.SetFont("Arial", "", 9)
	grid.SetLineWidth(0.35)

	for _, m := range marks {
		x, y := proj.Project(m.Latlong)
		if m.IsGate {
			grid.SetDrawColor(0xc0, 0x40, 0x20)
		} else {
			grid.SetDrawColor(0x00, 0x00, 0x00)
		}
		grid.Circle(x, y, 1.6, "D")
		grid.Label(x, y, m.ID)
	}
	grid.SetDrawColor(0, 0, 0)
}

// }}}
// {{{ drawWindArrow, drawLegTable

// drawWindArrow puts a small arrow in the top-right corner of the course
// box, pointing the way the wind blows (i.e. downwind).
func drawWindArrow(pdf *gofpdf.Fpdf, windDir float64) {
	cx := CourseBoxOffsetX + CourseBoxWidth - 12.0
	cy := CourseBoxOffsetY + 12.0
	r := 7.0

	blowsTo := (windDir + 180.0) * math.Pi / 180.0
	dx, dy := math.Sin(blowsTo), -math.Cos(blowsTo)

	x1, y1 := cx-dx*r, cy-dy*r
	x2, y2 := cx+dx*r, cy+dy*r

	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(0x20, 0x80, 0x20)
	pdf.Line(x1, y1, x2, y2)
	// arrowhead
	for _, side := range []float64{2.6, -2.6} {
		ax := x2 - dx*3.0 - dy*side
		ay := y2 - dy*3.0 + dx*side
		pdf.Line(x2, y2, ax, ay)
	}
	pdf.SetDrawColor(0, 0, 0)

	pdf.SetFont("Arial", "", 7)
	pdf.Text(cx-6.0, cy+r+4.0, fmt.Sprintf("wind %03.0f", windDir))
}

func drawLegTable(pdf *gofpdf.Fpdf, marks []coursegeo.Mark, windDir float64) {
	cs, ok := stats.ForCourse(marks, windDir)
	if !ok {
		return
	}

	y := CourseBoxOffsetY + CourseBoxHeight + 10.0
	pdf.SetFont("Arial", "B", 9)
	pdf.Text(CourseBoxOffsetX, y, fmt.Sprintf("Legs (total %.2fNM)", cs.TotalNM))
	pdf.SetFont("Arial", "", 9)

	for i, leg := range cs.Legs {
		y += 5.0
		pdf.Text(CourseBoxOffsetX, y, fmt.Sprintf("%d.", i+1))
		pdf.Text(CourseBoxOffsetX+8.0, y, leg.String())
	}
}

// }}}

func sequenced(marks []coursegeo.Mark) []coursegeo.Mark {
	out := []coursegeo.Mark{}
	for _, m := range marks {
		if m.HasOrder() { out = append(out, m) }
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
