package fpdf

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// CourseGrid maps course space (meters east/north of the course center) onto
// a rectangle of PDF page space, and knows how to draw its own gridlines.
type CourseGrid struct {
	*gofpdf.Fpdf // embed the thing we're writing to

	// Where the grid sits on the page, in PDF units (mm).
	OffsetU, OffsetV float64
	W, H             float64

	// The range of meter values scaled onto the grid.
	MinX, MinY, MaxX, MaxY float64

	GridlineEveryM float64 // 0 == no gridlines
	TickFmt        string  // fmt for the meter labels; blank == none
}

// U maps meters-east into page space; the bool is out-of-bounds.
func (cg CourseGrid)U(x float64) (float64, bool) {
	xRatio := (x - cg.MinX) / (cg.MaxX - cg.MinX)
	return cg.OffsetU + xRatio*cg.W, xRatio < 0 || xRatio > 1
}

// V maps meters-north into page space (PDF V grows downwards).
func (cg CourseGrid)V(y float64) (float64, bool) {
	yRatio := (y - cg.MinY) / (cg.MaxY - cg.MinY)
	return cg.OffsetV + (cg.H - yRatio*cg.H), yRatio < 0 || yRatio > 1
}

func (cg CourseGrid)UV(x, y float64) (float64, float64, bool) {
	u, oobU := cg.U(x)
	v, oobV := cg.V(y)
	return u, v, oobU || oobV
}

// Line draws between two points given in course space.
func (cg CourseGrid)Line(x1, y1, x2, y2 float64) {
	u1, v1, _ := cg.UV(x1, y1)
	u2, v2, _ := cg.UV(x2, y2)
	cg.Fpdf.MoveTo(u1, v1)
	cg.Fpdf.LineTo(u2, v2)
	cg.DrawPath("D")
}

// Circle draws a fixed-size (page space) circle at a course-space point.
func (cg CourseGrid)Circle(x, y, radiusMM float64, style string) {
	u, v, _ := cg.UV(x, y)
	cg.Fpdf.Circle(u, v, radiusMM, style)
}

// Label writes text just beside a course-space point.
func (cg CourseGrid)Label(x, y float64, text string) {
	u, v, _ := cg.UV(x, y)
	cg.Fpdf.Text(u+2.0, v-1.0, text)
}

func (cg CourseGrid)DrawGridlines() {
	if cg.GridlineEveryM <= 0 {
		return
	}

	cg.SetFont("Arial", "", 7)
	cg.SetLineWidth(0.03)
	cg.SetDrawColor(0xe0, 0xe0, 0xe0)
	cg.SetTextColor(0x90, 0x90, 0x90)

	gridStart := func(min float64) float64 {
		// first gridline at or above min, on a multiple of the spacing
		n := int(min / cg.GridlineEveryM)
		v := float64(n) * cg.GridlineEveryM
		if v < min { v += cg.GridlineEveryM }
		return v
	}

	for x := gridStart(cg.MinX); x <= cg.MaxX; x += cg.GridlineEveryM {
		cg.Line(x, cg.MinY, x, cg.MaxY)
		if cg.TickFmt != "" {
			u, _ := cg.U(x)
			v, _ := cg.V(cg.MinY)
			cg.Text(u-3.0, v+3.5, fmt.Sprintf(cg.TickFmt, x))
		}
	}
	for y := gridStart(cg.MinY); y <= cg.MaxY; y += cg.GridlineEveryM {
		cg.Line(cg.MinX, y, cg.MaxX, y)
		if cg.TickFmt != "" {
			u, _ := cg.U(cg.MinX)
			v, _ := cg.V(y)
			cg.Text(u-9.0, v+1.0, fmt.Sprintf(cg.TickFmt, y))
		}
	}

	cg.SetDrawColor(0, 0, 0)
	cg.SetTextColor(0, 0, 0)
}
