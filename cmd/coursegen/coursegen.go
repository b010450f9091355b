package main

// coursegen: the command-line face of the geometry engine. Reads a mark list
// as JSON, then either re-squares the course to the wind (-adjust), lays out
// a fresh template (-triangle / -trapezoid), or just prints the course
// statistics. Optionally renders a PDF course sheet.
//
//   coursegen -marks marks.json -wind 270 -adjust -o out.json
//   coursegen -start "43.512, 16.442" -wind 270 -triangle 60,60,60 -length 500
//   coursegen -marks marks.json -wind 270 -pdf course.pdf

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	skygeo "github.com/skypies/geo"

	"github.com/windshift/coursegeo"
	"github.com/windshift/coursegeo/fpdf"
	"github.com/windshift/coursegeo/geo"
	"github.com/windshift/coursegeo/shape"
	"github.com/windshift/coursegeo/stats"
)

var (
	fVerbosity int
	fMarks     string
	fOut       string
	fPdf       string
	fTitle     string

	fWind  float64
	fSpeed float64
	fClass string
	fType  string

	fAdjust    bool
	fTriangle  string
	fTrapezoid bool
	fStart     string
	fLength    float64
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fMarks, "marks", "", "JSON file with the current marks")
	flag.StringVar(&fOut, "o", "", "where to write the resulting marks JSON (default stdout)")
	flag.StringVar(&fPdf, "pdf", "", "also render a PDF course sheet here")
	flag.StringVar(&fTitle, "title", "Course", "title for the PDF sheet")

	flag.Float64Var(&fWind, "wind", math.NaN(), "wind direction, degrees true")
	flag.Float64Var(&fSpeed, "speed", 0, "wind speed, knots (display only)")
	flag.StringVar(&fClass, "class", "dinghy", "boat class: dinghy, skiff, keelboat")
	flag.StringVar(&fType, "course", "windward_leeward", "course type: windward_leeward, triangle, trapezoid")

	flag.BoolVar(&fAdjust, "adjust", false, "re-square the marks to the wind")
	flag.StringVar(&fTriangle, "triangle", "", "generate a triangle from interior angles, e.g. 60,60,60")
	flag.BoolVar(&fTrapezoid, "trapezoid", false, "generate a trapezoid course")
	flag.StringVar(&fStart, "start", "", "start-line center for generation, e.g. \"43.512, 16.442\"")
	flag.Float64Var(&fLength, "length", 500, "nominal course length in meters for generation")

	flag.Parse()
}

func main() {
	// The engine assumes finite numbers; reject junk here at the boundary.
	if math.IsNaN(fWind) || math.IsInf(fWind, 0) {
		log.Fatal("need a -wind direction in degrees")
	}
	wind := coursegeo.WindReading{DirectionDeg: geo.NormalizeBearing(fWind), SpeedKts: fSpeed}

	var marks []coursegeo.Mark

	switch {
	case fTriangle != "":
		angles, err := parseAngles(fTriangle)
		if err != nil { log.Fatal(err) }
		t := shape.Triangle(parseStart(), wind.DirectionDeg, angles, fLength)
		logWarnings(t.Warnings)
		marks = t.Marks

	case fTrapezoid:
		t := shape.Trapezoid(parseStart(), wind.DirectionDeg, fLength)
		logWarnings(t.Warnings)
		marks = t.Marks

	case fAdjust:
		marks = loadMarks()
		center, hasStart := coursegeo.StartLineCenter(marks)
		adjustable := []coursegeo.Mark{}
		for _, m := range marks {
			if m.HasOrder() { adjustable = append(adjustable, m) }
		}
		res := coursegeo.AdjustMarksToWind(adjustable, center, wind.DirectionDeg,
			coursegeo.CourseType(fType), coursegeo.BoatClass(fClass), hasStart)
		logWarnings(res.Warnings)
		if !res.CanApply {
			log.Fatal("marks failed validation; nothing adjusted")
		}
		marks = applyResults(marks, res)

	default:
		marks = loadMarks()
	}

	if cs, ok := stats.ForCourse(marks, wind.DirectionDeg); ok && fVerbosity > 0 {
		for _, leg := range cs.Legs {
			fmt.Printf("%s\n", leg)
		}
		fmt.Printf("total %.2fNM\n", cs.TotalNM)
	}

	writeMarks(marks)

	if fPdf != "" {
		f, err := os.Create(fPdf)
		if err != nil { log.Fatal(err) }
		defer f.Close()
		if err := fpdf.CourseSheet(f, fTitle, marks, wind); err != nil {
			log.Fatal(err)
		}
	}
}

func loadMarks() []coursegeo.Mark {
	if fMarks == "" {
		log.Fatal("need a -marks file")
	}
	b, err := os.ReadFile(fMarks)
	if err != nil { log.Fatal(err) }

	marks := []coursegeo.Mark{}
	if err := json.Unmarshal(b, &marks); err != nil {
		log.Fatalf("%s: %v", fMarks, err)
	}
	for _, m := range marks {
		if math.IsNaN(m.Lat) || math.IsNaN(m.Lng) {
			log.Fatalf("mark %s has a non-numeric position", m.ID)
		}
	}
	return marks
}

func writeMarks(marks []coursegeo.Mark) {
	b, err := json.MarshalIndent(marks, "", "  ")
	if err != nil { log.Fatal(err) }

	if fOut == "" {
		fmt.Printf("%s\n", b)
		return
	}
	if err := os.WriteFile(fOut, b, 0644); err != nil {
		log.Fatal(err)
	}
}

func applyResults(marks []coursegeo.Mark, res coursegeo.SequentialAdjustmentResult) []coursegeo.Mark {
	byID := map[string]geo.Latlong{}
	for _, r := range res.Results {
		byID[r.MarkID] = r.New
		if fVerbosity > 0 {
			fmt.Printf("%-12.12s %03.0f->%03.0f (delta %+.1f, applied %+.1f)\n",
				r.MarkID, r.CurrentBearing, r.TargetBearing, r.Delta, r.AppliedDelta)
		}
	}
	for i := range marks {
		if ll, ok := byID[marks[i].ID]; ok {
			marks[i].Latlong = ll
		}
	}
	return marks
}

// parseStart leans on the skypies parser, which copes with most of the
// formats people paste in.
func parseStart() geo.Latlong {
	if fStart == "" {
		log.Fatal("generation needs a -start position")
	}
	pos := skygeo.NewLatlong(fStart)
	if pos.Lat == 0 && pos.Long == 0 {
		log.Fatalf("could not parse -start %q", fStart)
	}
	return geo.Latlong{Lat: pos.Lat, Lng: pos.Long}
}

func parseAngles(s string) ([3]float64, error) {
	out := [3]float64{}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("-triangle wants three angles, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || v <= 0 {
			return out, fmt.Errorf("bad interior angle %q", p)
		}
		out[i] = v
	}
	return out, nil
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
}
