package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/skypies/geo"
)

// cgeo: paste in a position in whatever format the chart plotter spat out,
// get it back as mark JSON for the coursegen tool.

var (
	fID   string
	fRole string
)

func init() {
	flag.StringVar(&fID, "id", "mark", "mark id for the JSON output")
	flag.StringVar(&fRole, "role", "turning_mark", "mark role for the JSON output")
	flag.Parse()
}

func main() {
	if len(flag.Args()) == 0 {
		log.Fatal("usage: cgeo 43.512, 16.442\n")
	}

	in := strings.Join(flag.Args(), " ")
	pos := geo.NewLatlong(in)

	fmt.Printf(">>>> %s\n  << (%.7f, %.7f)\n", in, pos.Lat, pos.Long)
	fmt.Printf("  << {\"id\":%q, \"lat\":%.7f, \"lng\":%.7f, \"role\":%q, \"order\":-1}\n",
		fID, pos.Lat, pos.Long, fRole)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
