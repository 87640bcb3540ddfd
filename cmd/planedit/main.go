// Command planedit is a terminal editor for site plans: it computes
// the buildable envelope of a parcel and lets you place, move, rotate,
// and scale building and parking footprints inside it.
//
// Usage:
//
//	planedit -parcel lot.geojson -rules zone.yaml -front 0
package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/groundplan/groundplan"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("planedit: ")

	var (
		parcelPath = flag.String("parcel", "", "parcel boundary file (GeoJSON or coordinate array)")
		rulesPath  = flag.String("rules", "", "setback ruleset YAML file")
		frontEdge  = flag.Int("front", -1, "street-facing boundary edge index (-1 for none)")
		pngPath    = flag.String("png", "plan.png", "PNG export path (written on 'x')")
	)
	flag.Parse()

	if *parcelPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	planner := groundplan.FromFile(*parcelPath)
	if *rulesPath != "" {
		planner = planner.RulesFile(*rulesPath)
	}
	if *frontEdge >= 0 {
		planner = planner.FrontEdge(*frontEdge)
	}
	plan, err := planner.Plan()
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		initialModel(plan, *pngPath),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
