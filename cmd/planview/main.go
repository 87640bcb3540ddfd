// Command planview computes the buildable envelope of a parcel and
// writes the result as a summary, a PNG rendering, or a GeoJSON
// feature collection.
//
// Usage:
//
//	planview -parcel lot.geojson -rules zone.yaml -front 0 -png plan.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/groundplan/groundplan"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/shape"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("planview: ")

	var (
		parcelPath = flag.String("parcel", "", "parcel boundary file (GeoJSON or coordinate array)")
		rulesPath  = flag.String("rules", "", "setback ruleset YAML file")
		frontEdge  = flag.Int("front", -1, "street-facing boundary edge index (-1 for none)")
		pngPath    = flag.String("png", "", "write a PNG rendering to this path")
		jsonPath   = flag.String("geojson", "", "write a GeoJSON feature collection to this path")
		template   = flag.String("template", "", "drop a generated footprint (rectangle, square, l-shape, u-shape, strip)")
		kind       = flag.String("kind", "building", "generated footprint kind (building or parking)")
		noHatch    = flag.Bool("no-hatch", false, "skip hatch-line generation")
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
	if *noHatch {
		planner = planner.NoHatch()
	}

	plan, err := planner.Plan()
	if err != nil {
		log.Fatal(err)
	}

	eng := plan.Engine()
	if *template != "" {
		objKind := model.KindBuilding
		if *kind == "parking" {
			objKind = model.KindParking
		}
		if _, err := eng.CreateFromTemplate(shape.Template(*template), objKind); err != nil {
			log.Fatalf("template %q: %v", *template, err)
		}
	}

	printSummary(plan, eng)

	if *pngPath != "" {
		if err := plan.WritePNG(*pngPath, eng); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pngPath)
	}
	if *jsonPath != "" {
		data, err := plan.GeoJSON(eng.Objects())
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*jsonPath, data, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *jsonPath)
	}
}

func printSummary(plan *groundplan.Plan, eng *shape.Engine) {
	sb := plan.Setbacks()
	fmt.Printf("parcel area:    %9.1f m2\n", plan.ParcelAreaM2())
	fmt.Printf("envelope area:  %9.1f m2 (%s mode)\n", plan.EnvelopeAreaM2(), sb.Mode)
	fmt.Printf("setbacks:       front %.1f m, lateral %.1f m, rear %.1f m\n",
		sb.FrontM, sb.LateralM, sb.RearM)

	counts := map[model.FacadeCategory]int{}
	for _, s := range plan.Segments() {
		counts[s.Category]++
	}
	fmt.Printf("boundary edges: %d front, %d lateral, %d rear\n",
		counts[model.CategoryFront], counts[model.CategoryLateral], counts[model.CategoryRear])

	for _, o := range eng.Objects() {
		fmt.Printf("object:         %s %s, %.1f m2\n", o.Kind, o.ID, o.AreaM2)
	}
	if ratio := eng.CoverageRatio(); ratio > 0 {
		fmt.Printf("coverage:       %.1f%% of envelope\n", 100*ratio)
	}
}
