package groundplan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/geomio"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/setback"
	"github.com/groundplan/groundplan/shape"
)

const testRulesYAML = `
facades:
  front:
    min_m: 5
  lateral:
    min_m: 3
  rear:
    min_m: 4
complete: true
`

// testParcel builds a 40 x 60 m rectangle, edge 0 on the south side.
func testParcel() geo.Ring {
	frame := geo.NewFrame(geo.Point{Lng: 2.35, Lat: 48.85})
	return frame.FromLocalRing(geo.LocalRing{
		{X: -20, Y: -30}, {X: 20, Y: -30}, {X: 20, Y: 30}, {X: -20, Y: 30}, {X: -20, Y: -30},
	})
}

func testRules(t *testing.T) setback.Ruleset {
	t.Helper()
	r, err := setback.ParseRuleset([]byte(testRulesYAML))
	if err != nil {
		t.Fatalf("ParseRuleset() error = %v", err)
	}
	return r
}

func TestPlanDirectional(t *testing.T) {
	plan, err := FromRing(testParcel()).
		Rules(testRules(t)).
		FrontEdge(0).
		Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if got := plan.Setbacks().Mode; got != model.ModeDirectional {
		t.Errorf("Mode = %q, want %q", got, model.ModeDirectional)
	}
	// 40x60 parcel, front 5 / lateral 3 / rear 4: (40-6) x (60-9).
	want := 34.0 * 51.0
	if got := plan.EnvelopeAreaM2(); got < want*0.98 || got > want*1.02 {
		t.Errorf("EnvelopeAreaM2() = %.1f, want ~%.1f", got, want)
	}
	if plan.EnvelopeAreaM2() >= plan.ParcelAreaM2() {
		t.Error("envelope should be smaller than the parcel")
	}

	bands := plan.Bands()
	if len(bands.Front) == 0 || len(bands.Lateral) == 0 || len(bands.Rear) == 0 {
		t.Errorf("bands = %d front, %d lateral, %d rear, want all non-empty",
			len(bands.Front), len(bands.Lateral), len(bands.Rear))
	}
	if len(plan.Hatch()) == 0 {
		t.Error("expected hatch lines in the forbidden zone")
	}
}

func TestPlanWithoutFacadeIsUniform(t *testing.T) {
	plan, err := FromRing(testParcel()).Rules(testRules(t)).Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if got := plan.Setbacks().Mode; got != model.ModeUniform {
		t.Errorf("Mode = %q, want %q", got, model.ModeUniform)
	}
	// Uniform max distance 5: (40-10) x (60-10).
	want := 30.0 * 50.0
	if got := plan.EnvelopeAreaM2(); got < want*0.98 || got > want*1.02 {
		t.Errorf("EnvelopeAreaM2() = %.1f, want ~%.1f", got, want)
	}
}

func TestPlanWithoutRulesIsIdentity(t *testing.T) {
	plan, err := FromRing(testParcel()).Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan.EnvelopeAreaM2() != plan.ParcelAreaM2() {
		t.Error("with no rules the envelope should equal the parcel")
	}
	if len(plan.Hatch()) != 0 {
		t.Error("identity envelope should produce no hatching")
	}
}

func TestPlanErrors(t *testing.T) {
	if _, err := (&Planner{options: defaultOptions()}).Plan(); !errors.Is(err, ErrNoParcel) {
		t.Errorf("no source: error = %v, want ErrNoParcel", err)
	}
	if _, err := FromRing(testParcel()).FrontEdge(-1).Plan(); err == nil {
		t.Error("negative front edge should fail")
	}
	if _, err := FromRing(testParcel()).FrontEdge(99).Plan(); err == nil {
		t.Error("out-of-range front edge should fail")
	}
	if _, err := FromGeoJSON([]byte("not json")).Plan(); !errors.Is(err, geomio.ErrUnknownFormat) {
		t.Error("bad payload should surface the decode error")
	}
}

func TestPlannerChainsAreIndependent(t *testing.T) {
	base := FromRing(testParcel()).Rules(testRules(t))
	directional := base.FrontEdge(0)

	uniform, err := base.Plan()
	if err != nil {
		t.Fatalf("base.Plan() error = %v", err)
	}
	dir, err := directional.Plan()
	if err != nil {
		t.Fatalf("directional.Plan() error = %v", err)
	}
	if uniform.Setbacks().Mode != model.ModeUniform {
		t.Error("branching a chain mutated the base planner")
	}
	if dir.Setbacks().Mode != model.ModeDirectional {
		t.Error("directional branch lost its facade selection")
	}
}

func TestPlanEngine(t *testing.T) {
	plan, err := FromRing(testParcel()).Rules(testRules(t)).FrontEdge(0).Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	eng := plan.Engine()
	if _, err := eng.CreateFromTemplate(shape.TemplateRectangle, model.KindBuilding); err != nil {
		t.Fatalf("CreateFromTemplate() error = %v", err)
	}
	if _, err := eng.AddObject(model.KindBuilding, plan.Parcel()); !errors.Is(err, shape.ErrOutsideEnvelope) {
		t.Errorf("parcel-sized object: error = %v, want ErrOutsideEnvelope", err)
	}
}

func TestPlanGeoJSON(t *testing.T) {
	plan, err := FromRing(testParcel()).Rules(testRules(t)).FrontEdge(0).Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	eng := plan.Engine()
	if _, err := eng.CreateFromTemplate(shape.TemplateRectangle, model.KindBuilding); err != nil {
		t.Fatalf("CreateFromTemplate() error = %v", err)
	}
	data, err := plan.GeoJSON(eng.Objects())
	if err != nil {
		t.Fatalf("GeoJSON() error = %v", err)
	}
	// The exported plan is itself a readable parcel source.
	if _, err := geomio.ParseParcel(data); err != nil {
		t.Errorf("exported plan is not parseable: %v", err)
	}
}

func TestPlanFromFiles(t *testing.T) {
	dir := t.TempDir()
	parcelPath := filepath.Join(dir, "parcel.geojson")
	rulesPath := filepath.Join(dir, "zone.yaml")

	raw, err := FromRing(testParcel()).Plan()
	if err != nil {
		t.Fatal(err)
	}
	payload, err := raw.GeoJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(parcelPath, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rulesPath, []byte(testRulesYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := FromFile(parcelPath).RulesFile(rulesPath).FrontEdge(0).Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan.EnvelopeAreaM2() >= plan.ParcelAreaM2() {
		t.Error("file-based plan did not apply the setbacks")
	}
}

func TestMust(t *testing.T) {
	plan := Must(FromRing(testParcel()).Plan())
	if plan == nil {
		t.Fatal("Must() returned nil plan")
	}
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(FromGeoJSON([]byte("nope")).Plan())
}
