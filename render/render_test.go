package render

import (
	"image/color"
	"testing"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/setback"
)

func testParcel() geo.Ring {
	frame := geo.NewFrame(geo.Point{Lng: 2.35, Lat: 48.85})
	return frame.FromLocalRing(geo.LocalRing{
		{X: -30, Y: -20}, {X: 30, Y: -20}, {X: 30, Y: 20}, {X: -30, Y: 20}, {X: -30, Y: -20},
	})
}

func TestDraw(t *testing.T) {
	parcel := testParcel()
	res := setback.ComputeEnvelope(parcel, nil, model.Setbacks{
		FrontM: 5, LateralM: 5, RearM: 5, MaxM: 5,
		Mode: model.ModeUniform, HasData: true,
	}, setback.DefaultConfig())

	cfg := DefaultConfig()
	cfg.WidthPx = 600
	cfg.PaddingPx = 20
	img, err := Draw(Scene{
		Parcel:   parcel,
		Envelope: res.Envelope,
		Hatch:    setback.ComputeHatch(parcel, res.Envelope, setback.DefaultConfig()),
	}, cfg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 600 {
		t.Errorf("width = %d, want 600", b.Dx())
	}
	// 60x40 parcel at 600 px wide: (600-40)/60 px per meter, 40 m tall.
	ppm := 560.0 / 60.0
	wantH := int(40.0*ppm) + 40
	if b.Dy() != wantH {
		t.Errorf("height = %d, want %d", b.Dy(), wantH)
	}

	// Something other than the white background must have been drawn.
	inked := false
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			w, _, _, _ := color.White.RGBA()
			if r != w || g != w || bl != w {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("rendered image is entirely background")
	}
}

func TestDrawDegenerateParcel(t *testing.T) {
	_, err := Draw(Scene{Parcel: geo.Ring{{Lng: 1, Lat: 1}, {Lng: 2, Lat: 2}}}, DefaultConfig())
	if err == nil {
		t.Fatal("Draw() accepted a degenerate parcel")
	}
}

func TestDrawObjectsAndHandles(t *testing.T) {
	parcel := testParcel()
	frame := geo.NewFrame(geo.Point{Lng: 2.35, Lat: 48.85})
	obj := &model.DrawnObject{
		ID:   "a",
		Kind: model.KindBuilding,
		Polygon: frame.FromLocalRing(geo.LocalRing{
			{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}, {X: -5, Y: -5},
		}),
		AreaM2:  100,
		Version: 1,
	}
	_, err := Draw(Scene{
		Parcel:   parcel,
		Objects:  []*model.DrawnObject{obj},
		ActiveID: "a",
		Handles: []model.Handle{
			{ID: model.HandleNE, Point: obj.Polygon[2]},
			{ID: model.HandleRotate, Point: obj.Polygon[3]},
		},
		Guides: []model.SnapGuide{
			{Horizontal: true, A: parcel[0], B: parcel[1]},
		},
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
}

func TestScaleBarMeters(t *testing.T) {
	got := ScaleBarMeters(testParcel())
	// Quarter of a 60 m wide parcel is 15 m; the round choice is 10.
	if got != 10 {
		t.Errorf("ScaleBarMeters() = %v, want 10", got)
	}
}
