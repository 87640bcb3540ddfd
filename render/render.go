package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// Config holds rendering options.
type Config struct {
	// WidthPx is the output image width; height follows the parcel's
	// aspect ratio.
	WidthPx int
	// PaddingPx is the margin around the parcel.
	PaddingPx int
	// FontSize is the label size in points.
	FontSize float64
	// Labels toggles the per-object area text.
	Labels bool
}

// DefaultConfig returns the default rendering options.
func DefaultConfig() Config {
	return Config{
		WidthPx:   1024,
		PaddingPx: 40,
		FontSize:  13,
		Labels:    true,
	}
}

// Scene is everything one frame draws. Only Parcel is required.
type Scene struct {
	Parcel   geo.Ring
	Envelope geo.Ring
	Bands    *model.Bands
	Hatch    []model.HatchLine
	Objects  []*model.DrawnObject
	Handles  []model.Handle
	Guides   []model.SnapGuide
	ActiveID string
}

// Drawing palette.
var (
	colBackground = color.White
	colParcel     = color.RGBA{40, 40, 40, 255}
	colEnvelope   = color.RGBA{46, 160, 67, 255}
	colBandFront  = color.RGBA{214, 69, 65, 60}
	colBandSide   = color.RGBA{230, 145, 56, 60}
	colBandRear   = color.RGBA{155, 89, 182, 60}
	colHatch      = color.RGBA{120, 120, 120, 160}
	colBuilding   = color.RGBA{52, 120, 186, 200}
	colParking    = color.RGBA{130, 130, 130, 180}
	colActive     = color.RGBA{255, 140, 0, 255}
	colHandle     = color.RGBA{255, 255, 255, 255}
	colGuide      = color.RGBA{220, 70, 160, 255}
)

// projector maps geographic points into pixel space, north up.
type projector struct {
	frame   *geo.Frame
	minX    float64
	maxY    float64
	scale   float64
	padding float64
}

func newProjector(parcel geo.Ring, cfg Config) (*projector, int, error) {
	if len(parcel.Open()) < 3 {
		return nil, 0, fmt.Errorf("render: parcel has %d vertices, need 3", len(parcel.Open()))
	}
	frame := geo.FrameForRing(parcel)
	min, max := frame.ToLocalRing(parcel).BBox()
	w, h := max.X-min.X, max.Y-min.Y
	if w <= 0 || h <= 0 {
		return nil, 0, fmt.Errorf("render: parcel bounding box is degenerate")
	}
	inner := float64(cfg.WidthPx - 2*cfg.PaddingPx)
	scale := inner / w
	height := int(h*scale) + 2*cfg.PaddingPx
	return &projector{
		frame:   frame,
		minX:    min.X,
		maxY:    max.Y,
		scale:   scale,
		padding: float64(cfg.PaddingPx),
	}, height, nil
}

func (p *projector) pixel(pt geo.Point) (float64, float64) {
	q := p.frame.ToLocal(pt)
	return p.padding + (q.X-p.minX)*p.scale, p.padding + (p.maxY-q.Y)*p.scale
}

// Draw renders the scene to an image.
func Draw(scene Scene, cfg Config) (image.Image, error) {
	dc, err := drawScene(scene, cfg)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders the scene and writes it to a file.
func SavePNG(path string, scene Scene, cfg Config) error {
	dc, err := drawScene(scene, cfg)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save png: %w", err)
	}
	return nil
}

func drawScene(scene Scene, cfg Config) (*gg.Context, error) {
	proj, height, err := newProjector(scene.Parcel, cfg)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(cfg.WidthPx, height)
	dc.SetColor(colBackground)
	dc.Clear()

	if cfg.Labels {
		face, err := labelFace(cfg.FontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}

	drawBands(dc, proj, scene.Bands)
	drawHatch(dc, proj, scene.Hatch)
	drawEnvelope(dc, proj, scene.Envelope)
	drawParcel(dc, proj, scene.Parcel)
	drawObjects(dc, proj, scene, cfg)
	drawGuides(dc, proj, scene.Guides)
	drawHandles(dc, proj, scene.Handles)
	return dc, nil
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func ringPath(dc *gg.Context, proj *projector, ring geo.Ring) {
	open := ring.Open()
	if len(open) == 0 {
		return
	}
	x, y := proj.pixel(open[0])
	dc.MoveTo(x, y)
	for _, p := range open[1:] {
		x, y = proj.pixel(p)
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

func drawParcel(dc *gg.Context, proj *projector, parcel geo.Ring) {
	ringPath(dc, proj, parcel)
	dc.SetColor(colParcel)
	dc.SetLineWidth(2.5)
	dc.Stroke()
}

func drawEnvelope(dc *gg.Context, proj *projector, env geo.Ring) {
	if len(env.Open()) < 3 {
		return
	}
	ringPath(dc, proj, env)
	dc.SetRGBA255(int(colEnvelope.R), int(colEnvelope.G), int(colEnvelope.B), 30)
	dc.FillPreserve()
	dc.SetColor(colEnvelope)
	dc.SetLineWidth(2)
	dc.SetDash(8, 5)
	dc.Stroke()
	dc.SetDash()
}

func drawBands(dc *gg.Context, proj *projector, bands *model.Bands) {
	if bands == nil {
		return
	}
	fill := func(rings []geo.Ring, c color.RGBA) {
		for _, r := range rings {
			ringPath(dc, proj, r)
			dc.SetColor(c)
			dc.Fill()
		}
	}
	fill(bands.Front, colBandFront)
	fill(bands.Lateral, colBandSide)
	fill(bands.Rear, colBandRear)
}

func drawHatch(dc *gg.Context, proj *projector, hatch []model.HatchLine) {
	if len(hatch) == 0 {
		return
	}
	dc.SetColor(colHatch)
	dc.SetLineWidth(1)
	for _, h := range hatch {
		x1, y1 := proj.pixel(h.A)
		x2, y2 := proj.pixel(h.B)
		dc.DrawLine(x1, y1, x2, y2)
	}
	dc.Stroke()
}

func drawObjects(dc *gg.Context, proj *projector, scene Scene, cfg Config) {
	for _, o := range scene.Objects {
		fill := colBuilding
		if o.Kind == model.KindParking {
			fill = colParking
		}
		ringPath(dc, proj, o.Polygon)
		dc.SetColor(fill)
		dc.FillPreserve()
		if o.ID == scene.ActiveID {
			dc.SetColor(colActive)
			dc.SetLineWidth(3)
		} else {
			dc.SetColor(colParcel)
			dc.SetLineWidth(1.5)
		}
		dc.Stroke()

		if cfg.Labels {
			cx, cy := proj.pixel(o.Polygon.Centroid())
			label := fmt.Sprintf("%.0f m2", o.AreaM2)
			dc.SetColor(color.White)
			dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
		}
	}
}

func drawHandles(dc *gg.Context, proj *projector, handles []model.Handle) {
	const half = 4.0
	for _, h := range handles {
		x, y := proj.pixel(h.Point)
		if h.ID == model.HandleRotate {
			dc.DrawCircle(x, y, half+1)
		} else {
			dc.DrawRectangle(x-half, y-half, 2*half, 2*half)
		}
		dc.SetColor(colHandle)
		dc.FillPreserve()
		dc.SetColor(colActive)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}
}

func drawGuides(dc *gg.Context, proj *projector, guides []model.SnapGuide) {
	if len(guides) == 0 {
		return
	}
	dc.SetColor(colGuide)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for _, g := range guides {
		x1, y1 := proj.pixel(g.A)
		x2, y2 := proj.pixel(g.B)
		dc.DrawLine(x1, y1, x2, y2)
	}
	dc.Stroke()
	dc.SetDash()
}

// ScaleBarMeters picks a round scale-bar length that spans roughly a
// quarter of the parcel width.
func ScaleBarMeters(parcel geo.Ring) float64 {
	frame := geo.FrameForRing(parcel)
	min, max := frame.ToLocalRing(parcel).BBox()
	target := (max.X - min.X) / 4
	if target <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(target)))
	for _, m := range []float64{5, 2, 1} {
		if mag*m <= target {
			return mag * m
		}
	}
	return mag
}
