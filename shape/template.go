package shape

import (
	"math"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// Template identifies a parametric footprint shape.
type Template string

// Templates. Rectangle and square suit both kinds; L and U shapes are
// building footprints; strip is a parking row.
const (
	TemplateRectangle Template = "rectangle"
	TemplateSquare    Template = "square"
	TemplateL         Template = "l-shape"
	TemplateU         Template = "u-shape"
	TemplateStrip     Template = "strip"
)

// CreateFromTemplate generates a footprint sized from the envelope,
// oriented along its longest edge, and centered on its centroid. The
// shape shrinks by FitShrink per attempt, up to FitAttempts times,
// before ErrCannotFit is returned. On success the new object becomes
// the active selection.
func (e *Engine) CreateFromTemplate(tpl Template, kind model.ObjectKind) (string, error) {
	if len(e.localEnvelope) == 0 {
		return "", ErrCannotFit
	}
	envArea := math.Abs(e.localEnvelope.SignedArea())
	if envArea <= 0 {
		return "", ErrCannotFit
	}

	fraction := e.cfg.BuildingAreaFraction
	if kind == model.KindParking {
		fraction = e.cfg.ParkingAreaFraction
	}
	min, max := e.localEnvelope.BBox()
	shorter := math.Min(max.X-min.X, max.Y-min.Y)

	base := math.Sqrt(envArea * fraction)
	base = math.Min(base, shorter*e.cfg.MaxSideFraction)
	base = clampF(base, e.cfg.MinDimM, e.cfg.MaxDimM)

	center := e.localEnvelope.Centroid()
	bearing := e.longestEnvelopeEdgeBearing()

	for attempt := 0; attempt < e.cfg.FitAttempts; attempt++ {
		size := base * math.Pow(e.cfg.FitShrink, float64(attempt))
		ring := templateRing(tpl, size)
		placed := make(geo.LocalRing, len(ring))
		for i, p := range ring {
			// Template rings run length along +Y; rotate so length
			// follows the longest envelope edge.
			q := geo.RotateXY(p, geo.XY{}, bearing)
			placed[i] = geo.XY{X: center.X + q.X, Y: center.Y + q.Y}
		}
		if !e.localWithinEnvelope(placed) {
			continue
		}
		e.pushHistory("create " + string(kind))
		obj := e.newObject(kind, e.frame.FromLocalRing(placed))
		e.objects = append(e.objects, obj)
		e.activeID = obj.ID
		return obj.ID, nil
	}
	return "", ErrCannotFit
}

// longestEnvelopeEdgeBearing returns the bearing of the envelope's
// longest edge, so generated shapes align with the parcel's grain.
func (e *Engine) longestEnvelopeEdgeBearing() float64 {
	env := e.localEnvelope
	n := len(env)
	if n >= 2 && env[0] == env[n-1] {
		n--
	}
	bestLen, bestBearing := 0.0, 0.0
	for i := 0; i < n; i++ {
		a, b := env[i], env[(i+1)%n]
		if l := geo.DistanceXY(a, b); l > bestLen {
			bestLen = l
			bestBearing = geo.BearingXY(a, b)
		}
	}
	return bestBearing
}

// templateRing builds a closed shape-local ring with total area close
// to size squared, length axis along +Y, centered on the origin.
func templateRing(tpl Template, size float64) geo.LocalRing {
	switch tpl {
	case TemplateSquare:
		return rectRingLocal(size, size)
	case TemplateStrip:
		// Long thin parking row, 1:4 aspect.
		return rectRingLocal(size/2, size*2)
	case TemplateL:
		return lRingLocal(size)
	case TemplateU:
		return uRingLocal(size)
	default: // TemplateRectangle
		// 1:1.56 aspect keeps area at size squared.
		return rectRingLocal(size/1.25, size*1.25)
	}
}

// rectRingLocal builds a closed w x l rectangle centered on the origin.
func rectRingLocal(w, l float64) geo.LocalRing {
	hw, hl := w/2, l/2
	return geo.LocalRing{
		{X: -hw, Y: -hl}, {X: hw, Y: -hl}, {X: hw, Y: hl}, {X: -hw, Y: hl}, {X: -hw, Y: -hl},
	}
}

// lRingLocal builds an L: a size x size square with the northeast
// quadrant removed, wings 60% of the side.
func lRingLocal(size float64) geo.LocalRing {
	h := size / 2
	t := size * 0.6 // wing thickness
	return geo.LocalRing{
		{X: -h, Y: -h},
		{X: h, Y: -h},
		{X: h, Y: -h + t},
		{X: -h + t, Y: -h + t},
		{X: -h + t, Y: h},
		{X: -h, Y: h},
		{X: -h, Y: -h},
	}
}

// uRingLocal builds a U opening north: a size x size square with a
// central notch removed.
func uRingLocal(size float64) geo.LocalRing {
	h := size / 2
	w := size * 0.3 // wing width
	d := size * 0.3 // base depth
	return geo.LocalRing{
		{X: -h, Y: -h},
		{X: h, Y: -h},
		{X: h, Y: h},
		{X: h - w, Y: h},
		{X: h - w, Y: -h + d},
		{X: -h + w, Y: -h + d},
		{X: -h + w, Y: h},
		{X: -h, Y: h},
		{X: -h, Y: -h},
	}
}
