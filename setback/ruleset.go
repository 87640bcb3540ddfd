package setback

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/groundplan/groundplan/model"
)

// Ruleset is the externally resolved setback ruleset as delivered by
// the host application. Numeric fields are pointers so that "absent"
// and "zero" stay distinguishable; an absent field means no constraint.
type Ruleset struct {
	Facades  RulesetFacades  `yaml:"facades"`
	Fallback RulesetFallback `yaml:"fallback"`
	Complete bool            `yaml:"complete"`
}

// RulesetFacades carries per-category minimums, when known.
type RulesetFacades struct {
	Front   *FacadeRule `yaml:"front"`
	Lateral *FacadeRule `yaml:"lateral"`
	Rear    *FacadeRule `yaml:"rear"`
}

// FacadeRule is the minimum distance for one facade category.
type FacadeRule struct {
	MinM *float64 `yaml:"min_m"`
}

// RulesetFallback carries generic minimums used when a per-category
// value is absent.
type RulesetFallback struct {
	RowMinM        *float64 `yaml:"row_min_m"`
	BoundaryMinM   *float64 `yaml:"boundary_min_m"`
	RearParcelMinM *float64 `yaml:"rear_parcel_min_m"`
}

// LoadRuleset reads and parses a YAML ruleset file.
func LoadRuleset(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("setback: reading ruleset: %w", err)
	}
	return ParseRuleset(data)
}

// ParseRuleset parses a YAML ruleset document.
func ParseRuleset(data []byte) (Ruleset, error) {
	var r Ruleset
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Ruleset{}, fmt.Errorf("setback: parsing ruleset: %w", err)
	}
	return r, nil
}

// Resolve converts the ruleset into applied setbacks. Missing numeric
// fields resolve to 0 ("no constraint") and clear HasData. hasFacade
// selects directional mode; without a facade the envelope engine can
// only apply the maximum distance uniformly.
func (r Ruleset) Resolve(hasFacade bool) model.Setbacks {
	front, okF := firstValue(ruleMin(r.Facades.Front), r.Fallback.RowMinM)
	lateral, okL := firstValue(ruleMin(r.Facades.Lateral), r.Fallback.BoundaryMinM)
	rear, okR := firstValue(ruleMin(r.Facades.Rear), r.Fallback.RearParcelMinM)

	sb := model.Setbacks{
		FrontM:    nonNegative(front),
		LateralM:  nonNegative(lateral),
		RearM:     nonNegative(rear),
		HasData:   okF || okL || okR,
		HasFacade: hasFacade,
	}
	sb.MaxM = math.Max(sb.FrontM, math.Max(sb.LateralM, sb.RearM))
	if hasFacade && sb.HasData {
		sb.Mode = model.ModeDirectional
	} else {
		sb.Mode = model.ModeUniform
	}
	return sb
}

func ruleMin(fr *FacadeRule) *float64 {
	if fr == nil {
		return nil
	}
	return fr.MinM
}

func firstValue(vals ...*float64) (float64, bool) {
	for _, v := range vals {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
