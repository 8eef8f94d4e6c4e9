package breakpoint

import (
	"go.uber.org/zap"

	"bpq/css"
)

const (
	// browserFontSize is the pixel size of 1rem/1em when nothing overrides it.
	browserFontSize = 16.0
	// pixelStep is 1px expressed in em at browserFontSize.
	pixelStep = 1.0 / browserFontSize
)

// StripUnit returns bare magnitude of d whatever its unit is.
func StripUnit(d css.Dimension) float64 {
	return d.Value
}

// Normalizer converts dimensions to rem and em.
type Normalizer struct {
	base css.Dimension
	log  *zap.Logger
}

// NewNormalizer returns normalizer using base as default font size for rem
// conversions. Base may be in px, %, rem or unitless.
func NewNormalizer(base css.Dimension, log *zap.Logger) Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return Normalizer{base: base, log: log.Named("units")}
}

// Base returns configured base font size.
func (n Normalizer) Base() css.Dimension {
	return n.base
}

// ToRem converts d to rem against configured base font size.
func (n Normalizer) ToRem(d css.Dimension) css.Dimension {
	return n.ToRemBase(d, n.base)
}

// ToRemBase converts d to rem against base. Rem values pass through, with
// exact zero turned into unitless zero.
func (n Normalizer) ToRemBase(d, base css.Dimension) css.Dimension {
	r, ok := toRemBase(d, base)
	if !ok {
		n.log.Warn("Unusable base font size, value left unchanged", zap.Stringer("value", d), zap.Stringer("base", base))
	}
	return r
}

// ToRemString is ToRem for raw text. Text which is not a dimension is
// reported and returned as is.
func (n Normalizer) ToRemString(s string) string {
	d, err := css.ParseDimension(s)
	if err != nil {
		n.log.Warn("Unable to convert to rem", zap.String("value", s), zap.Error(err))
		return s
	}
	return n.ToRem(d).String()
}

// ToEm converts d to em. Pixels and unitless numbers go through rem at the
// browser default font size, rem and em are relabelled. Percentages cannot be
// expressed in em, they are reported and returned unchanged.
func (n Normalizer) ToEm(d css.Dimension) css.Dimension {
	e, ok := toEm(d)
	if !ok {
		n.log.Warn("Unable to convert to em, value left unchanged", zap.Stringer("value", d))
	}
	return e
}

func toRemBase(d, base css.Dimension) (css.Dimension, bool) {
	if d.Unit == css.UnitRem {
		if d.IsZero() {
			return css.Unitless(0), true
		}
		return d, true
	}
	px := basePixels(base)
	if px == 0 {
		return d, false
	}
	return css.Rem(StripUnit(d) / px), true
}

// basePixels returns base font size in pixels.
func basePixels(base css.Dimension) float64 {
	switch base.Unit {
	case css.UnitPercent:
		return StripUnit(base) / 100 * browserFontSize
	case css.UnitRem, css.UnitEm:
		return StripUnit(base) * browserFontSize
	default:
		return StripUnit(base)
	}
}

func toEm(d css.Dimension) (css.Dimension, bool) {
	switch d.Unit {
	case css.UnitPx, css.UnitNone:
		r, _ := toRemBase(d, css.Px(browserFontSize))
		return css.Em(StripUnit(r)), true
	case css.UnitRem, css.UnitEm:
		return css.Em(StripUnit(d)), true
	default:
		return d, false
	}
}
