package breakpoint

import (
	"strings"

	"go.uber.org/zap"

	"bpq/common"
	"bpq/css"
)

const retinaCondition = "(-webkit-min-device-pixel-ratio: 2), (min-resolution: 192dpi)"

// Synthesizer produces media query conditions for a single table. Create one
// per process and share it.
type Synthesizer struct {
	table *Table
	norm  Normalizer
	log   *zap.Logger
}

// NewSynthesizer creates synthesizer for table.
func NewSynthesizer(table *Table, norm Normalizer, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{table: table, norm: norm, log: log.Named("breakpoint")}
}

// Table returns underlying breakpoint table.
func (s *Synthesizer) Table() *Table {
	return s.table
}

// Normalizer returns unit normalizer used by the synthesizer.
func (s *Synthesizer) Normalizer() Normalizer {
	return s.norm
}

// ConditionString parses token with ParseQuery and synthesizes condition for
// it. Unparsable token is reported and results in no condition.
func (s *Synthesizer) ConditionString(token string) string {
	q, err := ParseQuery(token, s.log)
	if err != nil {
		s.log.Warn("Unable to parse breakpoint query", zap.String("query", token), zap.Error(err))
		return ""
	}
	return s.Condition(q)
}

// Condition returns media query condition for q. Empty string means the
// content applies unconditionally. Configuration problems are logged and
// degrade to zero width or empty condition, they never fail.
func (s *Synthesizer) Condition(q Query) string {
	switch q.Kind {
	case KindOrientation:
		return "(orientation: " + q.Orientation.String() + ")"
	case KindRetina:
		return retinaCondition
	}

	var (
		lower, upper css.Dimension
		hasUpper     bool
		named        bool
	)

	switch q.Kind {
	case KindNamed:
		named = true
		w, ok := s.table.Lookup(q.Name)
		if !ok {
			s.log.Warn("Unknown breakpoint, using zero", zap.String("name", q.Name), zap.Strings("known", s.table.Names()))
			w = css.Unitless(0)
		}
		lower = w
		if q.Direction.Bounded() {
			if next, ok := s.table.NextMinWidth(q.Name); ok {
				if upper, hasUpper = ceiling(next); !hasUpper {
					s.log.Warn("Next breakpoint cannot be expressed in em, no upper bound", zap.String("name", q.Name), zap.Stringer("next", next))
				}
			}
		}
	case KindWidth:
		lower = q.Width
	default:
		s.log.Warn("Unsupported breakpoint query", zap.Stringer("query", q))
		return ""
	}

	lower = s.norm.ToEm(lower)
	switch {
	case lower.IsZero():
		lower = css.Em(0)
	case lower.Unit != css.UnitEm:
		return ""
	}

	// zero and up is the default, nothing to guard
	if lower.Value <= 0 && !q.Direction.Bounded() {
		return ""
	}

	switch q.Direction {
	case common.DirectionOnly:
		if !named {
			s.log.Warn("Only named breakpoints can have an only range", zap.Stringer("query", q))
			return ""
		}
		clauses := make([]string, 0, 2)
		if lower.Value > 0 {
			clauses = append(clauses, "(min-width: "+lower.String()+")")
		}
		if hasUpper {
			clauses = append(clauses, "(max-width: "+upper.String()+")")
		}
		return strings.Join(clauses, " and ")

	case common.DirectionDown:
		if !named {
			if lower.Value < 0 {
				s.log.Warn("Negative width in breakpoint query, condition never matches", zap.Stringer("query", q))
			}
			return "(max-width: " + lower.String() + ")"
		}
		if !hasUpper {
			return ""
		}
		return "(max-width: " + upper.String() + ")"

	default:
		return "(min-width: " + lower.String() + ")"
	}
}
