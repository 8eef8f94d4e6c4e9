package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	ErrNotDimension    = errors.New("not a numeric dimension")
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// Unit of a Dimension.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitRem     Unit = "rem"
	UnitEm      Unit = "em"
	UnitPercent Unit = "%"
)

// precision keeps float noise out of generated text; 1/16em needs 4 digits.
const precision = 1e5

func (u Unit) valid() bool {
	switch u {
	case UnitNone, UnitPx, UnitRem, UnitEm, UnitPercent:
		return true
	}
	return false
}

// Dimension is a number tagged with a unit.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Px, Rem, Em and Unitless are shorthand constructors.
func Px(v float64) Dimension       { return Dimension{Value: v, Unit: UnitPx} }
func Rem(v float64) Dimension      { return Dimension{Value: v, Unit: UnitRem} }
func Em(v float64) Dimension       { return Dimension{Value: v, Unit: UnitEm} }
func Percent(v float64) Dimension  { return Dimension{Value: v, Unit: UnitPercent} }
func Unitless(v float64) Dimension { return Dimension{Value: v} }

// IsZero reports exact zero regardless of unit.
func (d Dimension) IsZero() bool {
	return d.Value == 0
}

// String renders dimension as CSS text.
func (d Dimension) String() string {
	v := math.Round(d.Value*precision) / precision
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + string(d.Unit)
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(text []byte) error {
	v, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDimension parses a single CSS number, percentage or dimension token
// ("0", "544px", "34rem", "100%"). Anything else is ErrNotDimension, units
// outside of px, rem, em and % are ErrUnsupportedUnit.
func ParseDimension(s string) (Dimension, error) {
	lexer := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))

	var (
		d    Dimension
		seen bool
	)
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if !seen {
				return Dimension{}, fmt.Errorf("%q is %w", s, ErrNotDimension)
			}
			return d, nil
		case css.WhitespaceToken:
			continue
		}
		if seen {
			return Dimension{}, fmt.Errorf("%q is %w", s, ErrNotDimension)
		}
		seen = true

		switch tt {
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return Dimension{}, fmt.Errorf("%q is %w: %w", s, ErrNotDimension, err)
			}
			d = Unitless(v)
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return Dimension{}, fmt.Errorf("%q is %w: %w", s, ErrNotDimension, err)
			}
			d = Percent(v)
		case css.DimensionToken:
			v, unit, err := parseDimension(string(data))
			if err != nil {
				return Dimension{}, fmt.Errorf("%q is %w: %w", s, ErrNotDimension, err)
			}
			if !Unit(unit).valid() {
				return Dimension{}, fmt.Errorf("%q: %w %q", s, ErrUnsupportedUnit, unit)
			}
			d = Dimension{Value: v, Unit: Unit(unit)}
		default:
			return Dimension{}, fmt.Errorf("%q is %w", s, ErrNotDimension)
		}
	}
}

// parseDimension splits a dimension token into its number and unit.
func parseDimension(s string) (float64, string, error) {
	end := numberEnd(s)
	if end == 0 {
		return 0, "", strconv.ErrSyntax
	}
	num, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", err
	}
	return num, strings.ToLower(s[end:]), nil
}

// numberEnd returns the length of the CSS number at the start of s: sign,
// digits, fraction and an exponent only when digits follow it, so the "e"
// of "em" stays with the unit.
func numberEnd(s string) int {
	digits := func(i int) int {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i
	}

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = digits(i)
	if i+1 < len(s) && s[i] == '.' && s[i+1] >= '0' && s[i+1] <= '9' {
		i = digits(i + 1)
	}
	if i == start {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(j); k > j {
			i = k
		}
	}
	return i
}
