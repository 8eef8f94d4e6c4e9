package breakpoint

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"bpq/common"
	"bpq/css"
)

var (
	ErrEmptyQuery     = errors.New("empty breakpoint query")
	ErrMalformedQuery = errors.New("malformed breakpoint query")
)

// Kind tells which payload of a Query is in use.
type Kind int

const (
	KindNamed       Kind = iota // breakpoint from the table
	KindWidth                   // explicit width
	KindOrientation             // landscape or portrait, direction ignored
	KindRetina                  // high density screens, direction ignored
)

const retinaToken = "retina"

// Query is a single request to the synthesizer.
type Query struct {
	Kind        Kind
	Name        string
	Width       css.Dimension
	Orientation common.Orientation
	Direction   common.Direction
}

// Named queries breakpoint by name.
func Named(name string, dir common.Direction) Query {
	return Query{Kind: KindNamed, Name: name, Direction: dir}
}

// Width queries explicit width.
func Width(d css.Dimension, dir common.Direction) Query {
	return Query{Kind: KindWidth, Width: d, Direction: dir}
}

// Orientation queries screen orientation.
func Orientation(o common.Orientation) Query {
	return Query{Kind: KindOrientation, Orientation: o}
}

// Retina queries high density screens.
func Retina() Query {
	return Query{Kind: KindRetina}
}

func (q Query) String() string {
	switch q.Kind {
	case KindNamed:
		return q.Name + " " + q.Direction.String()
	case KindWidth:
		return q.Width.String() + " " + q.Direction.String()
	case KindOrientation:
		return q.Orientation.String()
	case KindRetina:
		return retinaToken
	default:
		return fmt.Sprintf("Kind(%d)", q.Kind)
	}
}

// ParseQuery converts text form of a query into Query. Accepted forms are
// "md", "md down", "md, down", "(md, down)", "768px only", "landscape",
// "portrait" and "retina". Anything that is not a number is taken as a
// breakpoint name and checked later against the table. Unknown direction is
// reported and replaced with up.
func ParseQuery(s string, log *zap.Logger) (Query, error) {
	if log == nil {
		log = zap.NewNop()
	}

	body := strings.TrimSpace(s)
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(body, "("), ")"))
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	switch len(parts) {
	case 0:
		return Query{}, ErrEmptyQuery
	case 1, 2:
	default:
		return Query{}, fmt.Errorf("%w: %q", ErrMalformedQuery, s)
	}

	dir := common.DirectionUp
	if len(parts) == 2 {
		d, err := common.ParseDirection(strings.ToLower(parts[1]))
		if err != nil {
			log.Warn("Unknown direction, using up", zap.String("query", s), zap.Error(err))
		} else {
			dir = d
		}
	}

	token := parts[0]
	lower := strings.ToLower(token)
	if o, err := common.ParseOrientation(lower); err == nil {
		return Orientation(o), nil
	}
	if lower == retinaToken {
		return Retina(), nil
	}
	if d, err := css.ParseDimension(token); err == nil {
		return Width(d, dir), nil
	}
	return Named(token, dir), nil
}
