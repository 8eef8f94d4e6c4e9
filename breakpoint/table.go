package breakpoint

import (
	"cmp"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bpq/css"
)

var (
	ErrEmptyTable    = errors.New("breakpoint table is empty")
	ErrEmptyName     = errors.New("breakpoint name is empty")
	ErrDuplicateName = errors.New("duplicate breakpoint name")
	ErrNonZeroFirst  = errors.New("first breakpoint must be exactly zero")
	ErrNotAscending  = errors.New("breakpoints are not strictly ascending")
	ErrIncomparable  = errors.New("breakpoint widths are not comparable")
)

// Breakpoint is a named minimum viewport width.
type Breakpoint struct {
	Name     string
	MinWidth css.Dimension
}

// Table is an ordered set of breakpoints. It is never modified after
// construction and may be shared freely.
type Table struct {
	entries []Breakpoint
	index   map[string]int
}

// NewTable validates entries and builds a table. Missing zero breakpoint,
// empty or duplicate names are errors. Ordering problems are only logged,
// see AssertAscending.
func NewTable(entries []Breakpoint, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries: make([]Breakpoint, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(t.entries, entries)

	for i, bp := range t.entries {
		if bp.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if _, exists := t.index[bp.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, bp.Name)
		}
		t.index[bp.Name] = i
	}

	if first := t.entries[0]; !first.MinWidth.IsZero() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNonZeroFirst, first.Name, first.MinWidth)
	}

	for _, err := range multierr.Errors(AssertAscending(t.entries)) {
		log.Warn("Bad breakpoint table", zap.Error(err))
	}
	return t, nil
}

// AssertAscending checks that widths are strictly ascending in table order.
// Returned error combines one diagnostic per offending adjacent pair, use
// multierr.Errors to get them individually.
func AssertAscending(entries []Breakpoint) (err error) {
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		c, ok := compareWidths(prev.MinWidth, cur.MinWidth)
		switch {
		case !ok:
			err = multierr.Append(err, fmt.Errorf("%w: %s (%s) and %s (%s)",
				ErrIncomparable, prev.Name, prev.MinWidth, cur.Name, cur.MinWidth))
		case c >= 0:
			err = multierr.Append(err, fmt.Errorf("%w: %s (%s) is not less than %s (%s)",
				ErrNotAscending, prev.Name, prev.MinWidth, cur.Name, cur.MinWidth))
		}
	}
	return err
}

// compareWidths compares two widths. Bare zero compares with anything,
// otherwise both sides must share a unit or be convertible to em.
func compareWidths(a, b css.Dimension) (int, bool) {
	if a.Unit == b.Unit || isBareZero(a) || isBareZero(b) {
		return cmp.Compare(a.Value, b.Value), true
	}
	ae, aok := toEm(a)
	be, bok := toEm(b)
	if !aok || !bok {
		return 0, false
	}
	return cmp.Compare(ae.Value, be.Value), true
}

func isBareZero(d css.Dimension) bool {
	return d.IsZero() && d.Unit == css.UnitNone
}
