package breakpoint

import (
	"bpq/css"
)

// Len returns number of breakpoints.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all breakpoints in table order.
func (t *Table) Entries() []Breakpoint {
	out := make([]Breakpoint, len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns breakpoint names in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, bp := range t.entries {
		names = append(names, bp.Name)
	}
	return names
}

// Zero returns the first, zero width, breakpoint.
func (t *Table) Zero() Breakpoint {
	return t.entries[0]
}

// Largest returns the last breakpoint, the one without upper bound.
func (t *Table) Largest() Breakpoint {
	return t.entries[len(t.entries)-1]
}

// Lookup returns minimum width of named breakpoint.
func (t *Table) Lookup(name string) (css.Dimension, bool) {
	i, ok := t.index[name]
	if !ok {
		return css.Dimension{}, false
	}
	return t.entries[i].MinWidth, true
}

// Next returns name of the breakpoint following name. There is none for the
// last breakpoint or unknown names.
func (t *Table) Next(name string) (string, bool) {
	bp, ok := t.offset(name, 1)
	return bp.Name, ok
}

// Prev returns name of the breakpoint preceding name.
func (t *Table) Prev(name string) (string, bool) {
	bp, ok := t.offset(name, -1)
	return bp.Name, ok
}

// NextMinWidth returns minimum width of the breakpoint following name.
func (t *Table) NextMinWidth(name string) (css.Dimension, bool) {
	bp, ok := t.offset(name, 1)
	return bp.MinWidth, ok
}

// MaxWidth returns exclusive upper bound of named breakpoint in em: minimum
// width of the next breakpoint less 1px. The largest breakpoint has none.
func (t *Table) MaxWidth(name string) (css.Dimension, bool) {
	next, ok := t.NextMinWidth(name)
	if !ok {
		return css.Dimension{}, false
	}
	return ceiling(next)
}

func (t *Table) offset(name string, delta int) (Breakpoint, bool) {
	i, ok := t.index[name]
	if !ok {
		return Breakpoint{}, false
	}
	i += delta
	if i < 0 || i >= len(t.entries) {
		return Breakpoint{}, false
	}
	return t.entries[i], true
}

// ceiling turns minimum width of the next breakpoint into an upper bound.
func ceiling(next css.Dimension) (css.Dimension, bool) {
	e, ok := toEm(next)
	if !ok {
		return next, false
	}
	e.Value -= pixelStep
	return e, true
}
