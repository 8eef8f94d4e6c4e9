// Package common keeps enums shared between the query core, the preset
// generator and configuration, so none of them has to import the others just
// to spell a direction.
package common

//go:generate go tool go-enum --names --marshal

// Direction of a breakpoint range.
// ENUM(up, down, only)
type Direction int

// Screen orientation.
// ENUM(landscape, portrait)
type Orientation int

// Display value used by print visibility toggles.
// ENUM(block, inline, inline-block)
type Display int

// Bounded reports whether direction needs an upper bound.
func (d Direction) Bounded() bool {
	return d == DirectionDown || d == DirectionOnly
}
