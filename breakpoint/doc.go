// Package breakpoint turns named or numeric viewport thresholds into media
// query conditions.
//
// A Table holds the ordered breakpoint configuration. It must start with the
// zero breakpoint and should be strictly ascending; violations of the latter
// are reported, not fatal. A Synthesizer built over a Table answers queries:
//
//	table, err := breakpoint.NewTable([]breakpoint.Breakpoint{
//		{Name: "xs", MinWidth: css.Unitless(0)},
//		{Name: "sm", MinWidth: css.Px(544)},
//		{Name: "md", MinWidth: css.Px(768)},
//	}, log)
//	synth := breakpoint.NewSynthesizer(table, breakpoint.NewNormalizer(css.Percent(100), log), log)
//
//	synth.Condition(breakpoint.Named("md", common.DirectionUp))   // (min-width: 48em)
//	synth.Condition(breakpoint.Named("sm", common.DirectionDown)) // (max-width: 47.9375em)
//	synth.Condition(breakpoint.Named("xs", common.DirectionUp))   // "" - no guard needed
//
// # Directions
//
//   - up: at or above the lower bound.
//   - down: at or below the bound. For named breakpoints the bound is the next
//     breakpoint minus 1/16em, so adjacent ranges neither overlap nor leave a gap.
//     For numbers the number itself is the bound.
//   - only: between a named breakpoint and its ceiling.
//
// All widths are emitted in em, pixels are converted at the 16px browser
// default. Bad references never stop generation: they are logged and the
// affected query falls back to zero or to an empty condition.
package breakpoint
