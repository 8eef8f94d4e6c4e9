package breakpoint

import (
	"go.uber.org/zap"

	"bpq/css"
)

// screenMedia is the media type every breakpoint guard is scoped to.
const screenMedia = "screen"

// MediaQuery returns the "screen and <condition>" guard for q. False means q
// produces no condition and nothing needs to be guarded.
func (s *Synthesizer) MediaQuery(q Query) (css.MediaQuery, bool) {
	cond := s.Condition(q)
	if cond == "" {
		return css.MediaQuery{}, false
	}
	return css.NewMediaQuery(screenMedia, cond), true
}

// Wrap guards rules with the condition for q. Without condition rules are
// returned as plain items, otherwise as a single "screen and <condition>"
// media block.
func (s *Synthesizer) Wrap(q Query, rules ...css.Rule) []css.StylesheetItem {
	if len(rules) == 0 {
		return nil
	}

	mq, ok := s.MediaQuery(q)
	if !ok {
		items := make([]css.StylesheetItem, 0, len(rules))
		for i := range rules {
			items = append(items, css.StylesheetItem{Rule: &rules[i]})
		}
		return items
	}
	return []css.StylesheetItem{{
		MediaBlock: &css.MediaBlock{
			Query: mq,
			Rules: rules,
		},
	}}
}

// WrapCSS reads rules from data and guards them with the condition for q.
// Media blocks found in data are kept after wrapped rules as they are.
func (s *Synthesizer) WrapCSS(q Query, data []byte, source ...string) *css.Stylesheet {
	in := css.NewParser(s.log).Parse(data, source...)

	out := &css.Stylesheet{Warnings: in.Warnings}
	out.Append(s.Wrap(q, in.Rules()...)...)
	for _, mb := range in.MediaBlocks() {
		s.log.Warn("Nested media block left unwrapped", zap.String("query", mb.Query.Raw))
		out.Append(css.StylesheetItem{MediaBlock: &mb})
		out.Warnings = append(out.Warnings, "nested media block left unwrapped: "+mb.Query.Raw)
	}
	return out
}
