package css

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// MediaQuery represents an @media prelude.
type MediaQuery struct {
	Raw  string // Full query text as written after @media
	Type string // Media type of the first branch (e.g. "screen", "print"), may be empty
}

// NewMediaQuery builds a query scoped to mediaType. Every comma separated branch
// of condition gets its own "<mediaType> and" prefix, so a list of alternatives
// never escapes the media type. Empty condition produces a bare media type.
func NewMediaQuery(mediaType, condition string) MediaQuery {
	mq := MediaQuery{Type: firstIdent(mediaType)}
	condition = strings.TrimSpace(condition)
	switch {
	case condition == "":
		mq.Raw = mediaType
	case mediaType == "":
		mq.Raw = condition
	default:
		branches := strings.Split(condition, ",")
		for i, b := range branches {
			branches[i] = mediaType + " and " + strings.TrimSpace(b)
		}
		mq.Raw = strings.Join(branches, ", ")
	}
	return mq
}

// firstIdent returns the media type name, skipping "only" and "not" modifiers.
func firstIdent(s string) string {
	for f := range strings.FieldsSeq(s) {
		switch strings.ToLower(f) {
		case "only", "not":
			continue
		}
		return strings.ToLower(f)
	}
	return ""
}

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "none !important")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "rem"
	Keyword string  // Keyword if applicable: "none", "block", etc.
}

// KeywordValue creates a keyword value. Raw keeps everything verbatim, so
// "none !important" survives a write.
func KeywordValue(raw string) Value {
	kw, _, _ := strings.Cut(raw, " ")
	return Value{Raw: raw, Keyword: strings.ToLower(kw)}
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Selector represents a parsed CSS selector.
type Selector struct {
	Raw     string // Original selector string
	Element string // Element name (e.g., "p", "h1") or empty for class-only
	Class   string // Class name without dot or empty
}

// ClassSelector makes a selector for a single class name.
func ClassSelector(class string) Selector {
	return Selector{Raw: "." + class, Class: class}
}

// IsSimple returns true if this is a simple selector (element, class, or element.class).
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// Declaration is a single "property: value" pair. Custom properties keep
// their name as written.
type Declaration struct {
	Property string
	Value    Value
}

// Rule represents a single CSS rule (selector + declarations). Declarations
// are kept in source order, repeated properties included.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// NewRule creates a rule with a single property.
func NewRule(sel Selector, property string, value Value) Rule {
	return Rule{Selector: sel, Declarations: []Declaration{{Property: property, Value: value}}}
}

// GetProperty returns the value in effect for a property, the last one
// declared.
func (r Rule) GetProperty(name string) (Value, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return Value{}, false
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or MediaBlock is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + properties)
	MediaBlock *MediaBlock // A @media block containing nested rules
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet represents a stylesheet as an ordered list of items.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for content that was not understood
}

// Append adds items to the end of the stylesheet.
func (s *Stylesheet) Append(items ...StylesheetItem) {
	s.Items = append(s.Items, items...)
}

// Rules returns all top-level rules in source order. Rules inside @media
// blocks are not included.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []MediaBlock {
	var blocks []MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, *item.MediaBlock)
		}
	}
	return blocks
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.Raw == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declarations are written in the order they were added.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w with every line prefixed by indent.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector.Raw)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeDeclarations(w, rule.Declarations, indent+"  ")
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeDeclarations writes declarations in order.
func writeDeclarations(w io.Writer, decls []Declaration, indent string) (int, error) {
	var total int
	for _, d := range decls {
		n, err := fmt.Fprintf(w, "%s%s: %s;\n", indent, d.Property, d.Value.Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
