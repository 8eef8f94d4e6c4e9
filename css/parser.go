package css

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads rule content handed to the breakpoint wrapper. It understands
// plain rulesets and @media blocks, everything else is skipped with a warning.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@media" {
				mq := parseMediaQueryFromTokens(parser.Values())
				rules := p.parseRulesets(parser, css.EndAtRuleGrammar)
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
				continue
			}
			skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			for _, rule := range p.parseRuleset(parser, data) {
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
			}
		}
	}
}

// parseRulesets collects rulesets until the given closing grammar (end of an
// @media block) or end of input.
func (p *Parser) parseRulesets(parser *css.Parser, until css.GrammarType) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, until:
			return rules
		case css.BeginRulesetGrammar:
			rules = append(rules, p.parseRuleset(parser, data)...)
		case css.BeginAtRuleGrammar:
			p.log.Debug("Skipping nested @-rule", zap.ByteString("rule", data))
			skipAtRuleBlock(parser)
		}
	}
}

// parseRuleset reads declarations of the ruleset that has just begun and
// returns one rule per grouped selector.
func (p *Parser) parseRuleset(parser *css.Parser, _ []byte) []Rule {
	selectors := splitSelectors(parser.Values())
	decls := p.parseDeclarations(parser)

	rules := make([]Rule, 0, len(selectors))
	for _, selStr := range selectors {
		rules = append(rules, Rule{
			Selector:     parseSelector(selStr),
			Declarations: slices.Clone(decls),
		})
	}
	return rules
}

// splitSelectors rebuilds selector list text from tokens and splits it at
// top level commas. Commas inside functional pseudo-classes or attribute
// selectors stay with their selector.
func splitSelectors(tokens []css.Token) []string {
	var (
		selectors []string
		sb        strings.Builder
		depth     int
	)
	space := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
	}
	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}

	for _, t := range tokens {
		switch t.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				flush()
				continue
			}
		case css.WhitespaceToken:
			space()
			continue
		case css.DelimToken:
			if depth == 0 && len(t.Data) == 1 && strings.ContainsRune(">+~", rune(t.Data[0])) {
				// combinator
				space()
				sb.Write(t.Data)
				sb.WriteByte(' ')
				continue
			}
		}
		sb.Write(t.Data)
	}
	flush()
	return selectors
}

// parseDeclarations parses declarations until EndRulesetGrammar keeping
// source order. Custom properties are kept as written, broken declarations
// are skipped.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				p.log.Debug("Skipping broken declaration", zap.Error(parser.Err()))
				continue
			}
			return decls

		case css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) > 0 {
				decls = append(decls, Declaration{
					Property: strings.ToLower(string(data)),
					Value:    parsePropertyValue(values),
				})
			}

		case css.CustomPropertyGrammar:
			var raw strings.Builder
			for _, v := range parser.Values() {
				raw.Write(v.Data)
			}
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    Value{Raw: strings.TrimSpace(raw.String())},
			})
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func parsePropertyValue(tokens []css.Token) Value {
	raw := joinTokens(tokens)
	val := Value{Raw: raw}

	// Handle single token cases
	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			if v, unit, err := parseDimension(string(t.Data)); err == nil {
				val.Value, val.Unit = v, unit
			}
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		}
		return val
	}

	// Multi-value properties - store as keyword with raw value
	val.Keyword = raw
	return val
}

// joinTokens rebuilds text from tokens collapsing whitespace runs. The
// lexer drops whitespace before "!", it is put back so "none !important"
// survives.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		switch {
		case t.TokenType == css.WhitespaceToken:
			if len(parts) > 0 && parts[len(parts)-1] != " " {
				parts = append(parts, " ")
			}
			continue
		case t.TokenType == css.DelimToken && string(t.Data) == "!":
			if len(parts) > 0 && parts[len(parts)-1] != " " {
				parts = append(parts, " ")
			}
		}
		parts = append(parts, string(t.Data))
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// parseSelector parses a single selector string. Selectors other than
// element, class or element.class keep only their raw text.
func parseSelector(selStr string) Selector {
	selStr = strings.TrimSpace(selStr)
	sel := Selector{Raw: selStr}

	if strings.ContainsAny(selStr, " \t\n+~>[:*#") {
		return sel
	}
	if element, class, found := strings.Cut(selStr, "."); found {
		if strings.Contains(class, ".") {
			// multiple classes
			return sel
		}
		sel.Element = element
		sel.Class = class
	} else {
		sel.Element = selStr
	}
	return sel
}

// parseMediaQueryFromTokens parses a media query prelude from CSS tokens.
// Type is the first media type name before any parenthesized feature.
func parseMediaQueryFromTokens(tokens []css.Token) MediaQuery {
	mq := MediaQuery{Raw: joinTokens(tokens)}
	for _, t := range tokens {
		if t.TokenType == css.LeftParenthesisToken {
			break
		}
		if t.TokenType != css.IdentToken {
			continue
		}
		switch ident := strings.ToLower(string(t.Data)); ident {
		case "only", "not":
			continue
		default:
			mq.Type = ident
		}
		break
	}
	return mq
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
