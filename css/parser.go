// Package css parses braille style sheets. Syntax is a subset of CSS: simple
// and descendant selectors, declarations; at-rules are skipped.
package css

import (
	"bytes"
	"maps"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses style sheets into structured rules.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses style sheet text. Optional source identifies what is being
// parsed for debug logging.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing stylesheet", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("Stylesheet parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(data, parser.Values())
			props := p.parseDeclarations(parser)
			for _, s := range selectors {
				sel := p.parseSelector(s, sheet)
				if !sel.IsSimple() {
					continue
				}
				sheet.Rules = append(sheet.Rules, Rule{
					Selector:   sel,
					Properties: maps.Clone(props),
					Order:      len(sheet.Rules),
				})
			}
		}
	}
}

func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = parseValue(values)
			}
		}
	}
}

func parseValue(tokens []css.Token) Value {
	var raw strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if raw.Len() > 0 {
				raw.WriteByte(' ')
			}
			continue
		}
		raw.Write(t.Data)
	}
	val := Value{Raw: strings.TrimSpace(raw.String())}

	// multi token values are kept as keywords
	single := len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken)
	if !single {
		val.Keyword = val.Raw
		return val
	}

	t := tokens[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Value, val.Unit = parseDimension(string(t.Data))
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	default:
		val.Keyword = val.Raw
	}
	return val
}

func parseDimension(s string) (float64, string) {
	end := 0
	for i, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' {
			break
		}
		end = i + 1
	}
	if end == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:end], 64)
	return num, strings.ToLower(s[end:])
}

func (p *Parser) parseSelector(s string, sheet *Stylesheet) Selector {
	if strings.ContainsAny(s, "+~>[:") {
		sheet.Warnings = append(sheet.Warnings, "unsupported selector: "+s)
		p.log.Debug("Skipping unsupported selector", zap.String("selector", s))
		return Selector{Raw: s}
	}

	parts := strings.Fields(s)
	var sel *Selector
	for _, part := range parts {
		next := parseSimpleSelector(part)
		if !next.IsSimple() {
			return Selector{Raw: s}
		}
		next.Ancestor = sel
		sel = &next
	}
	if sel == nil {
		return Selector{Raw: s}
	}
	sel.Raw = strings.Join(parts, " ")
	return *sel
}

func parseSimpleSelector(s string) Selector {
	sel := Selector{Raw: s}
	if element, class, found := strings.Cut(s, "."); found {
		sel.Element, sel.Class = element, class
	} else {
		sel.Element = s
	}
	if sel.Element == "*" {
		sel.Element = ""
	}
	return sel
}

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

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
