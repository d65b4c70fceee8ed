package petals

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTemplate is the description rendered when no template is given:
// petal size followed by its percentage with one fractional digit.
const DefaultTemplate = "{size} ({percentage:.1f}%)"

// Recognized substitution fields.
const (
	fieldLogic      = "logic"
	fieldSize       = "size"
	fieldPercentage = "percentage"
)

type segKind uint8

const (
	segLiteral segKind = iota
	segLogic
	segSize
	segPercentage
)

// segment is one parsed template piece: literal text or a field slot.
// prec is the fractional-digit count for a percentage slot; -1 means
// "shortest exact representation".
type segment struct {
	kind segKind
	text string
	prec int
}

// Template is a parsed petal-description template. Templates are immutable
// after parsing and safe for concurrent Render calls.
type Template struct {
	segs []segment
}

// ParseTemplate parses a description template.
//
// Syntax: literal text with `{field}` slots, where field is one of
// `logic`, `size` or `percentage`. The percentage field accepts an
// optional precision suffix in the form `{percentage:.1f}` (any digit
// count). Unbalanced braces, unknown fields and malformed precision
// specs are rejected with ErrBadTemplate.
func ParseTemplate(src string) (*Template, error) {
	var segs []segment
	rest := src
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, fmt.Errorf("%w: unbalanced '}' in %q", ErrBadTemplate, src)
			}
			segs = append(segs, segment{kind: segLiteral, text: rest})

			break
		}
		if lit := rest[:open]; lit != "" {
			if strings.IndexByte(lit, '}') >= 0 {
				return nil, fmt.Errorf("%w: unbalanced '}' in %q", ErrBadTemplate, src)
			}
			segs = append(segs, segment{kind: segLiteral, text: lit})
		}
		length := strings.IndexByte(rest[open:], '}')
		if length < 0 {
			return nil, fmt.Errorf("%w: unbalanced '{' in %q", ErrBadTemplate, src)
		}
		seg, err := parseField(rest[open+1 : open+length])
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		rest = rest[open+length+1:]
	}

	return &Template{segs: segs}, nil
}

// parseField parses the inside of one `{...}` slot.
func parseField(body string) (segment, error) {
	name, spec, hasSpec := strings.Cut(body, ":")
	switch name {
	case fieldLogic:
		if hasSpec {
			return segment{}, fmt.Errorf("%w: field %q takes no format spec", ErrBadTemplate, name)
		}

		return segment{kind: segLogic}, nil
	case fieldSize:
		if hasSpec {
			return segment{}, fmt.Errorf("%w: field %q takes no format spec", ErrBadTemplate, name)
		}

		return segment{kind: segSize}, nil
	case fieldPercentage:
		prec := -1
		if hasSpec {
			p, err := parsePrecision(spec)
			if err != nil {
				return segment{}, err
			}
			prec = p
		}

		return segment{kind: segPercentage, prec: prec}, nil
	default:
		return segment{}, fmt.Errorf("%w: unknown field %q", ErrBadTemplate, name)
	}
}

// parsePrecision parses a `.Nf` precision spec into N.
func parsePrecision(spec string) (int, error) {
	if len(spec) < 3 || spec[0] != '.' || spec[len(spec)-1] != 'f' {
		return 0, fmt.Errorf("%w: bad precision spec %q, want \".<digits>f\"", ErrBadTemplate, spec)
	}
	prec, err := strconv.Atoi(spec[1 : len(spec)-1])
	if err != nil || prec < 0 {
		return 0, fmt.Errorf("%w: bad precision spec %q, want \".<digits>f\"", ErrBadTemplate, spec)
	}

	return prec, nil
}

// Render substitutes the three field values into the template.
func (t *Template) Render(logic string, size int, percentage float64) string {
	var b strings.Builder
	for _, s := range t.segs {
		switch s.kind {
		case segLiteral:
			b.WriteString(s.text)
		case segLogic:
			b.WriteString(logic)
		case segSize:
			b.WriteString(strconv.Itoa(size))
		case segPercentage:
			b.WriteString(strconv.FormatFloat(percentage, 'f', s.prec, 64))
		}
	}

	return b.String()
}
