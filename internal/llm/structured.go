package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a decoded value before ExtractJSON returns it.
type Validator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of raw model text and decodes
// it into T. Local models rarely return clean JSON: replies arrive wrapped
// in markdown fences, prefixed with chatter, sprinkled with // comments, or
// carrying bare leading-decimal numbers like .8. All of that is repaired
// before decoding. A non-nil validate runs on the decoded value; its error
// is wrapped in ErrInvalidOutput like every other failure here.
func ExtractJSON[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	obj := firstObject(dropFences(raw))
	if obj == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(sanitize(obj)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validate != nil {
		if err := validate(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// dropFences removes markdown fence marker lines, keeping the content
// between them.
func dropFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstObject returns the first brace-balanced { ... } block, ignoring
// braces inside string values.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitize makes near-JSON decodable: it strips // line comments and puts a
// zero in front of bare leading-decimal numbers (.8 becomes 0.8), leaving
// string values untouched.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(lastByte(s, i-1)):
			b.WriteByte('0')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// lastByte returns the closest non-whitespace byte at or before i, or 0.
func lastByte(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return s[i]
		}
	}
	return 0
}

// startsNumber reports whether a '.' after c begins a numeric literal
// rather than continuing one (as in "1.5").
func startsNumber(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
