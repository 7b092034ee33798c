package generation

import (
	"bytes"
	"encoding/json"
)

// ScanOutcome tags the result of recovering a JSON array from a reply.
type ScanOutcome int

// Scan outcomes.
const (
	// ScanParsed means a JSON array was recovered.
	ScanParsed ScanOutcome = iota
	// ScanNotFound means the reply contains no '[' at all.
	ScanNotFound
	// ScanMalformed means bracketed spans exist but none parse as an array.
	ScanMalformed
)

// ScanResult is the tagged result of ExtractArray.
type ScanResult struct {
	Outcome  ScanOutcome
	Elements []json.RawMessage
}

// span is a balanced top-level [...] region of the input.
type span struct {
	start, end int
}

// scanSpans finds non-overlapping, structurally balanced [...] spans.
// Brackets inside JSON string literals are ignored. An unbalanced '[' is
// reported via unclosed and scanning resumes one byte after it.
func scanSpans(s string) (spans []span, unclosed bool) {
	i := 0
	for i < len(s) {
		if s[i] != '[' {
			i++
			continue
		}

		end, ok := matchBracket(s, i)
		if !ok {
			unclosed = true
			i++
			continue
		}
		spans = append(spans, span{start: i, end: end + 1})
		i = end + 1
	}
	return spans, unclosed
}

// matchBracket returns the index of the bracket closing the '[' at start.
func matchBracket(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
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

		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				if c != ']' {
					return 0, false
				}
				return i, true
			}
			if depth < 0 {
				return 0, false
			}
		}
	}
	return 0, false
}

// ExtractArray recovers a JSON array from a free-form model reply.
//
// The first balanced span that parses as an array of objects wins; failing
// that, the first span that parses as any array. A reply without any '['
// yields ScanNotFound.
func ExtractArray(reply string) ScanResult {
	spans, unclosed := scanSpans(reply)
	if len(spans) == 0 {
		if unclosed {
			return ScanResult{Outcome: ScanMalformed}
		}
		return ScanResult{Outcome: ScanNotFound}
	}

	var fallback []json.RawMessage
	found := false
	for _, sp := range spans {
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(reply[sp.start:sp.end]), &elems); err != nil {
			continue
		}
		if allObjects(elems) {
			return ScanResult{Outcome: ScanParsed, Elements: elems}
		}
		if !found {
			fallback, found = elems, true
		}
	}

	if found {
		return ScanResult{Outcome: ScanParsed, Elements: fallback}
	}
	return ScanResult{Outcome: ScanMalformed}
}

// allObjects reports whether elems is non-empty and every element is a JSON object.
func allObjects(elems []json.RawMessage) bool {
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) == 0 || e[0] != '{' {
			return false
		}
	}
	return true
}
