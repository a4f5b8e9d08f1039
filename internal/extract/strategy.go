// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/graphgen/pkg/types"
)

// percentMarker matches a number immediately followed by '%': "50%", "12.5%".
var percentMarker = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// labelRun matches the text between two markers when it is a valid label:
// optional leading whitespace, then letters, digits and spaces only.
var labelRun = regexp.MustCompile(`^\s*([\p{L}0-9 ]+)$`)

// numberToken matches the numbers the extractor accepts. No sign, exponent or
// thousands separator.
var numberToken = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)$`)

// PercentPattern reads "<number>% <label>" fragments. A label runs from the
// marker to the next "<number>%" or the end of the text, so multi-word labels
// like "small business" survive intact. A fragment whose label holds any
// other character is skipped.
type PercentPattern struct{}

// Name implements Strategy.
func (PercentPattern) Name() string { return "percent-pattern" }

// Extract implements Strategy.
func (PercentPattern) Extract(text string) types.Series {
	markers := percentMarker.FindAllStringSubmatchIndex(text, -1)
	series := types.Series{}

	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		// "-5%" is a negative number, which the extractor does not accept.
		if m[0] > 0 && text[m[0]-1] == '-' {
			continue
		}

		label := labelRun.FindStringSubmatch(text[m[1]:end])
		if label == nil {
			continue
		}
		name := strings.TrimSpace(label[1])
		if name == "" {
			continue
		}

		value, ok := parseNumber(text[m[2]:m[3]])
		if !ok {
			continue
		}
		series = append(series, types.DataPoint{Name: titleFirst(name), Value: value})
	}

	return series
}

// TokenPairs reads whitespace-separated tokens two at a time. It accepts
// "50% residence" (percent-suffixed number, then label) as well as bare
// "50 residence" pairs.
type TokenPairs struct{}

// Name implements Strategy.
func (TokenPairs) Name() string { return "token-pairs" }

// Extract implements Strategy.
func (TokenPairs) Extract(text string) types.Series {
	tokens := strings.Fields(text)
	series := types.Series{}

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		if strings.HasSuffix(tok, "%") {
			// A percent token needs a non-numeric label after it.
			if i+1 >= len(tokens) || isNumeric(tokens[i+1]) {
				i++
				continue
			}
			value, ok := parseNumber(strings.TrimSuffix(tok, "%"))
			name := strings.Trim(tokens[i+1], "%")
			i += 2
			if ok && name != "" {
				series = append(series, types.DataPoint{Name: titleFirst(name), Value: value})
			}
			continue
		}

		if i+1 >= len(tokens) {
			break
		}
		value, ok := parseNumber(tok)
		name := tokens[i+1]
		i += 2
		if ok {
			series = append(series, types.DataPoint{Name: titleFirst(name), Value: value})
		}
	}

	return series
}

// parseNumber parses s as a finite, non-negative decimal.
func parseNumber(s string) (float64, bool) {
	if !numberToken.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// isNumeric reports whether tok reads as a number, with or without a '%' suffix.
func isNumeric(tok string) bool {
	_, ok := parseNumber(strings.TrimSuffix(tok, "%"))
	return ok
}

// titleFirst uppercases the first rune of s and keeps the rest verbatim:
// "small business" becomes "Small business", not "Small Business".
func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
