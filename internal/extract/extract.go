// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns loosely formatted text such as
// "50% residence, 10% commercial" into an ordered Series of labeled values.
//
// Extraction never fails. Fragments that cannot be read as a (number, label)
// pair are dropped and the caller receives whatever was recognised, possibly
// an empty Series. All functions are pure and safe for concurrent use.
package extract

import (
	"strings"

	"github.com/pdiddy/graphgen/pkg/types"
)

// NoStrategy is reported by Explain when no strategy produced a data point.
const NoStrategy = "none"

// Strategy is one extraction pass over normalized text. A strategy that
// recognises nothing returns an empty Series.
type Strategy interface {
	// Name identifies the strategy in logs and --explain output.
	Name() string
	// Extract reads data points from text that has already been normalized.
	Extract(text string) types.Series
}

// Chain runs strategies in order. The first one that returns a non-empty
// Series wins and later strategies are not consulted.
type Chain []Strategy

// DefaultChain tries the percentage-led pattern first and falls back to
// whitespace token pairs.
var DefaultChain = Chain{PercentPattern{}, TokenPairs{}}

// Extract normalizes raw and returns the Series from the first strategy that
// recognises anything.
func (c Chain) Extract(raw string) types.Series {
	series, _ := c.Explain(raw)
	return series
}

// Explain is Extract plus the name of the strategy that produced the Series,
// or NoStrategy when the Series is empty.
func (c Chain) Explain(raw string) (types.Series, string) {
	text := Normalize(raw)
	for _, s := range c {
		if series := s.Extract(text); len(series) > 0 {
			return series, s.Name()
		}
	}
	return types.Series{}, NoStrategy
}

// Extract runs the DefaultChain over raw.
func Extract(raw string) types.Series {
	return DefaultChain.Extract(raw)
}

// Explain runs the DefaultChain over raw and reports which strategy matched.
func Explain(raw string) (types.Series, string) {
	return DefaultChain.Explain(raw)
}

// separatorReplacer maps every line break and comma to one space.
var separatorReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	",", " ",
)

// Normalize folds line breaks and commas into spaces and trims the result,
// so multi-line and comma-separated input read the same. Digits, '%' and
// letters are left untouched.
func Normalize(raw string) string {
	return strings.TrimSpace(separatorReplacer.Replace(raw))
}
