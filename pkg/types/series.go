// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for graphgen: the extracted
// Series, the chart and image kinds the renderer understands, and the typed
// configuration loaded by the CLI.
package types

// DataPoint is one labeled value extracted from free text.
type DataPoint struct {
	// Name is the display label, first character uppercased (e.g. "Small business").
	Name string `json:"name" yaml:"name"`

	// Value is the parsed number. Always finite.
	Value float64 `json:"value" yaml:"value"`
}

// Series is an ordered sequence of DataPoints in the order their labels
// appear in the input. Repeated labels are kept as separate entries.
type Series []DataPoint

// IsEmpty reports whether the series holds no data points.
func (s Series) IsEmpty() bool {
	return len(s) == 0
}

// Total returns the sum of all values.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

// Share returns the value at index i as a fraction of Total. It returns 0
// when the total is 0 or i is out of range.
func (s Series) Share(i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	total := s.Total()
	if total == 0 {
		return 0
	}
	return s[i].Value / total
}

// Names returns the labels in series order.
func (s Series) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}
