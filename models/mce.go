// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
	"strings"
)

// DefaultWeight is the percentage used for absent or unreadable weights.
const DefaultWeight = 50.0

// MCEWeights are the criterion weights, each in [0, 1].
type MCEWeights struct {
	Peat        float64
	Degradation float64
	Access      float64
	Hydrology   float64
}

// DefaultMCEWeights gives every criterion the default weight.
func DefaultMCEWeights() MCEWeights {
	w := DefaultWeight / 100
	return MCEWeights{Peat: w, Degradation: w, Access: w, Hydrology: w}
}

// Total is the sum of all weights.
func (w MCEWeights) Total() float64 {
	return w.Peat + w.Degradation + w.Access + w.Hydrology
}

// MCERequest describes one weighted overlay rendering.
type MCERequest struct {
	Weights MCEWeights

	// Normalize divides the weighted sum by the total weight so the score
	// stays in [0, 1] regardless of the weights chosen.
	Normalize bool

	// Min and Max override the rendering range when set.
	Min *float64
	Max *float64
}

// DefaultMCERequest is the request served when no parameters are given.
func DefaultMCERequest() MCERequest {
	return MCERequest{Weights: DefaultMCEWeights(), Normalize: true}
}

// ParseWeight converts a percentage query value into a weight in [0, 1].
// Empty, unparsable and non-finite input falls back to DefaultWeight; other
// values are clamped to [0, 100] before scaling. It never fails.
func ParseWeight(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = DefaultWeight
	}

	return math.Min(math.Max(v, 0), 100) / 100
}
