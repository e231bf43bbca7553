// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VisParams controls how a single-band image is rendered into tiles.
type VisParams struct {
	Min float64
	Max float64

	// Palette holds hex colours, with or without a leading '#'.
	Palette []string
}

// TileLayer is a rendered map registered with the remote engine.
type TileLayer struct {
	// Name is the resource name returned by the engine,
	// e.g. "projects/earthengine-legacy/maps/abc-123".
	Name string

	// URLFormat is the XYZ tile template with {z}, {x} and {y} placeholders.
	URLFormat string
}

// AnalysisLayers groups the three layers of the burn/water comparison.
type AnalysisLayers struct {
	DNBR     TileLayer
	NDWI2019 TileLayer
	NDWI2024 TileLayer
}

// NDVILayers groups the vegetation index layers of the two years.
type NDVILayers struct {
	NDVI2019 TileLayer
	NDVI2024 TileLayer
}
