// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ee builds Earth Engine computation graphs on the Go side and
// encodes them into the REST "Expression" format accepted by the
// value:compute and maps endpoints.
//
// Nothing in this package evaluates imagery. Every method only records a
// function invocation of the remote algorithm catalogue (for example
// "Image.normalizedDifference" or "reduce.median"); the resulting [Value]
// graph is serialized by [Encode] and shipped to the remote engine by the
// adapter package.
//
// The typed wrappers ([Image], [ImageCollection], [FeatureCollection],
// [Feature], [Geometry], [Filter], [List], [Number]) exist so that the
// service layer reads like the analysis it describes:
//
//	composite := ee.LoadImageCollection("COPERNICUS/S2_SR_HARMONIZED").
//		FilterDate("2019-07-01", "2019-10-30").
//		FilterBounds(district).
//		Map(maskClouds).
//		Median()
package ee
