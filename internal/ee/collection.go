// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ee

import "fmt"

// ImageCollection is a deferred stack of images.
type ImageCollection struct{ v *Value }

// LoadImageCollection references a catalogue image collection.
func LoadImageCollection(id string) ImageCollection {
	return ImageCollection{v: Invoke("ImageCollection.load", map[string]*Value{"id": Constant(id)})}
}

func (c ImageCollection) Value() *Value { return c.v }

// Filter keeps the images matching f.
func (c ImageCollection) Filter(f Filter) ImageCollection {
	return ImageCollection{v: filterCollection(c.v, f)}
}

// FilterDate keeps images acquired in [start, end).
func (c ImageCollection) FilterDate(start, end string) ImageCollection {
	return c.Filter(FilterDate(start, end))
}

// FilterBounds keeps images whose footprint intersects geometry.
func (c ImageCollection) FilterBounds(geometry Geometry) ImageCollection {
	return c.Filter(FilterBounds(geometry))
}

// Map applies fn to every image on the server.
func (c ImageCollection) Map(fn func(Image) Image) ImageCollection {
	algorithm := mappingFunction(func(arg *Value) *Value { return fn(Image{v: arg}).v })

	return ImageCollection{v: Invoke("Collection.map", map[string]*Value{
		"collection":    c.v,
		"baseAlgorithm": algorithm,
	})}
}

// Median reduces the stack to a per-pixel, per-band median.
func (c ImageCollection) Median() Image {
	return Image{v: Invoke("reduce.median", map[string]*Value{"collection": c.v})}
}

// Mean reduces the stack to a per-pixel, per-band mean.
func (c ImageCollection) Mean() Image {
	return Image{v: Invoke("reduce.mean", map[string]*Value{"collection": c.v})}
}

// First is the first image of the collection.
func (c ImageCollection) First() Image {
	return Image{v: Invoke("Collection.first", map[string]*Value{"collection": c.v})}
}

// Size evaluates to the number of images.
func (c ImageCollection) Size() Number {
	return Number{v: Invoke("Collection.size", map[string]*Value{"collection": c.v})}
}

// FeatureCollection is a deferred vector table.
type FeatureCollection struct{ v *Value }

// LoadFeatureCollection references a catalogue table.
func LoadFeatureCollection(id string) FeatureCollection {
	return FeatureCollection{v: Invoke("Collection.loadTable", map[string]*Value{"tableId": Constant(id)})}
}

func (c FeatureCollection) Value() *Value { return c.v }

// Filter keeps the features matching f.
func (c FeatureCollection) Filter(f Filter) FeatureCollection {
	return FeatureCollection{v: filterCollection(c.v, f)}
}

// FilterBounds keeps features intersecting geometry.
func (c FeatureCollection) FilterBounds(geometry Geometry) FeatureCollection {
	return c.Filter(FilterBounds(geometry))
}

// First is the first feature of the collection.
func (c FeatureCollection) First() Feature {
	return Feature{v: Invoke("Collection.first", map[string]*Value{"collection": c.v})}
}

// Size evaluates to the number of features.
func (c FeatureCollection) Size() Number {
	return Number{v: Invoke("Collection.size", map[string]*Value{"collection": c.v})}
}

// Distance rasterizes the distance in meters to the nearest feature, up to
// searchRadius. Pixels farther than that are masked.
func (c FeatureCollection) Distance(searchRadius, maxError float64) Image {
	return Image{v: Invoke("Collection.distance", map[string]*Value{
		"features":     c.v,
		"searchRadius": Constant(searchRadius),
		"maxError":     Constant(maxError),
	})}
}

func filterCollection(collection *Value, f Filter) *Value {
	return Invoke("Collection.filter", map[string]*Value{
		"collection": collection,
		"filter":     f.v,
	})
}

// mappingFunction builds a one-argument function definition. The argument
// name encodes the nesting depth so that nested maps never shadow each
// other, which requires building the body twice.
func mappingFunction(body func(arg *Value) *Value) *Value {
	probe := body(argument("_MAPPING_VAR_PROBE"))
	name := fmt.Sprintf("_MAPPING_VAR_%d_0", functionDepth(probe))

	return function([]string{name}, body(argument(name)))
}
