// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ee

// Image is a deferred raster computation.
type Image struct{ v *Value }

// NewImage wraps an arbitrary node that evaluates to an image.
func NewImage(v *Value) Image { return Image{v: v} }

// LoadImage references a single catalogue asset.
func LoadImage(id string) Image {
	return Image{v: Invoke("Image.load", map[string]*Value{"id": Constant(id)})}
}

// ConstantImage is an image with the same value in every pixel. Plain numbers
// passed to image arithmetic are promoted through it.
func ConstantImage(value float64) Image {
	return Image{v: Invoke("Image.constant", map[string]*Value{"value": Constant(value)})}
}

// Value exposes the underlying graph node.
func (i Image) Value() *Value { return i.v }

func (i Image) invoke(name, self string, args map[string]*Value) Image {
	all := map[string]*Value{self: i.v}
	for k, v := range args {
		all[k] = v
	}
	return Image{v: Invoke(name, all)}
}

func (i Image) binary(name string, other Image) Image {
	return Image{v: Invoke(name, map[string]*Value{"image1": i.v, "image2": other.v})}
}

// Select keeps only the named bands.
func (i Image) Select(bands ...string) Image {
	return i.invoke("Image.select", "input", map[string]*Value{"bandSelectors": Constant(bands)})
}

// Rename replaces band names positionally.
func (i Image) Rename(names ...string) Image {
	return i.invoke("Image.rename", "input", map[string]*Value{"names": Constant(names)})
}

// BandNames evaluates to the list of band names.
func (i Image) BandNames() List {
	return List{v: Invoke("Image.bandNames", map[string]*Value{"image": i.v})}
}

// Clip masks everything outside geometry.
func (i Image) Clip(geometry Geometry) Image {
	return i.invoke("Image.clip", "input", map[string]*Value{"geometry": geometry.v})
}

// UpdateMask intersects the current mask with mask.
func (i Image) UpdateMask(mask Image) Image {
	return i.invoke("Image.updateMask", "image", map[string]*Value{"mask": mask.v})
}

// Unmask replaces masked pixels with value.
func (i Image) Unmask(value float64) Image {
	return i.invoke("Image.unmask", "input", map[string]*Value{"value": ConstantImage(value).v})
}

// FocalMin is a morphological erosion with a circular kernel.
func (i Image) FocalMin(radius float64, units string) Image {
	return i.invoke("Image.focal_min", "image", map[string]*Value{
		"radius": Constant(radius),
		"units":  Constant(units),
	})
}

// NormalizedDifference computes (a - b) / (a + b) as a single band named "nd".
func (i Image) NormalizedDifference(a, b string) Image {
	return i.invoke("Image.normalizedDifference", "input", map[string]*Value{
		"bandNames": Constant([]string{a, b}),
	})
}

// UnitScale linearly maps [low, high] onto [0, 1] without clamping.
func (i Image) UnitScale(low, high float64) Image {
	return i.invoke("Image.unitScale", "input", map[string]*Value{
		"low":  Constant(low),
		"high": Constant(high),
	})
}

// Clamp limits pixel values to [low, high].
func (i Image) Clamp(low, high float64) Image {
	return i.invoke("Image.clamp", "input", map[string]*Value{
		"low":  Constant(low),
		"high": Constant(high),
	})
}

// Remap maps each value in from to the value at the same index in to. Pixels
// matching none of from are masked.
func (i Image) Remap(from, to []float64) Image {
	return i.invoke("Image.remap", "image", map[string]*Value{
		"from": Constant(from),
		"to":   Constant(to),
	})
}

// Abs is the per-pixel absolute value.
func (i Image) Abs() Image {
	return Image{v: Invoke("Image.abs", map[string]*Value{"value": i.v})}
}

func (i Image) BitwiseAnd(other Image) Image { return i.binary("Image.bitwiseAnd", other) }
func (i Image) Eq(other Image) Image         { return i.binary("Image.eq", other) }
func (i Image) Gt(other Image) Image         { return i.binary("Image.gt", other) }
func (i Image) And(other Image) Image        { return i.binary("Image.and", other) }
func (i Image) Add(other Image) Image        { return i.binary("Image.add", other) }
func (i Image) Subtract(other Image) Image   { return i.binary("Image.subtract", other) }
func (i Image) Multiply(other Image) Image   { return i.binary("Image.multiply", other) }
func (i Image) Divide(other Image) Image     { return i.binary("Image.divide", other) }
