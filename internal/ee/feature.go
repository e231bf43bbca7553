// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ee

// Feature is a single deferred vector record.
type Feature struct{ v *Value }

func (f Feature) Value() *Value { return f.v }

// Geometry is the feature's geometry.
func (f Feature) Geometry() Geometry {
	return Geometry{v: Invoke("Feature.geometry", map[string]*Value{"feature": f.v})}
}

// Geometry is a deferred geometry.
type Geometry struct{ v *Value }

func (g Geometry) Value() *Value { return g.v }

// Filter is a deferred predicate over collection elements.
type Filter struct{ v *Value }

func (f Filter) Value() *Value { return f.v }

// FilterEq matches elements whose property equals value.
func FilterEq(property string, value any) Filter {
	return Filter{v: Invoke("Filter.equals", map[string]*Value{
		"leftField":  Constant(property),
		"rightValue": Constant(value),
	})}
}

// FilterLt matches elements whose property is strictly less than value.
func FilterLt(property string, value any) Filter {
	return Filter{v: Invoke("Filter.lessThan", map[string]*Value{
		"leftField":  Constant(property),
		"rightValue": Constant(value),
	})}
}

// FilterDate matches elements whose system:time_start falls in [start, end).
func FilterDate(start, end string) Filter {
	dateRange := Invoke("DateRange", map[string]*Value{
		"start": Constant(start),
		"end":   Constant(end),
	})

	return Filter{v: Invoke("Filter.dateRangeContains", map[string]*Value{
		"leftValue":  dateRange,
		"rightField": Constant("system:time_start"),
	})}
}

// FilterBounds matches elements whose geometry intersects geometry.
func FilterBounds(geometry Geometry) Filter {
	return Filter{v: Invoke("Filter.intersects", map[string]*Value{
		"leftField":  Constant(".all"),
		"rightValue": geometry.v,
	})}
}

// List is a deferred list.
type List struct{ v *Value }

func (l List) Value() *Value { return l.v }

// Size evaluates to the list length.
func (l List) Size() Number {
	return Number{v: Invoke("List.size", map[string]*Value{"list": l.v})}
}

// Number is a deferred scalar.
type Number struct{ v *Value }

func (n Number) Value() *Value { return n.v }
