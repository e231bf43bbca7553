// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ee

import (
	"fmt"
	"sort"
)

type kind int

const (
	kindConstant kind = iota
	kindInvocation
	kindArray
	kindFunction
	kindArgument
)

// Value is a single node of a lazily evaluated computation graph.
//
// Values are immutable once built; every builder method returns a new node
// that references its inputs, so a Value can be shared freely between
// goroutines and between graphs.
type Value struct {
	kind kind

	constant any

	function string
	args     map[string]*Value

	items []*Value

	argNames []string
	body     *Value

	ref string
}

// Constant wraps a JSON-serializable literal (number, string, bool, nil or a
// slice of those).
func Constant(v any) *Value {
	return &Value{kind: kindConstant, constant: v}
}

// Invoke records a call of the named remote algorithm. Nil arguments are
// dropped so optional parameters can be passed conditionally.
func Invoke(function string, args map[string]*Value) *Value {
	cleaned := make(map[string]*Value, len(args))
	for name, arg := range args {
		if arg != nil {
			cleaned[name] = arg
		}
	}

	return &Value{kind: kindInvocation, function: function, args: cleaned}
}

// Array groups values into a list. A list made only of constants is encoded
// as a single constant.
func Array(items ...*Value) *Value {
	return &Value{kind: kindArray, items: items}
}

func argument(name string) *Value {
	return &Value{kind: kindArgument, ref: name}
}

func function(argNames []string, body *Value) *Value {
	return &Value{kind: kindFunction, argNames: argNames, body: body}
}

// FunctionName returns the algorithm name of an invocation node and an
// empty string for every other node kind.
func (v *Value) FunctionName() string {
	if v == nil || v.kind != kindInvocation {
		return ""
	}
	return v.function
}

// Arg returns the named argument of an invocation node, or nil.
func (v *Value) Arg(name string) *Value {
	if v == nil || v.kind != kindInvocation {
		return nil
	}
	return v.args[name]
}

// ConstantValue returns the literal held by a constant node.
func (v *Value) ConstantValue() (any, bool) {
	if v == nil || v.kind != kindConstant {
		return nil, false
	}
	return v.constant, true
}

// String renders the graph in a compact call notation, mostly for logs and
// test failure messages.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}

	switch v.kind {
	case kindConstant:
		return fmt.Sprintf("%v", v.constant)
	case kindArgument:
		return "$" + v.ref
	case kindArray:
		s := "["
		for i, item := range v.items {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case kindFunction:
		return fmt.Sprintf("func(%v) %s", v.argNames, v.body.String())
	default:
		s := v.function + "("
		for i, name := range sortedArgNames(v.args) {
			if i > 0 {
				s += ", "
			}
			s += name + "=" + v.args[name].String()
		}
		return s + ")"
	}
}

// functionDepth reports how deeply function definitions are nested inside v.
func functionDepth(v *Value) int {
	if v == nil {
		return 0
	}

	depth := 0
	switch v.kind {
	case kindFunction:
		return 1 + functionDepth(v.body)
	case kindInvocation:
		for _, arg := range v.args {
			depth = max(depth, functionDepth(arg))
		}
	case kindArray:
		for _, item := range v.items {
			depth = max(depth, functionDepth(item))
		}
	}

	return depth
}

func sortedArgNames(args map[string]*Value) []string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
