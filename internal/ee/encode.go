// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ee

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrNilValue is returned when a nil graph is encoded.
var ErrNilValue = errors.New("ee: cannot encode nil value")

// Expression is the serialized form of a computation graph. Every function
// invocation lives in Values under a numeric id; Result names the root.
type Expression struct {
	Result string               `json:"result"`
	Values map[string]ValueNode `json:"values"`
}

// ValueNode is one entry of the expression value table, e.g.
// {"constantValue": 3} or {"functionInvocationValue": {...}}.
type ValueNode map[string]any

type encoder struct {
	values map[string]ValueNode
	ids    map[string]string
	next   int
}

// Encode flattens v into an Expression. Identical sub-graphs are stored once
// and ids are assigned in post-order, so the same graph always produces the
// same document.
func Encode(v *Value) (*Expression, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	enc := &encoder{
		values: make(map[string]ValueNode),
		ids:    make(map[string]string),
	}

	node, err := enc.encode(v)
	if err != nil {
		return nil, err
	}

	ref, err := enc.hoist(node)
	if err != nil {
		return nil, err
	}

	return &Expression{Result: ref, Values: enc.values}, nil
}

// MustEncode is Encode for graphs built entirely from package constructors,
// which can only fail on programmer error.
func MustEncode(v *Value) *Expression {
	expr, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return expr
}

func (e *encoder) encode(v *Value) (ValueNode, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	switch v.kind {
	case kindConstant:
		return ValueNode{"constantValue": v.constant}, nil

	case kindArgument:
		return ValueNode{"argumentReference": v.ref}, nil

	case kindArray:
		return e.encodeArray(v)

	case kindFunction:
		body, err := e.encode(v.body)
		if err != nil {
			return nil, err
		}
		bodyRef, err := e.hoist(body)
		if err != nil {
			return nil, err
		}
		return e.reference(ValueNode{
			"functionDefinitionValue": map[string]any{
				"argumentNames": v.argNames,
				"body":          bodyRef,
			},
		})

	case kindInvocation:
		args := make(map[string]any, len(v.args))
		for _, name := range sortedArgNames(v.args) {
			node, err := e.encode(v.args[name])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", v.function, name, err)
			}
			args[name] = node
		}
		return e.reference(ValueNode{
			"functionInvocationValue": map[string]any{
				"functionName": v.function,
				"arguments":    args,
			},
		})
	}

	return nil, fmt.Errorf("ee: unknown value kind %d", v.kind)
}

func (e *encoder) encodeArray(v *Value) (ValueNode, error) {
	allConstant := true
	for _, item := range v.items {
		if item == nil || item.kind != kindConstant {
			allConstant = false
			break
		}
	}

	if allConstant {
		list := make([]any, len(v.items))
		for i, item := range v.items {
			list[i] = item.constant
		}
		return ValueNode{"constantValue": list}, nil
	}

	nodes := make([]ValueNode, len(v.items))
	for i, item := range v.items {
		node, err := e.encode(item)
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}

	return ValueNode{"arrayValue": map[string]any{"values": nodes}}, nil
}

// hoist makes sure node is addressable by id and returns that id.
func (e *encoder) hoist(node ValueNode) (string, error) {
	if ref, ok := node["valueReference"].(string); ok {
		return ref, nil
	}

	ref, err := e.reference(node)
	if err != nil {
		return "", err
	}
	return ref["valueReference"].(string), nil
}

// reference stores node in the value table (once per distinct content) and
// returns a valueReference pointing at it.
func (e *encoder) reference(node ValueNode) (ValueNode, error) {
	canonical, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("ee: encode node: %w", err)
	}

	key := string(canonical)
	if id, ok := e.ids[key]; ok {
		return ValueNode{"valueReference": id}, nil
	}

	id := strconv.Itoa(e.next)
	e.next++
	e.ids[key] = id
	e.values[id] = node

	return ValueNode{"valueReference": id}, nil
}
