// Copyright 2026 The Autograd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions built from Values form a computation DAG. Calling Backward on
// an output walks the graph in two phases: a setup pass that counts the
// gradient contributions each node will receive, and a calc pass that
// accumulates them and propagates upstream only once a node's count is
// exhausted. This keeps gradients correct for graphs with fan-out (a value
// consumed by several downstream expressions) without a topological sort.
//
// Example:
//
//	import "github.com/dbking77/autograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewVariable(2.0)
//	    out := a.Add(3.0).Mul(a.Mul(4.0)) // (a+3) * (a*4)
//	    out.Backward()
//	    grad, _ := a.Grad() // 28.0
//	}
package autodiff

import "github.com/dbking77/autograd/internal/autodiff"

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Operator is a differentiable operation; implement it (typically by
// embedding UnaryOp or BinaryOp) to add custom ops to the graph.
type Operator = autodiff.Operator

// BinaryOp is the embeddable operand holder for two-operand operators.
type BinaryOp = autodiff.BinaryOp

// UnaryOp is the embeddable operand holder for one-operand operators.
type UnaryOp = autodiff.UnaryOp

// NewValue creates a non-differentiable leaf.
func NewValue(v float64) *Value {
	return autodiff.NewValue(v)
}

// NewVariable creates a differentiable leaf.
func NewVariable(v float64) *Value {
	return autodiff.NewVariable(v)
}

// NewResult creates a Value produced by an operator; the operator reference
// is dropped when requiresGrad is false.
func NewResult(v float64, requiresGrad bool, op Operator) *Value {
	return autodiff.NewResult(v, requiresGrad, op)
}
