// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Value: a scalar node in the computation graph, with an optional
//     gradient accumulator and an optional producing Operator
//   - Operator interface: each op (Add, Mul, Tanh, ...) computes a forward
//     value and distributes gradients to its operands via the chain rule
//   - Two-phase backward pass: a setup pass counts the gradient
//     contributions every reachable Value will receive, then a calc pass
//     accumulates them and releases upstream propagation only once a Value
//     has received all of its expected contributions
//
// The contribution counting is what makes fan-out graphs work: a Value used
// by several downstream operators must not forward a partial gradient to its
// producer, or shared subexpressions would differentiate incorrectly. The
// counter gates propagation without an explicit topological sort and without
// a visited-set.
//
// Usage:
//
//	a := autodiff.NewVariable(2.0)
//	out := a.Add(3.0).Mul(a.Mul(4.0)) // out = (a+3) * (a*4)
//	out.Backward()
//	grad, _ := a.Grad()               // d(out)/da = 28.0
//
// Backward passes are strictly single-threaded: traversal state lives on the
// Values themselves, so concurrent Backward calls over overlapping graphs
// are a race and require external synchronization.
package autodiff

import "fmt"

// Value is a scalar node in the computation graph.
//
// A Value is immutable once constructed: its item never changes, and
// operators hold non-owning references to their operand Values (the same
// Value may be an operand of any number of operators). The only mutable
// state is the gradient accumulator and the contribution counter, both owned
// by the single in-flight backward pass.
type Value struct {
	item          float64
	requiresGrad  bool
	grad          float64
	hasGrad       bool
	op            Operator // producer; nil for leaves and non-differentiable results
	backpropCount int      // gradient contributions still expected this pass
}

// NewValue creates a non-differentiable leaf.
func NewValue(v float64) *Value {
	return &Value{item: v}
}

// NewVariable creates a differentiable leaf. Its gradient is populated by
// the first backward pass that reaches it.
func NewVariable(v float64) *Value {
	return &Value{item: v, requiresGrad: true}
}

// NewResult creates a Value produced by an operator. This is the wiring
// point for operator implementations, including ones defined outside this
// package.
//
// The operator reference is only stored when requiresGrad is true: a
// non-differentiable result never keeps its producer, which lets backward
// passes skip dead subgraphs entirely.
func NewResult(v float64, requiresGrad bool, op Operator) *Value {
	val := &Value{item: v, requiresGrad: requiresGrad}
	if requiresGrad {
		val.op = op
	}
	return val
}

// Item returns the scalar computed during the forward pass.
func (v *Value) Item() float64 {
	return v.item
}

// RequiresGrad reports whether backward passes accumulate a gradient on v.
func (v *Value) RequiresGrad() bool {
	return v.requiresGrad
}

// Grad returns the accumulated gradient. ok is false if v never required a
// gradient or no backward pass has reached it yet; a gradient that was
// computed and happens to be zero reports ok == true.
func (v *Value) Grad() (grad float64, ok bool) {
	return v.grad, v.hasGrad
}

// Backward computes d(v)/d(leaf) for every differentiable leaf reachable
// from v, accumulating into each leaf's gradient. Calling Backward on a
// non-differentiable Value is a no-op: no traversal runs.
func (v *Value) Backward() {
	if !v.requiresGrad {
		return
	}
	v.BackpropSetup()
	v.BackpropCalc(1.0)
}

// BackpropSetup registers one expected gradient contribution with v. The
// first registration of a pass recurses into the producer so every reachable
// Value gets counted; later registrations only bump the counter, which keeps
// the setup pass linear in graph size regardless of fan-out and runs each
// operator's setup exactly once per pass.
func (v *Value) BackpropSetup() {
	v.backpropCount++
	if v.backpropCount == 1 && v.op != nil {
		v.op.BackpropSetup()
	}
}

// BackpropCalc delivers one gradient contribution to v. Contributions are
// summed; once the last expected contribution arrives the total is forwarded
// to the producer's BackpropCalc. Values that do not require gradients
// discard contributions.
//
// A contribution beyond the count registered during setup is a bug in the
// traversal (or in a custom operator) that would silently corrupt gradients,
// so it panics instead.
func (v *Value) BackpropCalc(gradOutput float64) {
	if !v.requiresGrad {
		return
	}
	if !v.hasGrad {
		v.grad = 0
		v.hasGrad = true
	}
	v.grad += gradOutput
	v.backpropCount--
	if v.backpropCount < 0 {
		panic("autodiff: gradient contribution after all expected contributions arrived (setup/calc mismatch)")
	}
	if v.backpropCount == 0 && v.op != nil {
		v.op.BackpropCalc(v.grad)
	}
}

// asValue coerces an arithmetic operand. A raw float64 becomes a
// non-differentiable leaf; anything that is not a *Value or float64 is a
// type error at the call site.
func asValue(operand any) *Value {
	switch v := operand.(type) {
	case *Value:
		return v
	case float64:
		return NewValue(v)
	default:
		panic(fmt.Sprintf("autodiff: invalid operand type %T (want *Value or float64)", operand))
	}
}

// Add returns v + other. other may be a *Value or a raw float64.
func (v *Value) Add(other any) *Value {
	return NewAddOp(v, asValue(other)).Forward()
}

// Sub returns v - other. other may be a *Value or a raw float64.
func (v *Value) Sub(other any) *Value {
	return NewSubOp(v, asValue(other)).Forward()
}

// Mul returns v * other. other may be a *Value or a raw float64.
func (v *Value) Mul(other any) *Value {
	return NewMulOp(v, asValue(other)).Forward()
}

// Div returns v / other. other may be a *Value or a raw float64.
func (v *Value) Div(other any) *Value {
	return NewDivOp(v, asValue(other)).Forward()
}

// Neg returns -v.
func (v *Value) Neg() *Value {
	return NewNegOp(v).Forward()
}

// Exp returns e**v.
func (v *Value) Exp() *Value {
	return NewExpOp(v).Forward()
}

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value {
	return NewTanhOp(v).Forward()
}

// Relu returns max(0, v).
func (v *Value) Relu() *Value {
	return NewReluOp(v).Forward()
}

// Pow returns v**p for a constant exponent p.
func (v *Value) Pow(p float64) *Value {
	return NewPowOp(v, p).Forward()
}
