package autodiff

import "math"

// ExpOp represents the scalar exponential: output = exp(a).
//
// Backward pass: d(exp(a))/da = exp(a), so grad_a = gradOutput * exp(a).
type ExpOp struct {
	UnaryOp
}

// NewExpOp creates a new ExpOp.
func NewExpOp(in *Value) *ExpOp {
	return &ExpOp{UnaryOp{In: in}}
}

// Forward computes exp(a).
func (op *ExpOp) Forward() *Value {
	return NewResult(math.Exp(op.In.Item()), op.RequiresGrad(), op)
}

// BackpropCalc distributes the gradient scaled by exp(a).
func (op *ExpOp) BackpropCalc(gradOutput float64) {
	op.In.BackpropCalc(gradOutput * math.Exp(op.In.Item()))
}
