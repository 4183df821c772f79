package autodiff

import "math"

// TanhOp represents the hyperbolic tangent: output = tanh(a).
//
// Backward pass: d(tanh(a))/da = 1 - tanh²(a).
type TanhOp struct {
	UnaryOp
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(in *Value) *TanhOp {
	return &TanhOp{UnaryOp{In: in}}
}

// Forward computes tanh(a).
func (op *TanhOp) Forward() *Value {
	return NewResult(math.Tanh(op.In.Item()), op.RequiresGrad(), op)
}

// BackpropCalc distributes the gradient scaled by 1 - tanh²(a).
func (op *TanhOp) BackpropCalc(gradOutput float64) {
	t := math.Tanh(op.In.Item())
	op.In.BackpropCalc(gradOutput * (1 - t*t))
}
