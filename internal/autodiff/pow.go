package autodiff

import "math"

// PowOp raises its operand to a constant exponent: output = a**p.
//
// Backward pass: d(a**p)/da = p * a**(p-1).
//
// The exponent is a plain float64, not a graph Value; no gradient flows to
// it.
type PowOp struct {
	UnaryOp
	exponent float64
}

// NewPowOp creates a new PowOp with the given constant exponent.
func NewPowOp(in *Value, exponent float64) *PowOp {
	return &PowOp{UnaryOp: UnaryOp{In: in}, exponent: exponent}
}

// Forward computes a**p.
func (op *PowOp) Forward() *Value {
	return NewResult(math.Pow(op.In.Item(), op.exponent), op.RequiresGrad(), op)
}

// BackpropCalc distributes the power-rule gradient.
func (op *PowOp) BackpropCalc(gradOutput float64) {
	p := op.exponent
	op.In.BackpropCalc(gradOutput * p * math.Pow(op.In.Item(), p-1))
}
