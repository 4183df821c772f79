package autodiff

// NegOp represents scalar negation: output = -a.
//
// Backward pass: d(-a)/da = -1, so grad_a = -gradOutput.
type NegOp struct {
	UnaryOp
}

// NewNegOp creates a new NegOp.
func NewNegOp(in *Value) *NegOp {
	return &NegOp{UnaryOp{In: in}}
}

// Forward computes -a.
func (op *NegOp) Forward() *Value {
	return NewResult(-op.In.Item(), op.RequiresGrad(), op)
}

// BackpropCalc distributes the negated gradient.
func (op *NegOp) BackpropCalc(gradOutput float64) {
	op.In.BackpropCalc(-gradOutput)
}
