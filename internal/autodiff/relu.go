package autodiff

// ReluOp represents the rectified linear unit: output = max(0, a).
//
// Backward pass: d(ReLU(a))/da = 1 if a > 0, else 0.
//
// The zero contribution for a <= 0 is still delivered: the setup pass
// registered one contribution for the operand, and the calc pass must match
// it or downstream counting breaks.
type ReluOp struct {
	UnaryOp
}

// NewReluOp creates a new ReluOp.
func NewReluOp(in *Value) *ReluOp {
	return &ReluOp{UnaryOp{In: in}}
}

// Forward computes max(0, a).
func (op *ReluOp) Forward() *Value {
	v := op.In.Item()
	if v < 0 {
		v = 0
	}
	return NewResult(v, op.RequiresGrad(), op)
}

// BackpropCalc passes the gradient through for positive inputs only.
func (op *ReluOp) BackpropCalc(gradOutput float64) {
	if op.In.Item() <= 0 {
		gradOutput = 0
	}
	op.In.BackpropCalc(gradOutput)
}
