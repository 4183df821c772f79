package autodiff

// SubOp represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = gradOutput
//   - d(a-b)/db = -1, so grad_b = -gradOutput
//
// Operand order matters: the second operand's gradient is negated.
type SubOp struct {
	BinaryOp
}

// NewSubOp creates a new SubOp.
func NewSubOp(in1, in2 *Value) *SubOp {
	return &SubOp{BinaryOp{In1: in1, In2: in2}}
}

// Forward computes a - b.
func (op *SubOp) Forward() *Value {
	return NewResult(op.In1.Item()-op.In2.Item(), op.RequiresGrad(), op)
}

// BackpropCalc distributes the gradient, negated for the subtrahend.
func (op *SubOp) BackpropCalc(gradOutput float64) {
	op.In1.BackpropCalc(gradOutput)
	op.In2.BackpropCalc(-gradOutput)
}
