package autodiff

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = gradOutput * b
//   - d(a*b)/db = a, so grad_b = gradOutput * a
type MulOp struct {
	BinaryOp
}

// NewMulOp creates a new MulOp.
func NewMulOp(in1, in2 *Value) *MulOp {
	return &MulOp{BinaryOp{In1: in1, In2: in2}}
}

// Forward computes a * b.
func (op *MulOp) Forward() *Value {
	return NewResult(op.In1.Item()*op.In2.Item(), op.RequiresGrad(), op)
}

// BackpropCalc distributes the gradient scaled by the opposite operand.
func (op *MulOp) BackpropCalc(gradOutput float64) {
	op.In1.BackpropCalc(gradOutput * op.In2.Item())
	op.In2.BackpropCalc(gradOutput * op.In1.Item())
}
