package autodiff

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = gradOutput
//   - d(a+b)/db = 1, so grad_b = gradOutput
type AddOp struct {
	BinaryOp
}

// NewAddOp creates a new AddOp.
func NewAddOp(in1, in2 *Value) *AddOp {
	return &AddOp{BinaryOp{In1: in1, In2: in2}}
}

// Forward computes a + b.
func (op *AddOp) Forward() *Value {
	return NewResult(op.In1.Item()+op.In2.Item(), op.RequiresGrad(), op)
}

// BackpropCalc distributes the gradient equally to both operands.
func (op *AddOp) BackpropCalc(gradOutput float64) {
	op.In1.BackpropCalc(gradOutput)
	op.In2.BackpropCalc(gradOutput)
}
