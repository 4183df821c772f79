package autodiff

// DivOp represents scalar division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = gradOutput / b
//   - d(a/b)/db = -a/b², so grad_b = -gradOutput * a / b²
//
// No special handling for b == 0; ordinary floating-point propagation
// applies in both passes.
type DivOp struct {
	BinaryOp
}

// NewDivOp creates a new DivOp.
func NewDivOp(in1, in2 *Value) *DivOp {
	return &DivOp{BinaryOp{In1: in1, In2: in2}}
}

// Forward computes a / b.
func (op *DivOp) Forward() *Value {
	return NewResult(op.In1.Item()/op.In2.Item(), op.RequiresGrad(), op)
}

// BackpropCalc distributes the quotient-rule gradients.
func (op *DivOp) BackpropCalc(gradOutput float64) {
	a, b := op.In1.Item(), op.In2.Item()
	op.In1.BackpropCalc(gradOutput / b)
	op.In2.BackpropCalc(-gradOutput * a / (b * b))
}
