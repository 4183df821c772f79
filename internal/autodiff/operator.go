package autodiff

// Operator represents a differentiable operation in the computation graph.
// An operator computes its result during the forward pass and distributes
// the result's gradient to its operands during the backward pass.
//
// Operators hold non-owning references to their operands; the result Value
// owns the operator (when it requires gradients), which keeps the graph
// acyclic by construction.
type Operator interface {
	// Forward computes the result from the operand values and returns it,
	// wired to this operator as producer when the result requires gradients.
	Forward() *Value

	// BackpropSetup registers one expected gradient contribution with every
	// operand, once per occurrence. An operand used twice by the same
	// operator registers two contributions.
	BackpropSetup()

	// BackpropCalc receives the fully accumulated gradient of this
	// operator's output and delivers one chain-rule contribution to each
	// operand occurrence via the operand's BackpropCalc.
	BackpropCalc(gradOutput float64)
}

// BinaryOp holds the operand references shared by the two-operand
// operators. It is exported so custom operators outside this package can
// embed it and inherit the setup fan-out.
type BinaryOp struct {
	In1, In2 *Value
}

// BackpropSetup registers one expected contribution with each operand.
func (op *BinaryOp) BackpropSetup() {
	op.In1.BackpropSetup()
	op.In2.BackpropSetup()
}

// RequiresGrad reports whether the operator's output requires gradients:
// true iff either operand does. Computed at forward time to decide whether
// the result keeps a producer reference.
func (op *BinaryOp) RequiresGrad() bool {
	return op.In1.RequiresGrad() || op.In2.RequiresGrad()
}

// UnaryOp holds the operand reference shared by the one-operand operators.
type UnaryOp struct {
	In *Value
}

// BackpropSetup registers one expected contribution with the operand.
func (op *UnaryOp) BackpropSetup() {
	op.In.BackpropSetup()
}

// RequiresGrad reports whether the operator's output requires gradients.
func (op *UnaryOp) RequiresGrad() bool {
	return op.In.RequiresGrad()
}
