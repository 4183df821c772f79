// Package nn provides scalar neural network building blocks on top of the
// autodiff engine: trainable parameters, neurons, layers, a multi-layer
// perceptron, and a mean-squared-error loss.
package nn

import (
	"github.com/dbking77/autograd/internal/autodiff"
)

// Parameter represents a named trainable scalar.
//
// Graph Values are immutable, so the parameter keeps its current datum
// outside the graph and binds a fresh differentiable leaf for each training
// step. Optimizers read the gradient from the bound leaf, update the datum,
// and call ZeroGrad so the next forward pass starts a clean graph.
//
// Example:
//
//	w := nn.NewParameter("layer0.w0", 0.5)
//	out := x.Mul(w.Node())    // forward pass binds the leaf
//	out.Backward()
//	grad, _ := w.Grad()
//	w.Set(w.Data() - lr*grad)
//	w.ZeroGrad()
type Parameter struct {
	name string
	data float64
	node *autodiff.Value // bound leaf; nil until the next forward pass uses it
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{name: name, data: data}
}

// Name returns the parameter name (e.g. "layer1.neuron2.w0").
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.data
}

// Set replaces the current parameter value. The bound leaf, if any, is
// unaffected; it still carries the value the graph was built with.
func (p *Parameter) Set(data float64) {
	p.data = data
}

// Node returns the differentiable graph leaf for the current step, binding
// one on first use after construction or ZeroGrad.
func (p *Parameter) Node() *autodiff.Value {
	if p.node == nil {
		p.node = autodiff.NewVariable(p.data)
	}
	return p.node
}

// Grad returns the gradient accumulated on the bound leaf. ok is false
// before the parameter takes part in a backward pass.
func (p *Parameter) Grad() (grad float64, ok bool) {
	if p.node == nil {
		return 0, false
	}
	return p.node.Grad()
}

// ZeroGrad unbinds the leaf so the next forward pass builds a fresh graph
// with no accumulated gradient.
func (p *Parameter) ZeroGrad() {
	p.node = nil
}
