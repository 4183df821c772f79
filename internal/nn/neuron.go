package nn

import (
	"fmt"
	"math/rand"

	"github.com/dbking77/autograd/internal/autodiff"
)

// Neuron computes a weighted sum of its inputs plus a bias, with an optional
// tanh nonlinearity:
//
//	y = tanh(Σ wᵢ·xᵢ + b)   or   y = Σ wᵢ·xᵢ + b
//
// Weights initialize uniformly in [-1, 1); the bias starts at zero.
type Neuron struct {
	weights   []*Parameter
	bias      *Parameter
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs. Parameter names are derived
// from the given name prefix.
//
//nolint:gosec // math/rand for weight initialization (not security-critical)
func NewNeuron(name string, nin int, nonlinear bool, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), rng.Float64()*2.0-1.0)
	}
	return &Neuron{
		weights:   weights,
		bias:      NewParameter(name+".b", 0.0),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron output. Panics if the input width does not
// match the weight count.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}
	act := n.bias.Node()
	for i, w := range n.weights {
		act = act.Add(w.Node().Mul(inputs[i]))
	}
	if n.nonlinear {
		act = act.Tanh()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Layer is a fully connected layer of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, nonlinear bool, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.neuron%d", name, i), nin, nonlinear, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes the output of every neuron over the shared inputs.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of all neurons in the layer.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// MLP is a multi-layer perceptron: tanh hidden layers and a linear output
// layer.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(1, []int{8, 1}, rng)  // 1 input, 8 hidden, 1 output
//	out := model.Forward([]*autodiff.Value{x})
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
// Every layer except the last applies tanh.
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	layers := make([]*Layer, len(nouts))
	width := nin
	for i, nout := range nouts {
		nonlinear := i != len(nouts)-1
		layers[i] = NewLayer(fmt.Sprintf("layer%d", i), width, nout, nonlinear, rng)
		width = nout
	}
	return &MLP{layers: layers}
}

// Forward runs the inputs through every layer in order.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := inputs
	for _, l := range m.layers {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of all layers.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
