// Copyright 2026 The Autograd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks on top of the
// autodiff engine.
//
// Example:
//
//	import (
//	    "math/rand"
//
//	    "github.com/dbking77/autograd/autodiff"
//	    "github.com/dbking77/autograd/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model := nn.NewMLP(1, []int{8, 1}, rng)
//	    out := model.Forward([]*autodiff.Value{autodiff.NewValue(0.5)})
//	    out[0].Backward()
//	}
package nn

import (
	"math/rand"

	"github.com/dbking77/autograd/internal/autodiff"
	"github.com/dbking77/autograd/internal/nn"
)

// Parameter is a named trainable scalar.
type Parameter = nn.Parameter

// Neuron is a weighted sum with bias and optional tanh nonlinearity.
type Neuron = nn.Neuron

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron with tanh hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(name string, nin int, nonlinear bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(name, nin, nonlinear, rng)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, nonlinear bool, rng *rand.Rand) *Layer {
	return nn.NewLayer(name, nin, nout, nonlinear, rng)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, nouts, rng)
}

// MSELoss computes the mean squared error between predictions and targets.
func MSELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	return nn.MSELoss(preds, targets)
}
