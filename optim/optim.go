// Copyright 2026 The Autograd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training models built
// on the scalar autodiff engine.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := trainStep(model, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/dbking77/autograd/internal/nn"
	"github.com/dbking77/autograd/internal/optim"
)

// Optimizer is the common interface for parameter-update rules.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
