package optim

import (
	"github.com/dbking77/autograd/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
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
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad, ok := p.Grad()
		if !ok {
			continue
		}
		velocity := s.momentum*s.velocities[p] + grad
		s.velocities[p] = velocity
		p.Set(p.Data() - s.lr*velocity)
	}
}

// ZeroGrad discards the gradients of all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}
