// Package optim provides optimization algorithms for training models built
// on the scalar autodiff engine.
package optim

// Optimizer is the common interface for parameter-update rules.
type Optimizer interface {
	// Step applies one update to every parameter using the gradients
	// accumulated by the latest backward pass. Parameters that took no part
	// in the pass (no gradient) are left unchanged.
	Step()

	// ZeroGrad discards accumulated gradients so the next training step
	// starts clean.
	ZeroGrad()
}
