package nn

import (
	"fmt"

	"github.com/dbking77/autograd/internal/autodiff"
)

// MSELoss computes the mean squared error between predictions and targets:
//
//	loss = (1/N) Σ (predᵢ - targetᵢ)²
//
// The result is a graph Value, so calling Backward on it populates the
// gradients of every parameter the predictions depend on. Panics if the
// slices differ in length or are empty.
func MSELoss(preds, targets []*autodiff.Value) *autodiff.Value {
	if len(preds) == 0 || len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: MSELoss needs matching non-empty slices, got %d preds and %d targets",
			len(preds), len(targets)))
	}
	var sum *autodiff.Value
	for i, pred := range preds {
		diff := pred.Sub(targets[i])
		sq := diff.Mul(diff)
		if sum == nil {
			sum = sq
		} else {
			sum = sum.Add(sq)
		}
	}
	return sum.Div(float64(len(preds)))
}
