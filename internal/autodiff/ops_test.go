package autodiff_test

import (
	"math"
	"testing"

	"github.com/dbking77/autograd/internal/autodiff"
)

// numericalGradient computes df/dx at x using central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestOps_Gradients checks each operator's analytic gradient against a
// finite-difference estimate of the same function.
func TestOps_Gradients(t *testing.T) {
	tests := []struct {
		name  string
		build func(x *autodiff.Value) *autodiff.Value
		eval  func(x float64) float64
		point float64
	}{
		{
			name:  "Add",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Add(3.0) },
			eval:  func(x float64) float64 { return x + 3.0 },
			point: 2.0,
		},
		{
			name:  "Sub",
			build: func(x *autodiff.Value) *autodiff.Value { return autodiff.NewValue(3.0).Sub(x) },
			eval:  func(x float64) float64 { return 3.0 - x },
			point: 2.0,
		},
		{
			name:  "Mul",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Mul(x) },
			eval:  func(x float64) float64 { return x * x },
			point: 3.0,
		},
		{
			name:  "Div",
			build: func(x *autodiff.Value) *autodiff.Value { return autodiff.NewValue(6.0).Div(x) },
			eval:  func(x float64) float64 { return 6.0 / x },
			point: 3.0,
		},
		{
			name:  "Neg",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Neg() },
			eval:  func(x float64) float64 { return -x },
			point: 1.5,
		},
		{
			name:  "Exp",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Exp() },
			eval:  math.Exp,
			point: 0.5,
		},
		{
			name:  "Tanh",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Tanh() },
			eval:  math.Tanh,
			point: 0.7,
		},
		{
			name:  "ReluPositive",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Relu() },
			eval:  func(x float64) float64 { return math.Max(0, x) },
			point: 1.2,
		},
		{
			name:  "Pow",
			build: func(x *autodiff.Value) *autodiff.Value { return x.Pow(3.0) },
			eval:  func(x float64) float64 { return math.Pow(x, 3.0) },
			point: 2.0,
		},
		{
			name: "Composite",
			build: func(x *autodiff.Value) *autodiff.Value {
				return x.Mul(x).Add(x.Tanh()).Sub(x.Div(2.0))
			},
			eval: func(x float64) float64 {
				return x*x + math.Tanh(x) - x/2.0
			},
			point: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.NewVariable(tt.point)
			out := tt.build(x)
			out.Backward()

			grad, ok := x.Grad()
			if !ok {
				t.Fatal("no gradient accumulated")
			}

			numerical := numericalGradient(tt.eval, tt.point, 1e-6)
			if math.Abs(grad-numerical) > 1e-4 {
				t.Errorf("analytic gradient %f differs from numerical %f", grad, numerical)
			}
		})
	}
}

// TestDivOp_Gradients tests the exact quotient-rule values for both
// operands: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func TestDivOp_Gradients(t *testing.T) {
	a := autodiff.NewVariable(6.0)
	b := autodiff.NewVariable(3.0)
	out := a.Div(b)
	out.Backward()

	if out.Item() != 2.0 {
		t.Errorf("Div forward = %f, want 2.0", out.Item())
	}
	gradA := mustGrad(t, a)
	if math.Abs(gradA-1.0/3.0) > 1e-12 {
		t.Errorf("a.Grad() = %f, want 1/3", gradA)
	}
	gradB := mustGrad(t, b)
	if math.Abs(gradB-(-2.0/3.0)) > 1e-12 {
		t.Errorf("b.Grad() = %f, want -2/3", gradB)
	}
}

// TestReluOp_NegativeInput tests that ReLU still delivers a (zero)
// contribution for clamped inputs so contribution counting stays balanced.
func TestReluOp_NegativeInput(t *testing.T) {
	a := autodiff.NewVariable(-1.5)
	out := a.Relu()
	out.Backward()

	if out.Item() != 0.0 {
		t.Errorf("Relu(-1.5) = %f, want 0.0", out.Item())
	}
	if grad := mustGrad(t, a); grad != 0.0 {
		t.Errorf("a.Grad() = %f, want 0.0", grad)
	}
}

// TestSubOp_OperandOrder tests that subtraction gradients are not symmetric.
func TestSubOp_OperandOrder(t *testing.T) {
	a := autodiff.NewVariable(3.0)
	b := autodiff.NewVariable(2.0)
	out := a.Sub(b)
	out.Backward()

	if grad := mustGrad(t, a); grad != 1.0 {
		t.Errorf("a.Grad() = %f, want 1.0", grad)
	}
	if grad := mustGrad(t, b); grad != -1.0 {
		t.Errorf("b.Grad() = %f, want -1.0", grad)
	}
}

// TestOps_DeadSubgraphSkipped tests that a fully non-differentiable
// subexpression keeps no producers, so backward never visits it.
func TestOps_DeadSubgraphSkipped(t *testing.T) {
	a := autodiff.NewVariable(2.0)
	dead := autodiff.NewValue(3.0).Mul(autodiff.NewValue(4.0))
	out := a.Add(dead)
	out.Backward()

	if grad := mustGrad(t, a); grad != 1.0 {
		t.Errorf("a.Grad() = %f, want 1.0", grad)
	}
	if _, ok := dead.Grad(); ok {
		t.Error("dead subgraph result should have no gradient")
	}
}
