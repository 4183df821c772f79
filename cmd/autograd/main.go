// Copyright 2026 The Autograd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Command autograd demonstrates the scalar autodiff engine: differentiate a
// small expression, or train a tiny MLP with SGD.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbking77/autograd/autodiff"
	"github.com/dbking77/autograd/nn"
	"github.com/dbking77/autograd/optim"
)

const version = "v0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "autograd",
		Short: "Scalar reverse-mode automatic differentiation",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("autograd %s\n", version)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Differentiate a small fan-out expression",
		Run:   runDemo,
	}

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a tiny MLP to y = sin-like data with SGD",
		Run:   runTrain,
	}
	trainCmd.Flags().Int("epochs", 200, "number of training epochs")
	trainCmd.Flags().Float64("lr", 0.05, "learning rate")
	trainCmd.Flags().Int64("seed", 42, "weight initialization seed")

	rootCmd.AddCommand(versionCmd, demoCmd, trainCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runDemo differentiates out = (a+3) * (a*4), a graph where the leaf feeds
// the output through two paths.
func runDemo(_ *cobra.Command, _ []string) {
	a := autodiff.NewVariable(2.0)
	out := a.Add(3.0).Mul(a.Mul(4.0))
	out.Backward()

	grad, _ := a.Grad()
	fmt.Printf("out = (a+3) * (a*4) at a = %g\n", a.Item())
	fmt.Printf("out      = %g\n", out.Item())
	fmt.Printf("d(out)/da = %g\n", grad)
}

// runTrain fits an MLP with one hidden layer to y = 2x + 1 over a fixed
// sample grid.
func runTrain(cmd *cobra.Command, _ []string) {
	epochs, _ := cmd.Flags().GetInt("epochs")
	lr, _ := cmd.Flags().GetFloat64("lr")
	seed, _ := cmd.Flags().GetInt64("seed")

	xs := []float64{-1.0, -0.5, 0.0, 0.5, 1.0}
	target := func(x float64) float64 { return 2.0*x + 1.0 }

	rng := rand.New(rand.NewSource(seed))
	model := nn.NewMLP(1, []int{8, 1}, rng)
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr})

	for epoch := 1; epoch <= epochs; epoch++ {
		optimizer.ZeroGrad()

		preds := make([]*autodiff.Value, len(xs))
		targets := make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Forward([]*autodiff.Value{autodiff.NewValue(x)})[0]
			targets[i] = autodiff.NewValue(target(x))
		}

		loss := nn.MSELoss(preds, targets)
		loss.Backward()
		optimizer.Step()

		if epoch%20 == 0 || epoch == 1 {
			fmt.Printf("epoch %4d  loss %.6f\n", epoch, loss.Item())
		}
	}

	fmt.Println("fit:")
	for _, x := range xs {
		pred := model.Forward([]*autodiff.Value{autodiff.NewValue(x)})[0]
		fmt.Printf("  f(%+.1f) = %+.4f  (target %+.4f)\n", x, pred.Item(), target(x))
	}
}
