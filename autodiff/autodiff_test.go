// Copyright 2026 The Autograd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"
	"testing"

	"github.com/dbking77/autograd/autodiff"
)

// TestPublicAPI_Diamond exercises the fan-out contract through the public
// facade.
func TestPublicAPI_Diamond(t *testing.T) {
	a := autodiff.NewVariable(2.0)
	out := a.Add(3.0).Mul(a.Mul(4.0))
	out.Backward()

	grad, ok := a.Grad()
	if !ok {
		t.Fatal("expected a gradient on a")
	}
	if grad != 28.0 {
		t.Errorf("a.Grad() = %f, want 28.0", grad)
	}
}

func ExampleValue_Backward() {
	a := autodiff.NewVariable(3.0)
	b := autodiff.NewVariable(2.0)
	out := a.Mul(b)
	out.Backward()

	gradA, _ := a.Grad()
	gradB, _ := b.Grad()
	fmt.Println(gradA, gradB)
	// Output: 2 3
}
