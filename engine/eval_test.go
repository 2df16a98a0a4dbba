// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	pos := NewPosition()
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0 (symmetric position)", got)
	}
}

func TestEvaluateCheckmateIsDecisive(t *testing.T) {
	pos := NewPosition()
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := MoveFromUCI(pos, s)
		if err != nil {
			t.Fatalf("MoveFromUCI(%q): %v", s, err)
		}
		pos.MakeMove(m)
	}
	if got := Evaluate(pos); got != -Infinity {
		t.Errorf("Evaluate(checkmated white) = %d, want %d", got, -Infinity)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/3Q4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if got := Evaluate(pos); got <= 0 {
		t.Errorf("Evaluate(white up a queen) = %d, want a positive score", got)
	}
}
