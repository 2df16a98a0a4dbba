// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements a chess rules layer — board representation,
// move generation, FEN parsing, and position bookkeeping — and a search
// layer on top of it: a classic piece-square-table evaluator, a
// transposition cache, fail-soft alpha-beta, and an MTD(f) driver run
// under iterative deepening.
//
// There is no quiescence search, null-move pruning, late-move
// reductions, or tuned evaluation weights: just a single, literal
// alpha-beta/MTD(f) search over a hand-written evaluator.
package engine
