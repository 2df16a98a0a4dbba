// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math/rand"
)

// Stats tracks search progress, reported to a Logger once per
// completed iterative-deepening depth.
type Stats struct {
	Nodes uint64
	Depth int
}

// Logger observes search progress. Search never blocks on it.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int, move Move)
}

// NulLogger discards everything. It is the default when Search is
// constructed with a nil Logger.
type NulLogger struct{}

func (NulLogger) BeginSearch()             {}
func (NulLogger) EndSearch()               {}
func (NulLogger) PrintPV(Stats, int, Move) {}

// Search drives iterative-deepening MTD(f) over a transposition cache.
// It owns the cache and a pseudo-random source for deterministic tests
// (see SetSeed); neither is shared across concurrent searches, since
// search runs single-threaded and synchronously.
type Search struct {
	cache *TranspositionTable
	rng   *rand.Rand
	log   Logger
	Stats Stats
}

// NewSearch returns a Search whose cache holds at most cacheCap entries.
func NewSearch(cacheCap int) *Search {
	return NewSearchWithLogger(cacheCap, NulLogger{})
}

// NewSearchWithLogger is like NewSearch but reports progress to log.
func NewSearchWithLogger(cacheCap int, log Logger) *Search {
	if log == nil {
		log = NulLogger{}
	}
	return &Search{
		cache: NewTranspositionTable(cacheCap),
		rng:   rand.New(rand.NewSource(1)),
		log:   log,
	}
}

// SetSeed reseeds the search's random source, for reproducible move
// ordering in tests.
func (s *Search) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shuffle randomizes move order in place so that tied lines vary
// between games.
func (s *Search) shuffle(moves []Move) {
	s.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}

// minimax is fail-soft alpha-beta with White maximizing and Black
// minimizing, consulting and updating the transposition cache. Each
// call's memo entry is keyed one ply below the depth it was entered
// at, so a node's cache slot matches the depth of the children it
// actually searched.
func (s *Search) minimax(pos *Position, depth, alpha, beta int) int {
	s.Stats.Nodes++

	if depth <= 0 || pos.IsTerminal() {
		return Evaluate(pos)
	}

	origAlpha, origBeta := alpha, beta

	entry, ok := s.cache.Get(pos, depth-1)
	if ok {
		if entry.Lower >= beta {
			return entry.Lower
		}
		if entry.Upper <= alpha {
			return entry.Upper
		}
		alpha = maxInt(alpha, entry.Lower)
		beta = minInt(beta, entry.Upper)
	} else {
		s.cache.Put(pos, depth-1, CacheEntry{BestMove: NullMove, Lower: -Infinity, Upper: Infinity})
	}

	moves := pos.LegalMoves()
	s.shuffle(moves)

	white := pos.SideToMove == White
	best := -Infinity
	if !white {
		best = Infinity
	}
	bestMove := NullMove

	for _, m := range moves {
		child := pos.Clone()
		child.MakeMove(m)
		score := s.minimax(child, depth-1, alpha, beta)

		if white {
			if score > best {
				best = score
				bestMove = m
			}
			if best >= beta {
				break
			}
			alpha = maxInt(alpha, best)
		} else {
			if score < best {
				best = score
				bestMove = m
			}
			if best <= alpha {
				break
			}
			beta = minInt(beta, best)
		}
	}

	newEntry := CacheEntry{BestMove: bestMove, Lower: -Infinity, Upper: Infinity}
	if ok {
		newEntry.Lower, newEntry.Upper = entry.Lower, entry.Upper
	}
	switch {
	case best <= origAlpha:
		newEntry.Upper = best
	case best >= origBeta:
		newEntry.Lower = best
	default:
		newEntry.Lower, newEntry.Upper = best, best
	}
	s.cache.Put(pos, depth-1, newEntry)

	return best
}

// mtdf reduces minimax at a fixed depth to a sequence of zero-window
// probes that converge to the minimax value, using f as the initial
// guess (usually the value found at the previous depth).
func (s *Search) mtdf(pos *Position, depth, f int) int {
	lower, upper := -Infinity, Infinity
	guess := f
	beta := guess

	for lower < upper {
		if guess == lower {
			beta = guess + 1
		} else {
			beta = guess
		}
		guess = s.minimax(pos, depth, beta-1, beta)
		if guess < beta {
			upper = guess
		} else {
			lower = guess
		}
	}
	// Re-run to guarantee the best move for the final window is present
	// in the cache: the loop above may have cleared it on overflow.
	s.minimax(pos, depth, beta-1, beta)
	return guess
}

// ChooseMove iteratively deepens from depth 1, driving each depth with
// mtdf, until maxDepth is reached or the time budget (advertised, not
// enforced mid-recursion) expires between depths. It returns the score
// and best move found at the last depth fully completed.
func (s *Search) ChooseMove(pos *Position, tc *TimeControl) (int, Move) {
	s.log.BeginSearch()
	defer s.log.EndSearch()

	guess := 0
	bestMove := NullMove

	for depth := 1; tc.NextDepth(depth); depth++ {
		guess = s.mtdf(pos, depth, guess)
		if entry, ok := s.cache.Get(pos, depth-1); ok && entry.BestMove != NullMove {
			bestMove = entry.BestMove
		}
		s.Stats.Depth = depth
		s.log.PrintPV(s.Stats, guess, bestMove)
		if bestMove == NullMove {
			// Terminal at the root: nothing more to search.
			break
		}
	}
	return guess, bestMove
}
