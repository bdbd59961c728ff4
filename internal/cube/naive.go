package cube

// BruteForceSolve is a pruning-table-free reference solver used only by
// tests to cross-check Solve's IDA* answers on scrambles shallow enough to
// finish in reasonable time (a handful of moves). It mirrors the sketch in
// the distillation source's solver.rs (a naive Solver alongside the IDA*
// one) but expressed as plain iterative-deepening DFS bounded purely by
// the move reducer, with no heuristic.
func BruteForceSolve(start CubeState, maxDepth int) (MoveSequence, bool) {
	for d := 0; d <= maxDepth; d++ {
		path := make(MoveSequence, 0, d)
		if seq, ok := bruteForceSearch(start, d, 0, path); ok {
			return seq, true
		}
	}
	return nil, false
}

func bruteForceSearch(state CubeState, remaining int, mask FaceMask, path MoveSequence) (MoveSequence, bool) {
	if remaining == 0 {
		if state == Solved {
			out := make(MoveSequence, len(path))
			copy(out, path)
			return out, true
		}
		return nil, false
	}
	for _, m := range ALL_MOVES {
		if mask.Forbidden(m.Face) {
			continue
		}
		next := ApplyMove(state, m)
		nextMask := AllowedAfter(mask, m.Face)
		if seq, ok := bruteForceSearch(next, remaining-1, nextMask, append(path, m)); ok {
			return seq, true
		}
	}
	return nil, false
}
