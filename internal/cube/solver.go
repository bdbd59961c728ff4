package cube

// heuristic returns the admissible lower bound on the number of moves
// remaining to solve s: the max of the three pruning-table lookups (spec §4.5).
func heuristic(s CubeState, tables *PruningTables) int {
	cornerIdx, eoIdx, epIdx := StateIndex(s)
	h := int(tables.Corners[cornerIdx])
	if v := int(tables.EO[eoIdx]); v > h {
		h = v
	}
	if v := int(tables.EP[epIdx]); v > h {
		h = v
	}
	return h
}

// searchResult is either "found" (path holds the solution) or a new bound
// to retry with.
type searchResult struct {
	found    bool
	newBound int
}

// Solve runs IDA* from start against tables and returns a shortest move
// sequence that restores the solved state. The search is exhaustive and
// the heuristic admissible, so the first solution found at the smallest
// successful bound is optimal (spec §4.5).
func Solve(start CubeState, tables *PruningTables) MoveSequence {
	if start == Solved {
		return MoveSequence{}
	}

	bound := heuristic(start, tables)
	path := make(MoveSequence, 0, 20)

	for {
		result, solution := search(start, 0, bound, 0, path, tables)
		if result.found {
			return solution
		}
		if result.newBound == -1 {
			// Unreachable for a legal cube state: the group diameter is <=
			// 20 and the heuristic is admissible, so a bound always exists.
			panic(&InvariantError{Context: "IDA* search exhausted without finding a solution"})
		}
		bound = result.newBound
	}
}

func search(state CubeState, g, bound int, mask FaceMask, path MoveSequence, tables *PruningTables) (searchResult, MoveSequence) {
	h := heuristic(state, tables)
	f := g + h
	if f > bound {
		return searchResult{newBound: f}, nil
	}
	if state == Solved {
		out := make(MoveSequence, len(path))
		copy(out, path)
		return searchResult{found: true}, out
	}

	minBound := -1
	for _, m := range ALL_MOVES {
		if mask.Forbidden(m.Face) {
			continue
		}
		next := ApplyMove(state, m)
		nextMask := AllowedAfter(mask, m.Face)
		result, solution := search(next, g+1, bound, nextMask, append(path, m), tables)
		if result.found {
			return result, solution
		}
		if minBound == -1 || result.newBound < minBound {
			minBound = result.newBound
		}
	}
	return searchResult{newBound: minBound}, nil
}
