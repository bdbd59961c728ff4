package cube

// applyBasemove applies one clockwise quarter turn of face f to s and
// returns the resulting state. Orientation deltas are added first (on the
// pre-permutation slot order), then the permutation gathers both
// permutation and orientation arrays; this "twist, then permute" order is
// the contract from spec §4.1.
func applyBasemove(s CubeState, f Face) CubeState {
	mv := baseMoves[f]

	orientedCo := [8]int8{}
	for i := range s.Co {
		orientedCo[i] = normalizeOri(s.Co[i]+mv.coDelta[i], 3)
	}
	orientedEo := [12]int8{}
	for i := range s.Eo {
		orientedEo[i] = normalizeOri(s.Eo[i]+mv.eoDelta[i], 2)
	}

	var out CubeState
	for i := 0; i < 8; i++ {
		out.Cp[i] = s.Cp[mv.cpDelta[i]]
		out.Co[i] = orientedCo[mv.cpDelta[i]]
	}
	for i := 0; i < 12; i++ {
		out.Ep[i] = s.Ep[mv.epDelta[i]]
		out.Eo[i] = orientedEo[mv.epDelta[i]]
	}
	return out
}

// normalizeOri reduces v modulo k. For corners (k=3) the result uses the
// signed representation {0, 1, -1}: a twist of 2 is stored as -1. For edges
// (k=2) the result stays in {0, 1}.
func normalizeOri(v int8, k int8) int8 {
	v = ((v % k) + k) % k
	if v == k-1 && k == 3 {
		return -1
	}
	return v
}

// ApplyMove applies a single move instance to s and returns the resulting state.
func ApplyMove(s CubeState, m MoveInstance) CubeState {
	for i := 0; i < m.Dir.quarterTurns(); i++ {
		s = applyBasemove(s, m.Face)
	}
	return s
}

// ApplySequence folds ApplyMove left-to-right over seq, starting from s.
func ApplySequence(s CubeState, seq MoveSequence) CubeState {
	for _, m := range seq {
		s = ApplyMove(s, m)
	}
	return s
}
