// Package cube implements the 3x3x3 Rubik's Cube state algebra: a
// CubeState value encoded as corner/edge permutation and orientation
// arrays, the six base-move transformation tables, and composition of
// moves onto a state.
package cube

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int

const (
	U Face = iota
	D
	L
	R
	F
	B
)

func (f Face) String() string {
	return [...]string{"U", "D", "L", "R", "F", "B"}[f]
}

// basemovePos returns the bit position used by the move-sequence reducer
// for a given face. Order is part of the contract: B=0, F=1, R=2, L=3, D=4, U=5.
func basemovePos(f Face) uint {
	switch f {
	case B:
		return 0
	case F:
		return 1
	case R:
		return 2
	case L:
		return 3
	case D:
		return 4
	case U:
		return 5
	default:
		panic(&InvariantError{Context: fmt.Sprintf("unknown face %d", f)})
	}
}

// Antipode returns the opposite face on the same axis (U<->D, L<->R, F<->B).
func Antipode(f Face) Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case L:
		return R
	case R:
		return L
	case F:
		return B
	case B:
		return F
	default:
		panic(&InvariantError{Context: fmt.Sprintf("unknown face %d", f)})
	}
}

// Direction is the quarter-turn count of a move instance.
type Direction int

const (
	Normal Direction = iota // one clockwise quarter turn
	Prime                   // one counterclockwise quarter turn (three clockwise turns)
	Double                  // a half turn (two clockwise turns)
)

func (d Direction) String() string {
	switch d {
	case Normal:
		return ""
	case Prime:
		return "'"
	case Double:
		return "2"
	default:
		return "?"
	}
}

// quarterTurns returns how many times the base clockwise move must be
// applied to realize this direction.
func (d Direction) quarterTurns() int {
	switch d {
	case Normal:
		return 1
	case Double:
		return 2
	case Prime:
		return 3
	default:
		panic(&InvariantError{Context: fmt.Sprintf("unknown direction %d", d)})
	}
}

// MoveInstance is a single face turn: a face paired with a direction.
type MoveInstance struct {
	Face Face
	Dir  Direction
}

func (m MoveInstance) String() string {
	return m.Face.String() + m.Dir.String()
}

// Invert returns the move that undoes m.
func (m MoveInstance) Invert() MoveInstance {
	switch m.Dir {
	case Normal:
		return MoveInstance{Face: m.Face, Dir: Prime}
	case Prime:
		return MoveInstance{Face: m.Face, Dir: Normal}
	default:
		return m
	}
}

// MoveSequence is an ordered list of move instances.
type MoveSequence []MoveInstance

// Invert reverses the sequence and inverts each move's direction.
func (s MoveSequence) Invert() MoveSequence {
	out := make(MoveSequence, len(s))
	for i, m := range s {
		out[len(s)-1-i] = m.Invert()
	}
	return out
}

func (s MoveSequence) String() string {
	out := ""
	for i, m := range s {
		if i > 0 {
			out += " "
		}
		out += m.String()
	}
	return out
}

// ALL_MOVES is the fixed iteration order for the 18 move instances. This
// order is part of the contract: it determines which optimal solution is
// returned first when more than one exists.
var ALL_MOVES = [18]MoveInstance{
	{U, Normal}, {U, Prime}, {U, Double},
	{D, Normal}, {D, Prime}, {D, Double},
	{L, Normal}, {L, Prime}, {L, Double},
	{R, Normal}, {R, Prime}, {R, Double},
	{F, Normal}, {F, Prime}, {F, Double},
	{B, Normal}, {B, Prime}, {B, Double},
}

// baseMove is the effect of a single clockwise quarter turn of a face:
// permutation deltas (gather index: new[i] = old[delta[i]]) and the
// orientation added to each position before the permutation is applied.
type baseMove struct {
	cpDelta [8]uint8
	coDelta [8]int8
	epDelta [12]uint8
	eoDelta [12]int8
}

// Corner slot order: UBL UBR UFR UFL DFL DFR DBR DBL
// Edge slot order: UB UR UF UL BL BR FR FL DF DR DB DL
var baseMoves = map[Face]baseMove{
	U: {
		cpDelta: [8]uint8{1, 2, 3, 0, 4, 5, 6, 7},
		coDelta: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		epDelta: [12]uint8{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11},
		eoDelta: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	D: {
		cpDelta: [8]uint8{0, 1, 2, 3, 5, 6, 7, 4},
		coDelta: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		epDelta: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
		eoDelta: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R: {
		cpDelta: [8]uint8{0, 6, 1, 3, 4, 2, 5, 7},
		coDelta: [8]int8{0, -1, 1, 0, 0, -1, 1, 0},
		epDelta: [12]uint8{0, 5, 2, 3, 4, 9, 1, 7, 8, 6, 10, 11},
		eoDelta: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L: {
		cpDelta: [8]uint8{3, 1, 2, 4, 7, 5, 6, 0},
		coDelta: [8]int8{1, 0, 0, -1, 1, 0, 0, -1},
		epDelta: [12]uint8{0, 1, 2, 7, 3, 5, 6, 11, 8, 9, 10, 4},
		eoDelta: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F: {
		cpDelta: [8]uint8{0, 1, 5, 2, 3, 4, 6, 7},
		coDelta: [8]int8{0, 0, -1, 1, -1, 1, 0, 0},
		epDelta: [12]uint8{0, 1, 6, 3, 4, 5, 8, 2, 7, 9, 10, 11},
		eoDelta: [12]int8{0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0},
	},
	B: {
		cpDelta: [8]uint8{7, 0, 2, 3, 4, 5, 1, 6},
		coDelta: [8]int8{-1, 1, 0, 0, 0, 0, -1, 1},
		epDelta: [12]uint8{4, 1, 2, 3, 10, 0, 6, 7, 8, 9, 5, 11},
		eoDelta: [12]int8{1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0},
	},
}

// CubeState is an immutable value describing a cube configuration.
type CubeState struct {
	Cp [8]uint8
	Co [8]int8
	Ep [12]uint8
	Eo [12]int8
}

// Solved is the default, fully-solved CubeState.
var Solved = CubeState{
	Cp: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
	Co: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
	Ep: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	Eo: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// ParseError reports a malformed scramble token.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cube: invalid move token %q", e.Token)
}

// InvariantError reports an internal consistency bug. Callers that detect
// one are expected to panic with it; it is not meant to be recovered from
// in normal operation.
type InvariantError struct {
	Context string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cube: invariant violated: %s", e.Context)
}

// TableError reports a missing or truncated pruning-table file.
type TableError struct {
	Path string
	Err  error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("cube: pruning table %s: %v", e.Path, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
