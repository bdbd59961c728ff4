package cube

// factorials holds n! at index n for the small range this package needs (n <= 12).
var factorials = [13]uint32{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600,
}

// PermIndex returns the lexicographic rank of permutation p among
// permutations of 0..len(p), in [0, len(p)!).
func PermIndex(p []uint8) uint32 {
	n := len(p)
	var fin uint32
	for i := 0; i < n; i++ {
		var count uint32
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				count++
			}
		}
		fin += count * factorials[n-i-1]
	}
	return fin
}

// OriIndex returns the base-k value of the first len(o)-1 orientation
// digits of o (the last digit is fixed by the parity invariant and is not
// encoded). Digits are normalized into [0, k) before being combined.
func OriIndex(o []int8, k int8) uint32 {
	var result uint32
	n := len(o)
	for i := 0; i < n-1; i++ {
		pos := ((o[i] % k) + k) % k
		result = result*uint32(k) + uint32(pos)
	}
	return result
}

const (
	coCount = 2187 // 3^7
	eoCount = 2048 // 2^11
)

// StateIndex returns the three pruning-table keys for s: the combined
// corner index (perm*3^7 + ori), the edge-orientation index, and the
// edge-permutation index.
func StateIndex(s CubeState) (cornerIndex uint32, eoIndex uint32, epIndex uint32) {
	cpIndex := PermIndex(s.Cp[:])
	coIndex := OriIndex(s.Co[:], 3)
	cornerIndex = cpIndex*coCount + coIndex
	eoIndex = OriIndex(s.Eo[:], 2)
	epIndex = PermIndex(s.Ep[:])
	return
}
