package cube

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Table sizes, per spec §3.
const (
	CornersTableSize = 88179840 // 8! * 3^7
	EOTableSize      = 2048     // 2^11
	EPTableSize      = 479001600 // 12!

	cornersMaxDepth = 9
	epMaxDepth      = 9
	eoMaxDepth      = 8
)

// PruningTables holds the three pattern-database pruning tables. Each cell
// is the minimum number of moves required to reach that coordinate from
// the solved state. Once built or loaded, a PruningTables is read-only and
// may be shared across concurrent Solve calls.
type PruningTables struct {
	Corners []byte
	EO      []byte
	EP      []byte
}

// BuildTables constructs all three pruning tables, one per goroutine via
// errgroup (spec §5: table generation admits trivial parallelism across
// the three independent tables).
func BuildTables(ctx context.Context, log zerolog.Logger) (*PruningTables, error) {
	tables := &PruningTables{
		Corners: make([]byte, CornersTableSize),
		EO:      make([]byte, EOTableSize),
		EP:      make([]byte, EPTableSize),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		buildTable(tables.Corners, cornersMaxDepth, log.With().Str("table", "corners").Logger(), func(s CubeState) uint32 {
			idx, _, _ := StateIndex(s)
			return idx
		})
		return nil
	})
	g.Go(func() error {
		buildTable(tables.EO, eoMaxDepth, log.With().Str("table", "eo").Logger(), func(s CubeState) uint32 {
			_, idx, _ := StateIndex(s)
			return idx
		})
		return nil
	})
	g.Go(func() error {
		buildTable(tables.EP, epMaxDepth, log.With().Str("table", "ep").Logger(), func(s CubeState) uint32 {
			_, _, idx := StateIndex(s)
			return idx
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// buildTable runs iterative-deepening DFS from the solved state out to
// maxDepth, writing table[project(state)] = d the first time a coordinate
// is reached at depth d. table[0] is pre-initialized to 0 (the solved
// coordinate) and is never overwritten, per the "first writer wins"
// discipline of spec §4.4/§9.
func buildTable(table []byte, maxDepth int, log zerolog.Logger, project func(CubeState) uint32) {
	for d := 1; d <= maxDepth; d++ {
		log.Info().Int("depth", d).Msg("building pruning table")
		dfsFill(table, Solved, byte(d), byte(d), 0, project)
	}
}

func dfsFill(table []byte, state CubeState, originalDepth, remaining byte, mask FaceMask, project func(CubeState) uint32) {
	if remaining == 0 {
		idx := project(state)
		if idx != 0 && table[idx] == 0 {
			table[idx] = originalDepth
		}
		return
	}
	for _, m := range ALL_MOVES {
		if mask.Forbidden(m.Face) {
			continue
		}
		next := ApplyMove(state, m)
		nextMask := AllowedAfter(mask, m.Face)
		dfsFill(table, next, originalDepth, remaining-1, nextMask, project)
	}
}

// SaveTables writes the three tables as raw contiguous byte blobs to
// dir/corners.pt, dir/edges_o.pt, dir/edges_p.pt.
func SaveTables(dir string, tables *PruningTables) error {
	if err := os.WriteFile(dir+"/corners.pt", tables.Corners, 0o644); err != nil {
		return &TableError{Path: dir + "/corners.pt", Err: err}
	}
	if err := os.WriteFile(dir+"/edges_o.pt", tables.EO, 0o644); err != nil {
		return &TableError{Path: dir + "/edges_o.pt", Err: err}
	}
	if err := os.WriteFile(dir+"/edges_p.pt", tables.EP, 0o644); err != nil {
		return &TableError{Path: dir + "/edges_p.pt", Err: err}
	}
	return nil
}

// LoadTables reads the three pruning-table files from dir. It reports a
// *TableError if any file is missing or the wrong size.
func LoadTables(dir string) (*PruningTables, error) {
	corners, err := loadOne(dir+"/corners.pt", CornersTableSize)
	if err != nil {
		return nil, err
	}
	eo, err := loadOne(dir+"/edges_o.pt", EOTableSize)
	if err != nil {
		return nil, err
	}
	ep, err := loadOne(dir+"/edges_p.pt", EPTableSize)
	if err != nil {
		return nil, err
	}
	return &PruningTables{Corners: corners, EO: eo, EP: ep}, nil
}

func loadOne(path string, wantSize int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TableError{Path: path, Err: err}
	}
	if len(data) != wantSize {
		return nil, &TableError{Path: path, Err: fmt.Errorf("truncated table: got %d bytes, want %d", len(data), wantSize)}
	}
	return data, nil
}
