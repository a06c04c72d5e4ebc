// Package world is the façade a caller uses to open a world directory and
// query blocks and chunks at arbitrary world positions, lazily loading and
// caching region files as needed. See mcstrings' readWorld/readDimension
// for the directory-layout conventions this package follows.
package world

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/bwkimmel/mcworld/block"
	"github.com/bwkimmel/mcworld/chunk"
	"github.com/bwkimmel/mcworld/mcerr"
	"github.com/bwkimmel/mcworld/mclog"
	"github.com/bwkimmel/mcworld/position"
	"github.com/bwkimmel/mcworld/region"
)

// Dimension selects which of a world's region subdirectories a query
// targets. This is a supplement beyond single-region-tree reading: the
// source format stores the Nether and the End as sibling region trees
// alongside the Overworld's, and mcstrings' readDimension already walks
// all three when extracting strings.
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	TheEnd
)

// regionDir returns the directory name, relative to the world root, that
// holds this dimension's region files.
func (d Dimension) regionDir() string {
	switch d {
	case Nether:
		return "DIM-1/region"
	case TheEnd:
		return "DIM1/region"
	default:
		return "region"
	}
}

// regionCoord keys the per-dimension region cache. Plain comparable struct
// rather than position.Position, since the cache never needs position's
// total ordering, only equality and hashing as a map key.
type regionCoord struct {
	dim  Dimension
	x, z int32
}

// World is a loaded world directory: its decoded level metadata plus a
// lazily populated cache of decoded regions, one per dimension actually
// queried.
type World struct {
	path  string
	Level map[string]any

	regions map[regionCoord]*region.Region
}

// Load opens path as a world directory. It requires level.dat (decoded as
// a gzip-compressed root compound tag) and a region/ subdirectory; their
// absence is mcerr.ErrInvalidWorld.
func Load(path string) (*World, error) {
	levelPath := filepath.Join(path, "level.dat")
	regionPath := filepath.Join(path, "region")

	levelInfo, err := os.Stat(levelPath)
	if err != nil || levelInfo.IsDir() {
		return nil, fmt.Errorf("world: %w: %s", mcerr.ErrInvalidWorld, levelPath)
	}
	regionInfo, err := os.Stat(regionPath)
	if err != nil || !regionInfo.IsDir() {
		return nil, fmt.Errorf("world: %w: %s", mcerr.ErrInvalidWorld, regionPath)
	}

	f, err := os.Open(levelPath)
	if err != nil {
		return nil, fmt.Errorf("world: read level.dat: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("world: decompress level.dat: %w", err)
	}
	defer gz.Close()
	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("world: decompress level.dat: %w", err)
	}

	var level map[string]any
	if err := nbt.UnmarshalEncoding(raw, &level, nbt.BigEndian); err != nil {
		return nil, fmt.Errorf("world: decode level.dat: %w", err)
	}

	return &World{
		path:    path,
		Level:   level,
		regions: make(map[regionCoord]*region.Region),
	}, nil
}

// loadRegion returns the decoded region holding p in dimension dim,
// reading it from disk on first access. A failed read (missing file, I/O
// error, or a parse failure) is logged and reported as absent; it does
// not poison the cache for a later, successful retry of a different
// region.
func (w *World) loadRegion(dim Dimension, p position.Position) (*region.Region, bool) {
	rp := p.RegionInWorld()
	key := regionCoord{dim: dim, x: rp.X, z: rp.Z}
	if r, ok := w.regions[key]; ok {
		return r, true
	}

	name := fmt.Sprintf("r.%d.%d.mca", rp.X, rp.Z)
	full := filepath.Join(w.path, dim.regionDir(), name)
	data, err := os.ReadFile(full)
	if err != nil {
		mclog.Warnf("world: region %s: %v", full, err)
		return nil, false
	}
	r, err := region.Parse(data)
	if err != nil {
		mclog.Warnf("world: region %s: %v", full, err)
		return nil, false
	}
	w.regions[key] = r
	return r, true
}

// GetBlock returns the block at world position p in the overworld.
func (w *World) GetBlock(p position.Position) (block.Block, bool) {
	return w.GetBlockIn(Overworld, p)
}

// GetBlockIn returns the block at world position p in the given
// dimension.
func (w *World) GetBlockIn(dim Dimension, p position.Position) (block.Block, bool) {
	r, ok := w.loadRegion(dim, p)
	if !ok {
		return block.Block{}, false
	}
	return r.Get(p)
}

// GetChunk returns the chunk column containing world position p in the
// overworld.
func (w *World) GetChunk(p position.Position) (*chunk.Chunk, bool) {
	return w.GetChunkIn(Overworld, p)
}

// GetChunkIn returns the chunk column containing world position p in the
// given dimension.
func (w *World) GetChunkIn(dim Dimension, p position.Position) (*chunk.Chunk, bool) {
	r, ok := w.loadRegion(dim, p)
	if !ok {
		return nil, false
	}
	return r.GetChunk(p)
}
