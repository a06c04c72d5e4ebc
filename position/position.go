// Package position implements the coordinate algebra that maps a world block
// position to region, chunk, section, and in-section coordinates. Every
// rounding rule here must round toward negative infinity, not toward zero;
// see mc_world_parser's parser/mod.rs, which this package's behavior mirrors
// exactly.
package position

// Position is a signed block position, either in world space or one of the
// derived spaces (region, chunk, in-section) depending on which method
// produced it.
type Position struct {
	X, Y, Z int32
}

// New returns a Position with the given coordinates.
func New(x, y, z int32) Position {
	return Position{X: x, Y: y, Z: z}
}

// RegionInWorld returns the coordinates, in regions, of the region
// containing p. Each region spans 512 blocks on a side.
func (p Position) RegionInWorld() Position {
	return Position{X: p.X >> 9, Y: 0, Z: p.Z >> 9}
}

// ChunkInRegion returns the chunk coordinates (in chunks, not region-local)
// of the chunk column containing p. Despite the name (kept for symmetry with
// the other derived views), the result is chunk-in-world on x/z; y is
// unused and always zero.
func (p Position) ChunkInRegion() Position {
	return Position{X: floorDiv16(p.X), Y: 0, Z: floorDiv16(p.Z)}
}

// floorDiv16 divides by 16, rounding toward negative infinity.
func floorDiv16(v int32) int32 {
	q := v / 16
	if v < 0 && q*16 != v {
		q--
	}
	return q
}

// SectionIndexInChunk returns the index, in [0, 24), of the section
// containing p.Y. The second return value is false if p.Y is outside
// [-64, 320), the supported height range.
func (p Position) SectionIndexInChunk() (int, bool) {
	if p.Y < -64 || p.Y >= 320 {
		return 0, false
	}
	return int(p.Y+64) / 16, true
}

// BlockInSection returns p's coordinates within its containing 16x16x16
// section, each axis reduced modulo 16 using Euclidean (always non-negative)
// remainder.
func (p Position) BlockInSection() Position {
	return Position{X: euclidMod16(p.X), Y: euclidMod16(p.Y), Z: euclidMod16(p.Z)}
}

func euclidMod16(v int32) int32 {
	m := v % 16
	if m < 0 {
		m += 16
	}
	return m
}

// BlockIndexInSection returns the linear index, in [0, 4096), of p within
// its containing section's block array. p is expected to already be in
// section-local coordinates (see BlockInSection).
func (p Position) BlockIndexInSection() int {
	return int(p.Y)*256 + int(p.Z)*16 + int(p.X)
}

// Compare returns -1, 0, or 1 according to whether p sorts before, equal to,
// or after other, using the total order spec.md defines: lexicographic by
// (y, x, z). mc_world_parser uses this ordering to key a BTreeMap of loaded
// regions; this implementation keys its region cache on a plain comparable
// struct instead (see package world), so Compare exists for parity and
// testability rather than as a cache key.
func (p Position) Compare(other Position) int {
	if p.Y != other.Y {
		return sign(int64(p.Y) - int64(other.Y))
	}
	if p.X != other.X {
		return sign(int64(p.X) - int64(other.X))
	}
	return sign(int64(p.Z) - int64(other.Z))
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
