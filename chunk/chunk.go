package chunk

import (
	"fmt"

	"github.com/bwkimmel/mcworld/block"
	"github.com/bwkimmel/mcworld/mclog"
	"github.com/bwkimmel/mcworld/position"
)

// sectionCount is the number of vertical sections in a chunk, covering
// world y in [-64, 320).
const sectionCount = 24

// finishedStatus is the Status value a fully generated chunk carries.
const finishedStatus = "minecraft:full"

// Chunk is one 16-wide, 384-tall column of a world, assembled from a
// decoded chunk compound tag.
type Chunk struct {
	DataVersion int32
	X, Z        int32
	Status      string
	Sections    [sectionCount]*Section
}

// IsFinished reports whether the chunk has completed world generation.
func (c *Chunk) IsFinished() bool {
	return c.Status == finishedStatus
}

// Get returns the block at world position p, and false if p's y falls
// outside the chunk's supported range or the corresponding section was
// never present in the source data.
func (c *Chunk) Get(p position.Position) (block.Block, bool) {
	idx, ok := p.SectionIndexInChunk()
	if !ok {
		mclog.Warnf("chunk (%d,%d): y=%d out of section range", c.X, c.Z, p.Y)
		return block.Block{}, false
	}
	s := c.Sections[idx]
	if s == nil {
		mclog.Warnf("chunk (%d,%d): section %d absent", c.X, c.Z, idx)
		return block.Block{}, false
	}
	local := p.BlockInSection()
	return s.Get(local.BlockIndexInSection()), true
}

// NetworkData concatenates the network payload of every present section,
// bottom to top, skipping any section absent from the source chunk.
func (c *Chunk) NetworkData(idOf IDOf) []byte {
	var buf []byte
	for _, s := range c.Sections {
		if s == nil {
			continue
		}
		buf = append(buf, s.NetworkData(idOf)...)
	}
	return buf
}

// ParseChunk decodes a chunk from its root compound tag: DataVersion,
// xPos/yPos/zPos (yPos is required by the format but carries no use), Status,
// and a sections list, each entry keyed by its Y field into the 24-slot
// vertical stack.
func ParseChunk(tag map[string]any) (*Chunk, error) {
	c := &Chunk{}

	if v, ok := tag["DataVersion"].(int32); ok {
		c.DataVersion = v
	}
	x, ok := tag["xPos"].(int32)
	if !ok {
		return nil, fmt.Errorf("chunk: missing xPos")
	}
	if _, ok := tag["yPos"].(int32); !ok {
		return nil, fmt.Errorf("chunk: missing yPos")
	}
	z, ok := tag["zPos"].(int32)
	if !ok {
		return nil, fmt.Errorf("chunk: missing zPos")
	}
	c.X, c.Z = x, z

	status, ok := tag["Status"].(string)
	if !ok {
		return nil, fmt.Errorf("chunk: missing Status")
	}
	c.Status = status

	sections, ok := tag["sections"].([]any)
	if !ok {
		return nil, fmt.Errorf("chunk: missing sections list")
	}
	for i, entry := range sections {
		sectionTag, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("chunk: sections[%d] is not a compound", i)
		}
		y, ok := sectionTag["Y"].(int8)
		if !ok {
			return nil, fmt.Errorf("chunk: sections[%d] missing Y", i)
		}
		idx := int(y) + 4
		if idx < 0 || idx >= sectionCount {
			// Sections outside the playable range (e.g. the extra
			// end-of-world marker section some tools emit) carry no
			// addressable blocks.
			continue
		}
		s, err := ParseSection(sectionTag)
		if err != nil {
			return nil, fmt.Errorf("chunk: section Y=%d: %w", y, err)
		}
		c.Sections[idx] = s
	}

	return c, nil
}
