// Package region parses a single region (.mca) file: its 8 KiB header of
// chunk locations and timestamps, followed by sector-aligned, compressed
// chunk payloads. See mcstrings' readRegion/readChunk, which this package's
// layout and compression dispatch follow closely.
package region

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/bwkimmel/mcworld/block"
	"github.com/bwkimmel/mcworld/chunk"
	"github.com/bwkimmel/mcworld/mcerr"
	"github.com/bwkimmel/mcworld/mclog"
	"github.com/bwkimmel/mcworld/position"
)

const (
	headerSize   = 8192
	sectorSize   = 4096
	slotCount    = 1024
	regionExtent = 32 // chunks per side
)

// Region is one decoded r.<rx>.<rz>.mca file: every chunk slot it declared
// present, already parsed.
type Region struct {
	Chunks []*chunk.Chunk
}

// identReadCloser wraps a Reader with a no-op Close, for the uncompressed
// (code 3) case.
type identReadCloser struct {
	io.Reader
}

func (identReadCloser) Close() error { return nil }

// decompressors maps a chunk's compression discriminator byte to the
// reader it requires; gzip and zlib mirror mcstrings' compressionFilters
// table, klauspost/compress standing in for stdlib zlib.
var decompressors = map[byte]func(io.Reader) (io.ReadCloser, error){
	1: func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) },
	2: func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) },
	3: func(r io.Reader) (io.ReadCloser, error) { return identReadCloser{r}, nil },
}

// Parse decodes the full byte contents of one region file.
func Parse(data []byte) (*Region, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("region: %w: file is %d bytes, need at least %d", mcerr.ErrEndOfData, len(data), headerSize)
	}

	type location struct {
		offset uint32
		count  uint8
	}
	var locations [slotCount]location
	for i := 0; i < slotCount; i++ {
		rec := data[i*4 : i*4+4]
		offset := uint32(rec[0])<<16 | uint32(rec[1])<<8 | uint32(rec[2])
		locations[i] = location{offset: offset, count: rec[3]}
	}
	// Timestamp table (bytes 0x1000..0x1FFF) is part of the on-disk
	// layout but carries nothing this library exposes.

	r := &Region{}
	for i, loc := range locations {
		if loc.offset == 0 && loc.count == 0 {
			continue
		}
		start := int(loc.offset) * sectorSize
		end := start + int(loc.count)*sectorSize
		if start < headerSize || end > len(data) {
			return nil, fmt.Errorf("region: slot %d: %w: sector range [%d,%d) outside file", i, mcerr.ErrEndOfData, start, end)
		}
		payload := data[start:end]
		if len(payload) < 5 {
			return nil, fmt.Errorf("region: slot %d: %w: payload too short for length+compression header", i, mcerr.ErrEndOfData)
		}
		length := binary.BigEndian.Uint32(payload[0:4])
		compression := payload[4]
		if int(length)-1 > len(payload)-5 {
			return nil, fmt.Errorf("region: slot %d: %w: declared length exceeds sector allocation", i, mcerr.ErrEndOfData)
		}
		compressed := payload[5 : 5+int(length)-1]

		newReader, ok := decompressors[compression]
		if !ok {
			return nil, fmt.Errorf("region: slot %d: %w: code %d", i, mcerr.ErrUnsupportedCompression, compression)
		}
		rc, err := newReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("region: slot %d: decompress: %w", i, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("region: slot %d: decompress: %w", i, err)
		}

		var tag map[string]any
		if err := nbt.UnmarshalEncoding(raw, &tag, nbt.BigEndian); err != nil {
			return nil, fmt.Errorf("region: slot %d: decode tag: %w", i, err)
		}
		c, err := chunk.ParseChunk(tag)
		if err != nil {
			return nil, fmt.Errorf("region: slot %d: %w", i, err)
		}
		r.Chunks = append(r.Chunks, c)
	}
	return r, nil
}

// GetChunk returns the chunk whose chunk-in-region coordinates match p,
// linearly scanning the chunks this region holds.
func (r *Region) GetChunk(p position.Position) (*chunk.Chunk, bool) {
	cc := p.ChunkInRegion()
	for _, c := range r.Chunks {
		if c.X == cc.X && c.Z == cc.Z {
			return c, true
		}
	}
	mclog.Warnf("region: chunk (%d,%d) absent", cc.X, cc.Z)
	return nil, false
}

// Get returns the block at world position p, forwarding through the chunk
// the position falls in.
func (r *Region) Get(p position.Position) (block.Block, bool) {
	c, ok := r.GetChunk(p)
	if !ok {
		return block.Block{}, false
	}
	return c.Get(p)
}
