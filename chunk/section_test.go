package chunk

import (
	"fmt"
	"testing"

	"github.com/bwkimmel/mcworld/block"
)

func singleStonePaletteTag() map[string]any {
	return map[string]any{
		"block_states": map[string]any{
			"palette": []any{
				map[string]any{"Name": "minecraft:stone"},
			},
		},
	}
}

func TestParseSectionSingletonPalette(t *testing.T) {
	s, err := ParseSection(singleStonePaletteTag())
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}
	for i := 0; i < blockCount; i++ {
		if s.Indices[i] != 0 {
			t.Fatalf("index %d = %d, want 0", i, s.Indices[i])
		}
	}
	if got := s.Get(0); got.Identifier != "minecraft:stone" {
		t.Errorf("Get(0) = %q, want minecraft:stone", got.Identifier)
	}
}

// airWaterSectionTag builds a palette of [air, water] with an all-zero data
// array. Callers set the low bit of long 0, giving the LSB-first-packed
// entry at sub-index 0 (linear cell 0) palette index 1; every other cell
// stays air.
func airWaterSectionTag() map[string]any {
	return map[string]any{
		"block_states": map[string]any{
			"palette": []any{
				map[string]any{"Name": "minecraft:air"},
				map[string]any{"Name": "minecraft:water"},
			},
			"data": make([]int64, 1024), // 4096 entries at 4 bits = 1024 longs
		},
	}
}

func TestParseSectionTwoEntryPalette(t *testing.T) {
	tag := airWaterSectionTag()
	data := tag["block_states"].(map[string]any)["data"].([]int64)
	data[0] = 1 // sub-index 0 (cell 0) set to palette index 1

	s, err := ParseSection(tag)
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}
	for i := 0; i < blockCount; i++ {
		want := "minecraft:air"
		if i == 0 {
			want = "minecraft:water"
		}
		if got := s.Get(i); got.Identifier != want {
			t.Fatalf("cell %d = %q, want %q", i, got.Identifier, want)
		}
	}
}

func TestParseSectionOutOfRangeIndexFails(t *testing.T) {
	tag := map[string]any{
		"block_states": map[string]any{
			"palette": []any{
				map[string]any{"Name": "minecraft:air"},
				map[string]any{"Name": "minecraft:water"},
			},
			"data": []int64{0xF}, // index 15 at cell 0, but palette has only 2 entries
		},
	}
	if _, err := ParseSection(tag); err == nil {
		t.Error("expected out-of-range palette index to fail decode")
	}
}

func TestParseSectionMissingDataFails(t *testing.T) {
	tag := map[string]any{
		"block_states": map[string]any{
			"palette": []any{
				map[string]any{"Name": "minecraft:air"},
				map[string]any{"Name": "minecraft:water"},
			},
		},
	}
	if _, err := ParseSection(tag); err == nil {
		t.Error("expected missing data array with multi-entry palette to fail")
	}
}

func TestNetworkDataBlockCountExcludesAir(t *testing.T) {
	tag := airWaterSectionTag()
	data := tag["block_states"].(map[string]any)["data"].([]int64)
	data[0] = 1

	s, err := ParseSection(tag)
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}
	ids := map[string]int32{"minecraft:air": 0, "minecraft:water": 34}
	payload := s.NetworkData(func(b block.Block) int32 { return ids[b.Identifier] })
	count := int(payload[0])<<8 | int(payload[1])
	if count != 1 {
		t.Errorf("block count = %d, want 1", count)
	}
}

func TestNetworkDataRoundTripsThroughDecode(t *testing.T) {
	tag := airWaterSectionTag()
	data := tag["block_states"].(map[string]any)["data"].([]int64)
	data[0] = 1
	s, err := ParseSection(tag)
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}

	ids := map[string]int32{"minecraft:air": 0, "minecraft:water": 34}
	idOf := func(b block.Block) int32 { return ids[b.Identifier] }
	payload := s.NetworkData(idOf)

	bits, _, cellIDs := decodeNetworkBlockStates(t, payload)
	if bits != 4 {
		t.Fatalf("encoded bits = %d, want 4 (indirect palette of size 2)", bits)
	}
	for cell := 0; cell < blockCount; cell++ {
		wantID := idOf(s.Get(cell))
		if cellIDs[cell] != wantID {
			t.Fatalf("cell %d: decoded id %d, want %d", cell, cellIDs[cell], wantID)
		}
	}
}

// TestNetworkDataRoundTripsSingletonPalette covers the single-valued
// paletted container subshape (bits == 0), never exercised by the
// two-entry indirect-palette round trip above.
func TestNetworkDataRoundTripsSingletonPalette(t *testing.T) {
	s, err := ParseSection(singleStonePaletteTag())
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}
	idOf := func(b block.Block) int32 { return 7 }
	payload := s.NetworkData(idOf)

	count := int(payload[0])<<8 | int(payload[1])
	if count != blockCount {
		t.Errorf("block count = %d, want %d (no air in a stone-only section)", count, blockCount)
	}

	bits, _, cellIDs := decodeNetworkBlockStates(t, payload)
	if bits != 0 {
		t.Fatalf("encoded bits = %d, want 0 (single-valued)", bits)
	}
	for cell, id := range cellIDs {
		if id != 7 {
			t.Fatalf("cell %d: decoded id %d, want 7", cell, id)
		}
	}
}

// TestNetworkDataRoundTripsDirectPalette covers the direct subshape: a
// palette large enough (257 entries) that its natural bit width (9) exceeds
// 8, forcing the encoder to clamp to the fixed direct width and drop the
// local palette entirely.
func TestNetworkDataRoundTripsDirectPalette(t *testing.T) {
	const paletteSize = 257
	palette := make([]any, paletteSize)
	idByName := make(map[string]int32, paletteSize)
	for i := 0; i < paletteSize; i++ {
		name := fmt.Sprintf("minecraft:block_%d", i)
		palette[i] = map[string]any{"Name": name}
		idByName[name] = int32(i)
	}

	naturalBits := bitsNeeded(paletteSize)
	if naturalBits <= 8 {
		t.Fatalf("test fixture invalid: bitsNeeded(%d) = %d, want > 8", paletteSize, naturalBits)
	}
	idxs := make([]int, blockCount)
	for i := range idxs {
		idxs[i] = i % paletteSize
	}
	data := packIndices(idxs, naturalBits)

	tag := map[string]any{
		"block_states": map[string]any{
			"palette": palette,
			"data":    data,
		},
	}
	s, err := ParseSection(tag)
	if err != nil {
		t.Fatalf("ParseSection: %v", err)
	}

	idOf := func(b block.Block) int32 { return idByName[b.Identifier] }
	payload := s.NetworkData(idOf)

	bits, _, cellIDs := decodeNetworkBlockStates(t, payload)
	if bits != directBits {
		t.Fatalf("encoded bits = %d, want %d (clamped direct width)", bits, directBits)
	}
	for cell := 0; cell < blockCount; cell++ {
		wantID := idOf(s.Get(cell))
		if cellIDs[cell] != wantID {
			t.Fatalf("cell %d: decoded id %d, want %d", cell, cellIDs[cell], wantID)
		}
	}
}

// decodeNetworkBlockStates decodes the block-state paletted container that
// follows NetworkData's 2-byte block count, handling all three subshapes
// from spec.md §4.4 (single-valued, indirect, direct). It returns the
// declared bit width, the decoded local palette (nil for the direct
// subshape, which has none), and the resolved global id for every one of
// the 4096 cells.
func decodeNetworkBlockStates(t *testing.T, payload []byte) (bits int, palette []int32, cellIDs [blockCount]int32) {
	t.Helper()
	off := 2
	bits = int(payload[off])
	off++

	readLongs := func(n int32) []int64 {
		longs := make([]int64, n)
		for i := range longs {
			var v int64
			for b := 0; b < 8; b++ {
				v = v<<8 | int64(payload[off])
				off++
			}
			longs[i] = v
		}
		return longs
	}

	if bits == 0 {
		id, n := decodeVarInt(payload[off:])
		off += n
		_, n = decodeVarInt(payload[off:]) // data-array length, always 0
		off += n
		for i := range cellIDs {
			cellIDs[i] = id
		}
		return bits, nil, cellIDs
	}

	if bits <= 8 {
		paletteLen, n := decodeVarInt(payload[off:])
		off += n
		palette = make([]int32, paletteLen)
		for i := range palette {
			v, n := decodeVarInt(payload[off:])
			palette[i] = v
			off += n
		}
		numLongs, n := decodeVarInt(payload[off:])
		off += n
		longs := readLongs(numLongs)
		entriesPerLong := 64 / bits
		mask := int64(1)<<uint(bits) - 1
		for cell := 0; cell < blockCount; cell++ {
			longIdx := cell / entriesPerLong
			sub := cell % entriesPerLong
			shift := uint(bits * sub)
			idx := (longs[longIdx] >> shift) & mask
			cellIDs[cell] = palette[idx]
		}
		return bits, palette, cellIDs
	}

	numLongs, n := decodeVarInt(payload[off:])
	off += n
	longs := readLongs(numLongs)
	entriesPerLong := 64 / bits
	mask := int64(1)<<uint(bits) - 1
	for cell := 0; cell < blockCount; cell++ {
		longIdx := cell / entriesPerLong
		sub := cell % entriesPerLong
		shift := uint(bits * sub)
		cellIDs[cell] = int32((longs[longIdx] >> shift) & mask)
	}
	return bits, nil, cellIDs
}

// decodeVarInt decodes one protocol var-int (LEB128) from buf, returning
// its value and the number of bytes consumed.
func decodeVarInt(buf []byte) (int32, int) {
	var v uint32
	var shift uint
	for i, b := range buf {
		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return int32(v), i + 1
		}
		shift += 7
	}
	return int32(v), len(buf)
}
