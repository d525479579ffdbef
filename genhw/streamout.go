package genhw

// 3DSTATE_STREAMOUT DW1.
const (
	StreamoutSOEnable      uint32 = 1 << 31
	StreamoutRenderDisable uint32 = 1 << 30

	StreamoutRenderStreamShift uint32 = 27
	StreamoutRenderStreamWidth uint32 = 2

	StreamoutReorderModeShift uint32 = 26
	StreamoutReorderModeWidth uint32 = 1

	StreamoutStatistics uint32 = 1 << 25

	// Gen7 only. Gen8 derives buffer enables from 3DSTATE_SO_BUFFER.
	StreamoutBufferEnablesShift uint32 = 8
	StreamoutBufferEnablesWidth uint32 = 4
)

// 3DSTATE_STREAMOUT DW2 packs a (read offset, read length) pair per
// stream, one byte each, stream 0 in the low byte. The offset is a U1
// count of 512-bit units; the length is a U5-1 count of 512-bit units.
const (
	StreamoutReadLenWidth    uint32 = 5
	StreamoutReadOffsetWidth uint32 = 1
)

// StreamoutReadLenShift returns the DW2 shift of a stream's vertex
// read length.
func StreamoutReadLenShift(stream int) uint32 {
	return uint32(stream) * 8
}

// StreamoutReadOffsetShift returns the DW2 shift of a stream's vertex
// read offset.
func StreamoutReadOffsetShift(stream int) uint32 {
	return uint32(stream)*8 + 5
}

// 3DSTATE_STREAMOUT DW3 and DW4 (Gen8) pack the four surface pitches
// two per word: DW3 holds buffers 1 and 0, DW4 buffers 3 and 2, the
// even buffer in the low half.
const (
	StreamoutPitchWidth     uint32 = 12
	StreamoutPitchLowShift  uint32 = 0
	StreamoutPitchHighShift uint32 = 16
)

// SO_DECL is a 16-bit declaration, one lane per stream in each 64-bit
// SO_DECL_LIST entry.
const (
	DeclOutputSlotShift uint32 = 12
	DeclOutputSlotWidth uint32 = 2

	DeclHoleFlag uint32 = 1 << 11

	DeclRegIndexShift uint32 = 4
	DeclRegIndexWidth uint32 = 6

	DeclComponentMaskShift uint32 = 0
	DeclComponentMaskWidth uint32 = 4

	DeclLaneWidth uint32 = 16
)

// 3DSTATE_SO_DECL_LIST DW1 packs a 4-bit buffer-select mask per
// stream; DW2 packs an 8-bit entry count per stream. Stream 0 sits in
// the low bits of both.
const (
	DeclListBufferSelectsWidth uint32 = 4
	DeclListEntryCountWidth    uint32 = 8
)

// DeclListBufferSelectsShift returns the DW1 shift of a stream's
// buffer-select mask.
func DeclListBufferSelectsShift(stream int) uint32 {
	return uint32(stream) * 4
}

// DeclListEntryCountShift returns the DW2 shift of a stream's entry
// count.
func DeclListEntryCountShift(stream int) uint32 {
	return uint32(stream) * 8
}
