package solstate

import "github.com/gogpu/solstate/genhw"

// encodeDecl packs one declaration into its 16-bit SO_DECL value. The
// hole flag and the register index are mutually exclusive: a hole
// never carries attribute bits.
func encodeDecl(decl *Decl) uint16 {
	mask := uint32(1<<decl.ComponentCount-1) << decl.ComponentBase

	val := genhw.Field(uint32(decl.Buffer),
		genhw.DeclOutputSlotWidth, genhw.DeclOutputSlotShift) |
		genhw.Field(mask,
			genhw.DeclComponentMaskWidth, genhw.DeclComponentMaskShift)

	if decl.IsHole {
		val |= genhw.DeclHoleFlag
	} else {
		val |= genhw.Field(uint32(decl.Attr),
			genhw.DeclRegIndexWidth, genhw.DeclRegIndexShift)
	}

	return uint16(val)
}

// foldDeclList ORs every stream's declarations into maxDeclCount
// 64-bit accumulator entries, one 16-bit lane per stream with stream 0
// in the low lane, and collects each stream's buffer-select mask.
//
// Streams shorter than maxDeclCount leave their lanes zero in the
// trailing entries. The zero lane is not a hole: the hole flag stays
// clear. Callers that mix list lengths across streams rely on this
// exact padding.
func foldDeclList(streams []StreamConfig, maxDeclCount int) ([]uint64, [genhw.MaxStreamCount]uint8) {
	entries := make([]uint64, maxDeclCount)
	var bufferSelects [genhw.MaxStreamCount]uint8

	for s := range streams {
		for j := range streams[s].Decls {
			decl := &streams[s].Decls[j]
			entries[j] |= uint64(encodeDecl(decl)) << (genhw.DeclLaneWidth * uint32(s))
			bufferSelects[s] |= 1 << decl.Buffer
		}
	}

	return entries, bufferSelects
}

// encodeDeclList packs the SO_DECL_LIST entries into so.Decls and the
// summary words (DW1 buffer selects, DW2 entry counts) into so.So[4:6].
// Requires info to have passed Validate and so.Decls to hold
// maxDeclCount zeroed entries.
func encodeDeclList(so *State, info *Config, maxDeclCount int) {
	entries, bufferSelects := foldDeclList(info.Streams[:], maxDeclCount)

	var dw1, dw2 uint32
	for s := range info.Streams {
		dw1 |= genhw.Field(uint32(bufferSelects[s]),
			genhw.DeclListBufferSelectsWidth, genhw.DeclListBufferSelectsShift(s))
		dw2 |= genhw.Field(uint32(len(info.Streams[s].Decls)),
			genhw.DeclListEntryCountWidth, genhw.DeclListEntryCountShift(s))
	}
	so.So[4] = dw1
	so.So[5] = dw2

	for j, entry := range entries {
		so.Decls[j] = [2]uint32{uint32(entry), uint32(entry >> 32)}
	}
	so.DeclCount = uint8(maxDeclCount)
}
