package solstate

import "github.com/gogpu/solstate/genhw"

// TristripReorder selects how triangle-strip vertices are reordered
// when written out.
type TristripReorder uint8

const (
	TristripReorderLeading TristripReorder = iota
	TristripReorderTrailing
)

// Decl describes one stream-output declaration: a contiguous component
// range of one vertex attribute written to a buffer slot, or a hole.
type Decl struct {
	// Attr is the source attribute index within the stream's readback
	// window. Ignored when IsHole is set.
	Attr uint8

	// ComponentBase and ComponentCount select a contiguous subset of
	// the four x/y/z/w components.
	ComponentBase  uint8
	ComponentCount uint8

	// Buffer is the destination buffer slot.
	Buffer uint8

	// IsHole marks the slot as padding; nothing is written.
	IsHole bool
}

// StreamConfig describes the readback window and declarations of one
// output stream. An unused stream is the zero value.
type StreamConfig struct {
	// VUEReadBase is the offset, in 256-bit units, into the vertex
	// record where readback starts. Must be 0 or 2.
	VUEReadBase uint8

	// VUEReadCount is the number of 256-bit units to read back.
	VUEReadCount uint8

	// Decls is the ordered declaration list, at most
	// genhw.MaxDeclCount long.
	Decls []Decl
}

// Config describes the stream-output unit state for one encode. It is
// read-only to the encoders.
type Config struct {
	// VUEAttrCount is the total attribute capacity of the vertex
	// record the streams read from.
	VUEAttrCount uint8

	// RenderStream selects which stream feeds the rasterizer.
	// SOEnable must be set for the selection to take effect; that is
	// Haswell behavior, but it is required on all covered generations.
	RenderStream uint8

	TristripReorder TristripReorder

	SOEnable      bool
	RenderDisable bool
	StatsEnable   bool

	// BufferStrides holds the per-buffer surface pitch in bytes. On
	// Gen7 a non-zero stride also enables the buffer.
	BufferStrides [genhw.MaxBufferCount]uint16

	Streams [genhw.MaxStreamCount]StreamConfig

	// DeclData is caller-allocated, zeroed storage for the encoded
	// declaration list. State.Decls aliases it after Init. Size it
	// with DeclDataLen.
	DeclData [][2]uint32
}

// State is an encoded stream-output command payload. The words are
// consumed verbatim by a command-stream builder; no command headers or
// opcodes are included.
//
// So is the fixed command-word block: So[0:2] is the 3DSTATE_STREAMOUT
// body (DW1, DW2), So[2:4] the Gen8 buffer-pitch words (zero on Gen7),
// So[4:6] the 3DSTATE_SO_DECL_LIST summary (buffer selects, entry
// counts). Decls holds one two-word SO_DECL_LIST entry per declaration
// slot; all four streams share the list length DeclCount, and streams
// with fewer declarations leave their lanes zero in the trailing
// entries.
//
// A State must be zero before Init: the encoders only set bits.
type State struct {
	So        [6]uint32
	Decls     [][2]uint32
	DeclCount uint8
}
