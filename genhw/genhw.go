package genhw

// Gen identifies a hardware generation with its own command layout.
type Gen uint8

// Known generations. Generations below Gen7 have no stream-output
// commands; encoders produce the zero state for them.
const (
	Gen6 Gen = 6 // Sandy Bridge and older
	Gen7 Gen = 7 // Ivy Bridge, Haswell
	Gen8 Gen = 8 // Broadwell
)

// HasStreamout reports whether g has the 3DSTATE_STREAMOUT and
// 3DSTATE_SO_DECL_LIST commands.
func (g Gen) HasStreamout() bool {
	return g >= Gen7
}

// String returns the generation name.
func (g Gen) String() string {
	switch g {
	case Gen6:
		return "Gen6"
	case Gen7:
		return "Gen7"
	case Gen8:
		return "Gen8"
	}
	return "Gen?"
}

// Limits fixed by the stream-output hardware.
const (
	// MaxStreamCount is the number of output streams. The command
	// layouts hard-code exactly four 16-bit or 8-bit lanes.
	MaxStreamCount = 4

	// MaxBufferCount is the number of target buffer slots.
	MaxBufferCount = 4

	// MaxDeclCount caps the declaration list length per stream.
	MaxDeclCount = 128

	// MaxBufferStride is the largest valid surface pitch in bytes.
	// Pitches must be multiples of 4.
	MaxBufferStride = 2048

	// MaxVUEReadCount is the deepest readback: 17 256-bit units, or
	// 34 128-bit vertex attributes.
	MaxVUEReadCount = 34

	// MaxDeclAttr bounds the register index a declaration may source.
	// There is only internal storage for the 128-bit vertex header and
	// 32 128-bit vertex attributes.
	MaxDeclAttr = 33
)

// Field masks v to width bits and shifts it into place.
func Field(v uint32, width, shift uint32) uint32 {
	return (v & (1<<width - 1)) << shift
}

// FieldBool packs a single-bit flag.
func FieldBool(b bool, shift uint32) uint32 {
	if b {
		return 1 << shift
	}
	return 0
}
