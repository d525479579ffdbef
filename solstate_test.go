package solstate

import (
	"testing"

	"github.com/gogpu/solstate/genhw"
)

// captureConfig builds the reference scenario: stream 0 reads four
// 256-bit units and writes attribute 1 followed by a hole, all other
// streams unused.
func captureConfig() *Config {
	info := &Config{
		VUEAttrCount: 4,
		SOEnable:     true,
	}
	info.BufferStrides[0] = 16
	info.Streams[0] = StreamConfig{
		VUEReadBase:  0,
		VUEReadCount: 4,
		Decls: []Decl{
			{Attr: 1, ComponentBase: 0, ComponentCount: 4, Buffer: 0},
			{IsHole: true, Buffer: 0},
		},
	}
	info.DeclData = make([][2]uint32, DeclDataLen(2))
	return info
}

func TestInit_Gen7(t *testing.T) {
	info := captureConfig()

	var so State
	if err := Init(&so, genhw.Gen7, info); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	wantDW1 := genhw.StreamoutSOEnable | uint32(1)<<genhw.StreamoutBufferEnablesShift
	if so.So[0] != wantDW1 {
		t.Errorf("STREAMOUT DW1 = %#08x, want %#08x", so.So[0], wantDW1)
	}
	// Stream 0 reads two 512-bit pairs: length field 1, offset 0.
	if so.So[1] != 1 {
		t.Errorf("STREAMOUT DW2 = %#08x, want 0x1", so.So[1])
	}
	if so.So[2] != 0 || so.So[3] != 0 {
		t.Errorf("Gen7 wrote pitch words: %#08x %#08x", so.So[2], so.So[3])
	}

	if so.So[4] != 0x1 {
		t.Errorf("DECL_LIST DW1 = %#08x, want 0x1", so.So[4])
	}
	if so.So[5] != 0x2 {
		t.Errorf("DECL_LIST DW2 = %#08x, want 0x2", so.So[5])
	}

	if so.DeclCount != 2 {
		t.Fatalf("DeclCount = %d, want 2", so.DeclCount)
	}
	if so.Decls[0] != [2]uint32{0x001F, 0} {
		t.Errorf("entry 0 = %#08x %#08x, want 0x1F 0x0", so.Decls[0][0], so.Decls[0][1])
	}
	if so.Decls[1] != [2]uint32{0x0800, 0} {
		t.Errorf("entry 1 = %#08x %#08x, want 0x800 0x0", so.Decls[1][0], so.Decls[1][1])
	}
}

func TestInit_Gen8(t *testing.T) {
	info := captureConfig()

	var so State
	if err := Init(&so, genhw.Gen8, info); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Gen8 has no buffer-enable mask; the strides move to DW3/DW4.
	if so.So[0] != genhw.StreamoutSOEnable {
		t.Errorf("STREAMOUT DW1 = %#08x, want %#08x", so.So[0], genhw.StreamoutSOEnable)
	}
	if so.So[2] != 16 {
		t.Errorf("STREAMOUT DW3 = %#08x, want 0x10", so.So[2])
	}
	if so.So[3] != 0 {
		t.Errorf("STREAMOUT DW4 = %#08x, want 0", so.So[3])
	}
}

// TestInit_Idempotent encodes the same config twice into fresh storage
// and expects bit-identical results.
func TestInit_Idempotent(t *testing.T) {
	infoA := captureConfig()
	infoB := captureConfig()

	var a, b State
	if err := Init(&a, genhw.Gen8, infoA); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := Init(&b, genhw.Gen8, infoB); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}

	if a.So != b.So {
		t.Errorf("command words differ: %#v vs %#v", a.So, b.So)
	}
	if a.DeclCount != b.DeclCount {
		t.Errorf("DeclCount differs: %d vs %d", a.DeclCount, b.DeclCount)
	}
	for i := range a.Decls {
		if a.Decls[i] != b.Decls[i] {
			t.Errorf("entry %d differs: %v vs %v", i, a.Decls[i], b.Decls[i])
		}
	}
}

// TestInit_UnsupportedGen checks the generation gate: below Gen7 the
// zero state is the encoding and Init succeeds.
func TestInit_UnsupportedGen(t *testing.T) {
	info := captureConfig()

	var so State
	if err := Init(&so, genhw.Gen6, info); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if so.So != ([6]uint32{}) {
		t.Errorf("Gen6 wrote command words: %#v", so.So)
	}
	if so.DeclCount != 0 || len(so.Decls) != 0 {
		t.Errorf("Gen6 produced a declaration list: count=%d len=%d",
			so.DeclCount, len(so.Decls))
	}
}

func TestInit_RejectsInvalidConfig(t *testing.T) {
	info := captureConfig()
	info.Streams[0].VUEReadCount = 35

	var so State
	err := Init(&so, genhw.Gen7, info)
	if err == nil {
		t.Fatal("Init accepted an invalid config")
	}
	// Validation gates both encoders: nothing may be written.
	if so.So != ([6]uint32{}) {
		t.Errorf("failed Init wrote command words: %#v", so.So)
	}
}

func TestInit_PreZeroContract(t *testing.T) {
	t.Run("dirty state", func(t *testing.T) {
		info := captureConfig()
		so := State{So: [6]uint32{0, 0xDEAD}}
		if err := Init(&so, genhw.Gen7, info); err == nil {
			t.Error("Init accepted a non-zero State")
		}
	})

	t.Run("dirty declaration storage", func(t *testing.T) {
		info := captureConfig()
		info.DeclData[1][0] = 0xDEAD
		var so State
		if err := Init(&so, genhw.Gen7, info); err == nil {
			t.Error("Init accepted non-zero declaration storage")
		}
	})

	t.Run("undersized declaration storage", func(t *testing.T) {
		info := captureConfig()
		info.DeclData = info.DeclData[:1]
		var so State
		if err := Init(&so, genhw.Gen7, info); err == nil {
			t.Error("Init accepted undersized declaration storage")
		}
	})
}

func TestInitDisabled(t *testing.T) {
	var so State
	if err := InitDisabled(&so, genhw.Gen7, true); err != nil {
		t.Fatalf("InitDisabled failed: %v", err)
	}

	if so.So[0] != genhw.StreamoutRenderDisable {
		t.Errorf("DW1 = %#08x, want render-disable bit only", so.So[0])
	}
	for i, w := range so.So[1:] {
		if w != 0 {
			t.Errorf("word %d = %#08x, want 0", i+1, w)
		}
	}
	if so.DeclCount != 0 {
		t.Errorf("DeclCount = %d, want 0", so.DeclCount)
	}
}

// TestInitDisabled_AllClear checks the zero-input invariant: with
// renderDisable unset too, no flag bit survives.
func TestInitDisabled_AllClear(t *testing.T) {
	var so State
	if err := InitDisabled(&so, genhw.Gen8, false); err != nil {
		t.Fatalf("InitDisabled failed: %v", err)
	}
	if so.So != ([6]uint32{}) {
		t.Errorf("disabled state has bits set: %#v", so.So)
	}
}

// TestInit_SharedListLength checks that DW2 carries each stream's own
// count while the encoded list uses the maximum across streams.
func TestInit_SharedListLength(t *testing.T) {
	info := &Config{VUEAttrCount: 4}
	info.Streams[0] = StreamConfig{
		VUEReadCount: 4,
		Decls: []Decl{
			{Attr: 0, ComponentCount: 4, Buffer: 0},
			{Attr: 1, ComponentCount: 4, Buffer: 0},
			{Attr: 2, ComponentCount: 4, Buffer: 0},
		},
	}
	info.Streams[2] = StreamConfig{
		VUEReadCount: 4,
		Decls: []Decl{
			{Attr: 0, ComponentCount: 4, Buffer: 1},
		},
	}
	info.DeclData = make([][2]uint32, DeclDataLen(3))

	var so State
	if err := Init(&so, genhw.Gen8, info); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if so.DeclCount != 3 {
		t.Errorf("DeclCount = %d, want 3", so.DeclCount)
	}
	wantDW2 := uint32(3) | uint32(1)<<genhw.DeclListEntryCountShift(2)
	if so.So[5] != wantDW2 {
		t.Errorf("DECL_LIST DW2 = %#08x, want %#08x", so.So[5], wantDW2)
	}

	// Stream 2's trailing entries stay zero in its lane.
	for i := 1; i < 3; i++ {
		if lane := uint16(so.Decls[i][1]); lane != 0 {
			t.Errorf("entry %d stream-2 lane = %#04x, want 0", i, lane)
		}
	}
}
