// Package solstate encodes Intel Gen stream-output unit state into the
// payload words of the 3DSTATE_STREAMOUT and 3DSTATE_SO_DECL_LIST
// commands.
//
// Stream output writes post-geometry vertex data to memory buffers
// instead of, or in addition to, rasterizing it. This package turns a
// hardware-agnostic description of that capture — which attribute
// components go to which buffer, per stream — into the exact packed
// command words the Gen7 (Ivy Bridge, Haswell) and Gen8 (Broadwell)
// command processors consume. Buffer allocation and command-stream
// submission belong to the caller.
//
// Example usage:
//
//	info := solstate.Config{
//		VUEAttrCount: 4,
//		SOEnable:     true,
//		BufferStrides: [4]uint16{16},
//	}
//	info.Streams[0] = solstate.StreamConfig{
//		VUEReadCount: 4,
//		Decls: []solstate.Decl{
//			{Attr: 1, ComponentCount: 4, Buffer: 0},
//		},
//	}
//	info.DeclData = make([][2]uint32, solstate.DeclDataLen(1))
//
//	var so solstate.State
//	if err := solstate.Init(&so, genhw.Gen8, &info); err != nil {
//		log.Fatal(err)
//	}
//
// Both the State and Config.DeclData must be zeroed before Init: the
// encoders only set bits, so reused storage has to be cleared first.
// Encoding is a pure computation over caller-owned memory with no
// internal synchronization; concurrent encodes need independent
// Config/State pairs.
package solstate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gogpu/solstate/genhw"
)

// DeclDataLen returns the Config.DeclData length, in two-word entries,
// needed for a declaration list of maxDeclCount entries.
func DeclDataLen(maxDeclCount int) int {
	return maxDeclCount
}

// Init encodes info for dev into so.
//
// so must be the zero State and info.DeclData must be zeroed storage
// holding at least the maximum per-stream declaration count; Init
// validates the sizing but never allocates. All four streams are
// encoded with that shared maximum list length. On generations without
// stream-output commands, the zero state is the encoding and Init
// succeeds.
//
// An error reports a caller bug — an invalid Config or a broken
// pre-zero contract — never a transient condition.
func Init(so *State, dev genhw.Gen, info *Config) error {
	if !isZeroed(so.So[:]) || so.DeclCount != 0 || so.Decls != nil {
		return fmt.Errorf("solstate: output state is not zeroed")
	}
	if !isZeroedEntries(info.DeclData) {
		return fmt.Errorf("solstate: declaration storage is not zeroed")
	}

	if !dev.HasStreamout() {
		logger().Debug("stream output unavailable, encoding zero state",
			zap.Stringer("gen", dev))
		return nil
	}

	maxDeclCount := 0
	for i := range info.Streams {
		if n := len(info.Streams[i].Decls); n > maxDeclCount {
			maxDeclCount = n
		}
	}
	if len(info.DeclData) < DeclDataLen(maxDeclCount) {
		return fmt.Errorf("solstate: declaration storage holds %d entries, need %d",
			len(info.DeclData), DeclDataLen(maxDeclCount))
	}

	if errs := Validate(info); len(errs) > 0 {
		logger().Debug("config rejected",
			zap.Stringer("gen", dev),
			zap.Int("violations", len(errs)))
		return fmt.Errorf("solstate: validation failed with %d violations: %w",
			len(errs), errs[0])
	}

	so.Decls = info.DeclData[:maxDeclCount]
	encodeStreamout(so, dev, info)
	encodeDeclList(so, info, maxDeclCount)

	logger().Debug("encoded stream-output state",
		zap.Stringer("gen", dev),
		zap.Int("declCount", maxDeclCount))

	return nil
}

// InitDisabled encodes the all-disabled state: stream output off and,
// when renderDisable is set, rasterization off as well. Useful for
// turning stream output off explicitly while still producing a
// well-formed payload.
func InitDisabled(so *State, dev genhw.Gen, renderDisable bool) error {
	info := Config{RenderDisable: renderDisable}
	return Init(so, dev, &info)
}

func isZeroed(words []uint32) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

func isZeroedEntries(entries [][2]uint32) bool {
	for _, e := range entries {
		if e[0] != 0 || e[1] != 0 {
			return false
		}
	}
	return true
}
