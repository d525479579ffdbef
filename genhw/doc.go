// Package genhw names the Intel Gen command fields and hardware limits
// used by the stream-output unit, as documented in the Ivy Bridge and
// Broadwell PRMs.
//
// Field shifts and widths are fixed by hardware and must not change.
// Packing goes through Field and FieldBool so every shift amount and
// width stays named and testable:
//
//	dw1 |= genhw.Field(renderStream,
//		genhw.StreamoutRenderStreamWidth,
//		genhw.StreamoutRenderStreamShift)
//
// The Gen tag selects between the two covered command layouts: Gen7
// (Ivy Bridge, Haswell) and Gen8 (Broadwell). Older generations have
// no stream-output commands at all.
package genhw
