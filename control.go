package solstate

import "github.com/gogpu/solstate/genhw"

// vueRead is a stream's readback window in the form DW2 wants: offset
// in 512-bit units, length in 512-bit units minus one.
type vueRead struct {
	offset uint8
	len    uint8
}

// streamVUERead converts a stream's 256-bit-unit window into DW2 form.
// URB entries are aligned to 512 bits, so rounding the length up to a
// pair never reads past the entry. A zero read count stays zero rather
// than underflowing the minus-one encoding.
func streamVUERead(stream *StreamConfig) vueRead {
	r := vueRead{
		offset: stream.VUEReadBase / 2,
		len:    (stream.VUEReadCount + 1) / 2,
	}
	if r.len > 0 {
		r.len--
	}
	return r
}

// encodeStreamout packs the 3DSTATE_STREAMOUT body into so.So[0:2]
// and, on Gen8, the buffer-pitch words into so.So[2:4]. Requires info
// to have passed Validate.
func encodeStreamout(so *State, dev genhw.Gen, info *Config) {
	dw1 := genhw.Field(uint32(info.RenderStream),
		genhw.StreamoutRenderStreamWidth, genhw.StreamoutRenderStreamShift) |
		genhw.Field(uint32(info.TristripReorder),
			genhw.StreamoutReorderModeWidth, genhw.StreamoutReorderModeShift)

	if info.SOEnable {
		dw1 |= genhw.StreamoutSOEnable
	}
	if info.RenderDisable {
		dw1 |= genhw.StreamoutRenderDisable
	}
	if info.StatsEnable {
		dw1 |= genhw.StreamoutStatistics
	}

	if dev < genhw.Gen8 {
		var enables uint32
		for i, stride := range info.BufferStrides {
			if stride != 0 {
				enables |= 1 << i
			}
		}
		dw1 |= genhw.Field(enables,
			genhw.StreamoutBufferEnablesWidth, genhw.StreamoutBufferEnablesShift)
	}

	var dw2 uint32
	for i := range info.Streams {
		r := streamVUERead(&info.Streams[i])
		dw2 |= genhw.Field(uint32(r.offset),
			genhw.StreamoutReadOffsetWidth, genhw.StreamoutReadOffsetShift(i))
		dw2 |= genhw.Field(uint32(r.len),
			genhw.StreamoutReadLenWidth, genhw.StreamoutReadLenShift(i))
	}

	so.So[0] = dw1
	so.So[1] = dw2

	if dev >= genhw.Gen8 {
		so.So[2] = genhw.Field(uint32(info.BufferStrides[1]),
			genhw.StreamoutPitchWidth, genhw.StreamoutPitchHighShift) |
			genhw.Field(uint32(info.BufferStrides[0]),
				genhw.StreamoutPitchWidth, genhw.StreamoutPitchLowShift)
		so.So[3] = genhw.Field(uint32(info.BufferStrides[3]),
			genhw.StreamoutPitchWidth, genhw.StreamoutPitchHighShift) |
			genhw.Field(uint32(info.BufferStrides[2]),
				genhw.StreamoutPitchWidth, genhw.StreamoutPitchLowShift)
	}
}
