package solstate

import (
	"fmt"

	"github.com/gogpu/solstate/genhw"
)

// ValidationError describes one violated hardware constraint.
type ValidationError struct {
	Message string
	// Optional context
	Stream int // offending stream, or -1
	Decl   int // offending declaration within Stream, or -1
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Stream >= 0 {
		if e.Decl >= 0 {
			return fmt.Sprintf("stream %d, decl %d: %s", e.Stream, e.Decl, e.Message)
		}
		return fmt.Sprintf("stream %d: %s", e.Stream, e.Message)
	}
	return e.Message
}

// validator collects constraint violations.
type validator struct {
	errors []ValidationError
}

// Validate checks info against the stream-output hardware limits.
// It returns one entry per violated constraint, or nil if info is
// valid.
//
// All four streams are checked unconditionally; an unused stream is
// the zero value and trivially passes. An invalid Config is a caller
// bug, not a transient condition: production code paths are expected
// never to construct one.
func Validate(info *Config) []ValidationError {
	v := &validator{}

	for i := range info.Streams {
		v.validateStream(i, &info.Streams[i], info.VUEAttrCount)
	}

	for i, stride := range info.BufferStrides {
		if stride > genhw.MaxBufferStride {
			v.addError(fmt.Sprintf("buffer %d: stride %d exceeds %d bytes",
				i, stride, genhw.MaxBufferStride))
		}
		if stride%4 != 0 {
			v.addError(fmt.Sprintf("buffer %d: stride %d is not a multiple of 4", i, stride))
		}
	}

	return v.errors
}

// validateStream checks one stream's readback window and declarations.
func (v *validator) validateStream(index int, stream *StreamConfig, vueAttrCount uint8) {
	if int(stream.VUEReadBase)+int(stream.VUEReadCount) > int(vueAttrCount) {
		v.addStreamError(index, fmt.Sprintf("read window %d+%d exceeds vertex record capacity %d",
			stream.VUEReadBase, stream.VUEReadCount, vueAttrCount))
	}

	// The read offset is a U1 count of 512-bit units.
	if stream.VUEReadBase != 0 && stream.VUEReadBase != 2 {
		v.addStreamError(index, fmt.Sprintf("read base must be 0 or 2, got %d", stream.VUEReadBase))
	}

	if stream.VUEReadCount > genhw.MaxVUEReadCount {
		v.addStreamError(index, fmt.Sprintf("read count %d exceeds %d",
			stream.VUEReadCount, genhw.MaxVUEReadCount))
	}

	if len(stream.Decls) > genhw.MaxDeclCount {
		v.addStreamError(index, fmt.Sprintf("%d declarations exceed %d",
			len(stream.Decls), genhw.MaxDeclCount))
	}

	for j := range stream.Decls {
		v.validateDecl(index, j, &stream.Decls[j], stream.VUEReadCount)
	}
}

// validateDecl checks one declaration.
func (v *validator) validateDecl(stream, index int, decl *Decl, vueReadCount uint8) {
	if !decl.IsHole && decl.Attr >= vueReadCount {
		v.addDeclError(stream, index, fmt.Sprintf("attribute %d outside read window of %d units",
			decl.Attr, vueReadCount))
	}

	if decl.Attr >= genhw.MaxDeclAttr {
		v.addDeclError(stream, index, fmt.Sprintf("attribute %d exceeds internal storage of %d",
			decl.Attr, genhw.MaxDeclAttr-1))
	}

	if decl.ComponentBase >= 4 {
		v.addDeclError(stream, index, fmt.Sprintf("component base %d out of range", decl.ComponentBase))
	}
	if decl.ComponentBase+decl.ComponentCount > 4 {
		v.addDeclError(stream, index, fmt.Sprintf("components %d+%d exceed xyzw",
			decl.ComponentBase, decl.ComponentCount))
	}

	if decl.Buffer >= genhw.MaxBufferCount {
		v.addDeclError(stream, index, fmt.Sprintf("buffer %d does not exist", decl.Buffer))
	}
}

func (v *validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Stream:  -1,
		Decl:    -1,
	})
}

func (v *validator) addStreamError(stream int, msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Stream:  stream,
		Decl:    -1,
	})
}

func (v *validator) addDeclError(stream, decl int, msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Stream:  stream,
		Decl:    decl,
	})
}
