package osrm

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/moviro-hub/libosrmc/osrm/json"
)

// ResultKind tags the alternative a Result currently holds.
type ResultKind uint8

const (
	// ResultEmpty is the zero Result; no alternative has been stored yet.
	ResultEmpty ResultKind = iota
	// ResultDocument holds a structured document.
	ResultDocument
	// ResultBuilder holds a finished engine-side FlatBuffer builder.
	ResultBuilder
	// ResultBuffer holds a raw byte string (tile responses).
	ResultBuffer
	// ResultReleased marks a builder whose buffer ownership has been
	// transferred out; the result can no longer be read.
	ResultReleased
)

// Result is the tagged union a service call fills in. The dispatcher seeds
// the union — an empty document for the document services, an empty buffer
// for tile — and the engine either mutates the seeded value in place or
// replaces the alternative.
//
// A Result belongs to one request; it is not safe for concurrent use.
type Result struct {
	kind    ResultKind
	doc     *json.Object
	builder *flatbuffers.Builder
	buf     []byte
}

// NewDocumentResult returns a Result seeded with an empty document.
func NewDocumentResult() *Result {
	r := &Result{}
	r.SetDocument(json.NewObject())
	return r
}

// NewBufferResult returns a Result seeded with an empty byte string.
func NewBufferResult() *Result {
	r := &Result{}
	r.SetBuffer(nil)
	return r
}

// Kind returns the alternative currently held.
func (r *Result) Kind() ResultKind {
	if r == nil {
		return ResultEmpty
	}
	return r.kind
}

// SetDocument stores the structured-document alternative.
func (r *Result) SetDocument(doc *json.Object) {
	r.kind = ResultDocument
	r.doc = doc
	r.builder = nil
	r.buf = nil
}

// SetBuilder stores a finished FlatBuffer builder.
func (r *Result) SetBuilder(b *flatbuffers.Builder) {
	r.kind = ResultBuilder
	r.builder = b
	r.doc = nil
	r.buf = nil
}

// SetBuffer stores a raw byte string.
func (r *Result) SetBuffer(data []byte) {
	r.kind = ResultBuffer
	r.buf = data
	r.doc = nil
	r.builder = nil
}

// Document returns the structured document, if that is the held alternative.
func (r *Result) Document() (*json.Object, bool) {
	if r == nil || r.kind != ResultDocument {
		return nil, false
	}
	return r.doc, true
}

// Builder returns the FlatBuffer builder, if that is the held alternative.
func (r *Result) Builder() (*flatbuffers.Builder, bool) {
	if r == nil || r.kind != ResultBuilder {
		return nil, false
	}
	return r.builder, true
}

// Buffer returns the raw byte string, if that is the held alternative.
func (r *Result) Buffer() ([]byte, bool) {
	if r == nil || r.kind != ResultBuffer {
		return nil, false
	}
	return r.buf, true
}

// TakeBuilder removes and returns the FlatBuffer builder, marking the result
// released. Ownership of the finished buffer moves to the caller; subsequent
// reads of any alternative fail.
func (r *Result) TakeBuilder() (*flatbuffers.Builder, bool) {
	if r == nil || r.kind != ResultBuilder {
		return nil, false
	}
	b := r.builder
	r.builder = nil
	r.kind = ResultReleased
	return b, true
}
