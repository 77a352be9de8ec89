// Package json implements the structured document model the routing engine
// uses for diagnostic and default output, together with a deterministic
// renderer.
//
// The model is a recursive tagged value with six alternatives: Null, Boolean,
// Number, String, Array, and Object. Objects preserve insertion order, which
// downstream clients depend on; rendering the same value twice yields
// byte-identical output.
//
// The renderer is intentionally not encoding/json: engine documents carry
// non-finite numbers (rendered as null), object member order is significant,
// and the byte-level escape contract is fixed. Output is locale-independent.
package json
