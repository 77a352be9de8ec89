package capi

/*
#include <stdlib.h>

#include "bridge.h"
*/
import "C"

import (
	"errors"
	"unsafe"

	pointer "github.com/mattn/go-pointer"

	"github.com/moviro-hub/libosrmc/osrmc"
)

// Handles crossing the C surface are sentinel pointers minted by
// mattn/go-pointer: each save allocates one C byte whose address keys the Go
// value in a process-wide table. Destructors unref the sentinel, which frees
// the byte and drops the value for collection.

func save(v any) unsafe.Pointer {
	return pointer.Save(v)
}

// restore recovers the Go value behind a handle. A nil handle, a foreign
// pointer or a handle of another kind all fail the type assertion, and the
// caller reports InvalidArgument.
func restore[T any](p unsafe.Pointer) (T, bool) {
	v, ok := pointer.Restore(p).(T)
	return v, ok
}

func unref(p unsafe.Pointer) {
	if p != nil {
		pointer.Unref(p)
	}
}

// errorRecord backs one osrmc_error_t. Both strings live on the C heap so
// the accessors can return them directly; osrmc_error_destruct frees them.
type errorRecord struct {
	code    *C.char
	message *C.char
}

// setError reifies err as a caller-owned error record and writes it through
// the out-parameter slot. A nil slot drops the record silently; a nil error
// is a bug in the caller of setError, not something to paper over.
func setError(slot *C.osrmc_error_t, err error) {
	if slot == nil {
		return
	}
	var typed *osrmc.Error
	if !errors.As(err, &typed) {
		typed = &osrmc.Error{Code: osrmc.CodeException, Message: err.Error()}
	}
	record := &errorRecord{
		code:    C.CString(string(typed.Code)),
		message: C.CString(typed.Message),
	}
	*slot = C.osrmc_error_t(save(record))
}

func setInvalidArgument(slot *C.osrmc_error_t, message string) {
	setError(slot, &osrmc.Error{Code: osrmc.CodeInvalidArgument, Message: message})
}

// cstrings owns the C strings a response handle has handed out. Accessors
// returning const char* intern through it, and the pointers stay valid until
// the handle's destructor runs.
type cstrings struct {
	owned []*C.char
}

func (c *cstrings) intern(s string) *C.char {
	p := C.CString(s)
	c.owned = append(c.owned, p)
	return p
}

func (c *cstrings) release() {
	for _, p := range c.owned {
		C.free(unsafe.Pointer(p))
	}
	c.owned = nil
}

// cbytes copies data onto the C heap, failing with MemoryError instead of
// aborting the process the way cgo's checked allocators do. Empty input
// yields a nil pointer and zero size.
func cbytes(data []byte) (unsafe.Pointer, C.size_t, error) {
	if len(data) == 0 {
		return nil, 0, nil
	}
	buf := C.osrmc_malloc(C.size_t(len(data)))
	if buf == nil {
		return nil, 0, &osrmc.Error{Code: osrmc.CodeMemoryError, Message: "Failed to allocate buffer"}
	}
	copy(unsafe.Slice((*byte)(buf), len(data)), data)
	return buf, C.size_t(len(data)), nil
}

// baseParams maps any of the five coordinate-carrying parameter handles to
// the shared base surface, the way the C side casts them to osrmc_params_t.
func baseParams(p unsafe.Pointer) (*osrmc.Params, bool) {
	switch v := pointer.Restore(p).(type) {
	case *osrmc.RouteParams:
		return &v.Params, true
	case *osrmc.NearestParams:
		return &v.Params, true
	case *osrmc.TableParams:
		return &v.Params, true
	case *osrmc.MatchParams:
		return &v.Params, true
	case *osrmc.TripParams:
		return &v.Params, true
	}
	return nil, false
}

// transferBuffer is the shared body of the per-service transfer entry
// points: it copies the finished FlatBuffer out of resp onto the C heap and
// hands the caller the pointer, size and matching deleter.
func transferBuffer(takeBytes func() ([]byte, error), data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	if data == nil || size == nil || deleter == nil {
		setInvalidArgument(errOut, "Output parameters cannot be null")
		return
	}
	bytes, err := takeBytes()
	if err != nil {
		setError(errOut, err)
		return
	}
	buf, n, err := cbytes(bytes)
	if err != nil {
		setError(errOut, err)
		return
	}
	*data = buf
	*size = n
	*deleter = C.osrmc_buffer_free_fn()
}
