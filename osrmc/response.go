package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// response is the holder state shared by the five document services. It owns
// the result union filled by a dispatch; the typed accessors of the service
// response types navigate the structured-document alternative, while
// TransferFlatbuffer hands the binary alternative over wholesale.
type response struct {
	result *osrm.Result
}

func (r *response) document() (*json.Object, error) {
	doc, ok := r.result.Document()
	if !ok {
		return nil, newError(CodeInvalidFormat, "Response does not hold a document")
	}
	return doc, nil
}

// RenderJSON renders the held document as JSON text.
func (r *response) RenderJSON() ([]byte, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	return json.Render(doc), nil
}

// TransferFlatbuffer moves the finished binary buffer out of the response.
// The transfer is one-shot: ownership of the bytes moves to the caller and
// every later read of the response fails.
func (r *response) TransferFlatbuffer() (data []byte, err error) {
	defer guard(&err)

	builder, ok := r.result.TakeBuilder()
	if !ok {
		return nil, newError(CodeInvalidFormat, "Response does not hold a FlatBuffers builder")
	}
	return builder.FinishedBytes(), nil
}

// Document navigation. The engine document is engine-shaped, not
// binding-shaped; a member that is absent or of an unexpected kind surfaces
// as an Exception record with a stable message.

func memberError(key string) *Error {
	return newError(CodeException, `missing or malformed member "`+key+`"`)
}

func objectMember(obj *json.Object, key string) (*json.Object, error) {
	member, ok := obj.GetObject(key)
	if !ok {
		return nil, memberError(key)
	}
	return member, nil
}

func arrayMember(obj *json.Object, key string) (json.Array, error) {
	member, ok := obj.GetArray(key)
	if !ok {
		return nil, memberError(key)
	}
	return member, nil
}

func stringMember(obj *json.Object, key string) (string, error) {
	member, ok := obj.GetString(key)
	if !ok {
		return "", memberError(key)
	}
	return member, nil
}

func numberMember(obj *json.Object, key string) (float64, error) {
	member, ok := obj.GetNumber(key)
	if !ok {
		return 0, memberError(key)
	}
	return member, nil
}

func objectAt(arr json.Array, index int) (*json.Object, error) {
	obj, ok := arr[index].(*json.Object)
	if !ok {
		return nil, newError(CodeException, "array entry is not an object")
	}
	return obj, nil
}
