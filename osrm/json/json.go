package json

// Value is one alternative of the document model. The set of implementations
// is closed: Null, Boolean, Number, String, Array, and *Object.
type Value interface {
	isValue()
}

// Null is the absent-value alternative.
type Null struct{}

// Boolean is the true/false alternative.
type Boolean bool

// Number is the numeric alternative. Non-finite values are representable and
// render as null.
type Number float64

// String is the text alternative. Contents are presumed UTF-8 but rendered
// byte-wise, so any byte string survives the trip.
type String string

// Array is an ordered sequence of values.
type Array []Value

func (Null) isValue()    {}
func (Boolean) isValue() {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// Object is an insertion-ordered sequence of (key, value) members. Set on an
// existing key overwrites the value in place, keeping the original position.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores v under key, appending the key on first use. It returns the
// object for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// GetObject returns the object stored under key, if any.
func (o *Object) GetObject(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok
}

// GetArray returns the array stored under key, if any.
func (o *Object) GetArray(key string) (Array, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.(Array)
	return arr, ok
}

// GetString returns the string stored under key, if any.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// GetNumber returns the number stored under key, if any.
func (o *Object) GetNumber(key string) (float64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(Number)
	return float64(n), ok
}

// GetBoolean returns the boolean stored under key, if any.
func (o *Object) GetBoolean(key string) (bool, bool) {
	v, ok := o.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(Boolean)
	return bool(b), ok
}
